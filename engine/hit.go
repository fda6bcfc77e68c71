package engine

import (
	"github.com/lixenwraith/solitaire/card"
	"github.com/lixenwraith/solitaire/core"
	"github.com/lixenwraith/solitaire/vmath"
)

// Z-order is render order: piles in arena order, cards bottom to top within a pile.
// Hit tests walk it backwards so the topmost match wins.

// cardAt returns the topmost card under p if it is face-up
// A face-down card on top occludes anything beneath it
func (t *Table) cardAt(p core.Point) card.ID {
	for i := len(t.piles) - 1; i >= 0; i-- {
		pile := t.piles[i]
		for j := len(pile.cards) - 1; j >= 0; j-- {
			id := pile.cards[j]
			if id == t.ix.active {
				continue
			}
			cs := &t.cards[id]
			if !vmath.AreaContains(cs.Bounds, p) {
				continue
			}
			if !cs.FaceUp {
				return card.None
			}
			return id
		}
	}
	return card.None
}

// pileAt returns the topmost pile whose region contains p
func (t *Table) pileAt(p core.Point) PileID {
	for i := len(t.piles) - 1; i >= 0; i-- {
		if vmath.AreaContains(t.piles[i].region, p) {
			return t.piles[i].id
		}
	}
	return NoPile
}

// CardAt exposes the hover hit test for a point
func (t *Table) CardAt(p core.Point) card.ID { return t.cardAt(p) }

// PileAt exposes the drop-target hit test for a point
func (t *Table) PileAt(p core.Point) PileID { return t.pileAt(p) }
