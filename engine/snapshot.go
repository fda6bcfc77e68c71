package engine

import (
	"github.com/lixenwraith/solitaire/card"
	"github.com/lixenwraith/solitaire/core"
)

// CardView is what a renderer needs to draw one card
type CardView struct {
	ID     card.ID
	Card   card.Card
	Bounds core.Area
	FaceUp bool
}

// PileView is one pile in z-order
type PileView struct {
	ID     PileID
	Kind   Kind
	Index  int
	Region core.Area
	Slot   core.Area  // Card-sized outline at the anchor
	Cards  []CardView // Bottom first, dragged card excluded
}

// Snapshot is the read-only per-frame view of the table
// Drawing Piles in order and then Dragged yields correct overlap
type Snapshot struct {
	Piles   []PileView
	Dragged *CardView

	State       InteractionState
	Hovered     card.ID
	HoveredPile PileID

	StockCount int
	WasteCount int
	Policy     string
}

// Snapshot captures the current table for rendering
func (t *Table) Snapshot() Snapshot {
	s := Snapshot{
		Piles:       make([]PileView, 0, len(t.piles)),
		State:       t.ix.State(),
		Hovered:     t.ix.hoveredCard,
		HoveredPile: t.ix.hoveredPile,
		StockCount:  t.piles[t.stock].Count(),
		WasteCount:  t.piles[t.waste].Count(),
		Policy:      t.policy.Name(),
	}

	for _, p := range t.piles {
		pv := PileView{
			ID:     p.id,
			Kind:   p.kind,
			Index:  p.index,
			Region: p.region,
			Slot:   t.layout.CardArea(p.Anchor()),
			Cards:  make([]CardView, 0, len(p.cards)),
		}
		for _, id := range p.cards {
			if id == t.ix.active {
				continue
			}
			pv.Cards = append(pv.Cards, t.view(id))
		}
		s.Piles = append(s.Piles, pv)
	}

	if t.ix.active != card.None {
		v := t.view(t.ix.active)
		s.Dragged = &v
	}
	return s
}

func (t *Table) view(id card.ID) CardView {
	cs := &t.cards[id]
	return CardView{
		ID:     id,
		Card:   t.deck[id],
		Bounds: cs.Bounds,
		FaceUp: cs.FaceUp,
	}
}
