package engine

import (
	"fmt"

	"github.com/lixenwraith/solitaire/card"
	"github.com/lixenwraith/solitaire/core"
)

// Move transfers a card from one pile to another
// The card lands at the destination anchor when it was empty, otherwise one fan
// step below the previous top. Afterwards the new source top is turned face-up,
// and so is the previous top of a tableau destination.
// Nothing is mutated when the card is not in the source pile.
func (t *Table) Move(id card.ID, from, to PileID) error {
	if !id.Valid() {
		return fmt.Errorf("move %s: %w", id, ErrCardNotInPile)
	}
	if from == to {
		if !t.piles[from].Contains(id) {
			return fmt.Errorf("move: %s: %s: %w", t.piles[from], id, ErrCardNotInPile)
		}
		return nil
	}
	src, dst := t.piles[from], t.piles[to]
	prevTop, topErr := dst.Top()

	if err := src.Remove(id); err != nil {
		return fmt.Errorf("move: %w", err)
	}
	dst.Append(id)

	pos := dst.Anchor()
	if topErr == nil && dst.kind == KindTableau {
		pos = t.cards[prevTop].Home.Add(core.Point{Y: t.layout.FanOffset})
	}
	t.place(id, to, pos)

	t.revealTop(src)
	if topErr == nil && dst.kind == KindTableau {
		t.reveal(prevTop)
	}
	if src.kind == KindTableau {
		t.restack(src)
	}

	t.check("move")
	t.log.Debug("moved card", "card", id, "from", src.String(), "to", dst.String())
	return nil
}

// revealTop turns the pile's top card face-up if it is face-down
func (t *Table) revealTop(p *Pile) {
	if top, err := p.Top(); err == nil {
		t.reveal(top)
	}
}

func (t *Table) reveal(id card.ID) {
	t.cards[id].FaceUp = true
}
