package engine

import (
	"fmt"

	"github.com/lixenwraith/solitaire/card"
)

// Verify checks conservation and ownership across all piles
// Every card of the deck is held by exactly one pile and its owner
// back-reference points at that pile
func (t *Table) Verify() error {
	var seen [card.DeckSize]PileID
	for i := range seen {
		seen[i] = NoPile
	}

	total := 0
	for _, p := range t.piles {
		total += p.Count()
		for _, id := range p.cards {
			if !id.Valid() {
				return fmt.Errorf("%w: %s holds invalid card %d", ErrInvariantViolation, p, id)
			}
			if seen[id] != NoPile {
				return fmt.Errorf("%w: %s held by %s and %s", ErrInvariantViolation, id, t.piles[seen[id]], p)
			}
			seen[id] = p.id
			if owner := t.cards[id].Pile; owner != p.id {
				return fmt.Errorf("%w: %s in %s but owned by pile %d", ErrInvariantViolation, id, p, owner)
			}
		}
	}
	if total != card.DeckSize {
		return fmt.Errorf("%w: %d cards on table, want %d", ErrInvariantViolation, total, card.DeckSize)
	}
	return nil
}

// check enforces invariants after a mutation in strict mode
func (t *Table) check(op string) {
	if !t.strict {
		return
	}
	if err := t.Verify(); err != nil {
		panic(fmt.Errorf("after %s: %w", op, err))
	}
}
