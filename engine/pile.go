package engine

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/solitaire/card"
	"github.com/lixenwraith/solitaire/core"
)

// Kind tags the role of a pile
type Kind uint8

const (
	KindStock   Kind = iota // Face-down draw source
	KindWaste               // Face-up discard receiving drawn cards
	KindTableau             // One of the dealt playing columns
)

func (k Kind) String() string {
	switch k {
	case KindStock:
		return "stock"
	case KindWaste:
		return "waste"
	case KindTableau:
		return "tableau"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// PileID is a stable handle into the table's pile arena
type PileID int

// NoPile marks the absence of a pile
const NoPile PileID = -1

// Pile is an ordered card sequence; the last element is the top
// For tableau files the top is the frontmost visible card
type Pile struct {
	id     PileID
	kind   Kind
	index  int       // Column number for tableau files, 0 otherwise
	region core.Area // Drop-target hit region, independent of card bounds
	cards  []card.ID
}

func newPile(id PileID, kind Kind, index int, region core.Area) *Pile {
	return &Pile{
		id:     id,
		kind:   kind,
		index:  index,
		region: region,
		cards:  make([]card.ID, 0, card.DeckSize),
	}
}

func (p *Pile) ID() PileID        { return p.id }
func (p *Pile) Kind() Kind        { return p.kind }
func (p *Pile) Region() core.Area { return p.region }

// Column is the tableau file number, 0 for stock and waste
func (p *Pile) Column() int { return p.index }

// Anchor is where the first card of the pile rests
func (p *Pile) Anchor() core.Point { return p.region.Origin() }

// Count returns the number of cards held
func (p *Pile) Count() int { return len(p.cards) }

// Top returns the top card or ErrEmptyPile
func (p *Pile) Top() (card.ID, error) {
	if len(p.cards) == 0 {
		return card.None, fmt.Errorf("%s: %w", p, ErrEmptyPile)
	}
	return p.cards[len(p.cards)-1], nil
}

// Append places a card on top
func (p *Pile) Append(id card.ID) {
	p.cards = append(p.cards, id)
}

// RemoveTop removes and returns the top card
func (p *Pile) RemoveTop() (card.ID, error) {
	top, err := p.Top()
	if err != nil {
		return card.None, err
	}
	p.cards = p.cards[:len(p.cards)-1]
	return top, nil
}

// Remove deletes the card with exactly this identity, preserving the order of the rest
func (p *Pile) Remove(id card.ID) error {
	i := p.Index(id)
	if i < 0 {
		return fmt.Errorf("%s: %s: %w", p, id, ErrCardNotInPile)
	}
	p.cards = slices.Delete(p.cards, i, i+1)
	return nil
}

// Index returns the position of the card, or -1
func (p *Pile) Index(id card.ID) int {
	return slices.Index(p.cards, id)
}

// Contains reports whether the pile holds the card
func (p *Pile) Contains(id card.ID) bool {
	return p.Index(id) >= 0
}

// At returns the card at position i, bottom first
func (p *Pile) At(i int) card.ID {
	return p.cards[i]
}

// Cards returns a copy of the contents, bottom first
func (p *Pile) Cards() []card.ID {
	return slices.Clone(p.cards)
}

func (p *Pile) clear() {
	p.cards = p.cards[:0]
}

func (p *Pile) String() string {
	if p.kind == KindTableau {
		return fmt.Sprintf("tableau[%d]", p.index)
	}
	return p.kind.String()
}
