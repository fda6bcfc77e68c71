package engine

import (
	"errors"
	"slices"
	"testing"

	"github.com/lixenwraith/solitaire/card"
	"github.com/lixenwraith/solitaire/core"
)

func TestPile_TopOfEmpty(t *testing.T) {
	p := newPile(0, KindWaste, 0, core.Area{Width: 1, Height: 1})

	if _, err := p.Top(); !errors.Is(err, ErrEmptyPile) {
		t.Errorf("Expected ErrEmptyPile from Top, got %v", err)
	}
	if _, err := p.RemoveTop(); !errors.Is(err, ErrEmptyPile) {
		t.Errorf("Expected ErrEmptyPile from RemoveTop, got %v", err)
	}
}

func TestPile_AppendAndRemoveTop(t *testing.T) {
	p := newPile(0, KindStock, 0, core.Area{Width: 1, Height: 1})
	for _, id := range []card.ID{3, 7, 11} {
		p.Append(id)
	}

	if p.Count() != 3 {
		t.Fatalf("Expected 3 cards, got %d", p.Count())
	}
	top, err := p.RemoveTop()
	if err != nil || top != 11 {
		t.Fatalf("Expected top 11, got %d (%v)", top, err)
	}
	if top, _ := p.Top(); top != 7 {
		t.Errorf("Expected new top 7, got %d", top)
	}
}

func TestPile_RemoveByIdentity(t *testing.T) {
	p := newPile(0, KindTableau, 2, core.Area{Width: 1, Height: 1})
	for _, id := range []card.ID{5, 9, 13, 21} {
		p.Append(id)
	}

	if err := p.Remove(13); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got, want := p.Cards(), []card.ID{5, 9, 21}; !slices.Equal(got, want) {
		t.Errorf("Expected %v after remove, got %v", want, got)
	}

	// A card sharing neither suit nor rank must not be touched
	if err := p.Remove(40); !errors.Is(err, ErrCardNotInPile) {
		t.Errorf("Expected ErrCardNotInPile, got %v", err)
	}
	if p.Count() != 3 {
		t.Errorf("Failed remove changed count to %d", p.Count())
	}
}

func TestPile_CardsIsCopy(t *testing.T) {
	p := newPile(0, KindWaste, 0, core.Area{Width: 1, Height: 1})
	p.Append(1)
	cards := p.Cards()
	cards[0] = 2

	if p.At(0) != 1 {
		t.Error("Mutating Cards() result changed the pile")
	}
}

func TestPile_ColumnAndIndex(t *testing.T) {
	tbl := newTestTable(t, Options{})
	for i := 0; i < tbl.Files(); i++ {
		if got := tbl.File(i).Column(); got != i {
			t.Errorf("File %d reports column %d", i, got)
		}
	}
	if got := tbl.Stock().Column(); got != 0 {
		t.Errorf("Expected stock column 0, got %d", got)
	}

	f := tbl.File(4)
	for i, id := range f.Cards() {
		if got := f.Index(id); got != i {
			t.Errorf("Card %s at %d, Index reports %d", id, i, got)
		}
	}
	if got := f.Index(card.None); got != -1 {
		t.Errorf("Expected -1 for absent card, got %d", got)
	}
}
