package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/solitaire/card"
	"github.com/lixenwraith/solitaire/constants"
	"github.com/lixenwraith/solitaire/core"
	"github.com/lixenwraith/solitaire/vmath"
)

// CardState is the mutable placement and visibility of one card
type CardState struct {
	FaceUp bool
	Bounds core.Area  // Current screen bounds, for drawing and hit-testing
	Home   core.Point // Last committed resting position
	Pile   PileID     // Owning pile
}

// Options configures a Table
// Zero values select the defaults
type Options struct {
	Files  int
	Layout *Layout
	Policy Policy
	Rand   Intn
	Logger *slog.Logger

	// Strict panics on any invariant violation after a mutation
	Strict bool
}

// Table owns the whole game session: the card arena, the piles and the interaction state
// Not safe for concurrent use; driven by a single frame loop
type Table struct {
	deck   []card.Card
	cards  [card.DeckSize]CardState
	piles  []*Pile
	stock  PileID
	waste  PileID
	files  []PileID
	layout Layout
	policy Policy
	rng    Intn
	log    *slog.Logger
	strict bool

	ix Interaction
}

// NewTable builds a table with every card face-down in the stock in deck order
// Call NewGame to shuffle and deal
func NewTable(opts Options) (*Table, error) {
	if opts.Files == 0 {
		opts.Files = constants.TableauFiles
	}
	if opts.Files < 1 || opts.Files*(opts.Files+1)/2 > card.DeckSize {
		return nil, fmt.Errorf("tableau files %d: %w", opts.Files, ErrNotEnoughCards)
	}
	layout := DefaultLayout()
	if opts.Layout != nil {
		layout = *opts.Layout
	}
	if opts.Policy == nil {
		opts.Policy = Permissive{}
	}
	if opts.Rand == nil {
		opts.Rand = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	t := &Table{
		deck:   card.NewDeck(),
		layout: layout,
		policy: opts.Policy,
		rng:    opts.Rand,
		log:    opts.Logger,
		strict: opts.Strict,
	}
	t.stock = t.addPile(KindStock, 0, layout.StockRegion())
	t.waste = t.addPile(KindWaste, 0, layout.WasteRegion())
	for i := 0; i < opts.Files; i++ {
		t.files = append(t.files, t.addPile(KindTableau, i, layout.TableauRegion(i, opts.Files)))
	}

	t.collect()
	return t, nil
}

func (t *Table) addPile(kind Kind, index int, region core.Area) PileID {
	id := PileID(len(t.piles))
	t.piles = append(t.piles, newPile(id, kind, index, region))
	return id
}

// collect returns every card to the stock face-down, in deck order
func (t *Table) collect() {
	for _, p := range t.piles {
		p.clear()
	}
	stock := t.piles[t.stock]
	for _, id := range card.IDs() {
		stock.Append(id)
		t.place(id, t.stock, stock.Anchor())
		t.cards[id].FaceUp = false
	}
	t.ix.reset()
}

// NewGame gathers all cards, shuffles the stock and deals the tableau
func (t *Table) NewGame() error {
	t.collect()
	Shuffle(t.piles[t.stock].cards, t.rng)
	t.check("shuffle")
	if err := t.Deal(); err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	t.log.Debug("new game dealt", "files", len(t.files), "stock", t.piles[t.stock].Count())
	return nil
}

// place records ownership and moves the card to rest at p
func (t *Table) place(id card.ID, owner PileID, p core.Point) {
	cs := &t.cards[id]
	cs.Pile = owner
	cs.Home = p
	cs.Bounds = t.layout.CardArea(p)
}

// slot returns the resting position of the i-th card of a pile
func (t *Table) slot(p *Pile, i int) core.Point {
	anchor := p.Anchor()
	if p.kind == KindTableau {
		anchor.Y += i * t.layout.FanOffset
	}
	return anchor
}

// restack re-seats every card of the pile at its slot
func (t *Table) restack(p *Pile) {
	for i, id := range p.cards {
		if id == t.ix.active {
			continue
		}
		t.place(id, p.id, t.slot(p, i))
	}
}

// Card returns the identity for a handle
func (t *Table) Card(id card.ID) card.Card { return t.deck[id] }

// State returns a copy of the card's mutable state
func (t *Table) State(id card.ID) CardState { return t.cards[id] }

// Pile returns the pile for a handle
func (t *Table) Pile(id PileID) *Pile { return t.piles[id] }

// Piles returns all piles in z-order, bottom first
func (t *Table) Piles() []*Pile { return t.piles }

func (t *Table) Stock() *Pile { return t.piles[t.stock] }
func (t *Table) Waste() *Pile { return t.piles[t.waste] }

// File returns tableau file i
func (t *Table) File(i int) *Pile { return t.piles[t.files[i]] }

// Files returns the number of tableau files
func (t *Table) Files() int { return len(t.files) }

func (t *Table) Layout() Layout { return t.layout }
func (t *Table) Policy() Policy { return t.policy }

// Interaction returns a copy of the current interaction state
func (t *Table) Interaction() Interaction { return t.ix }
