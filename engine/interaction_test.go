package engine

import (
	"testing"

	"github.com/lixenwraith/solitaire/card"
	"github.com/lixenwraith/solitaire/core"
	"github.com/lixenwraith/solitaire/vmath"
)

// offTable is a point outside every pile region
var offTable = core.Point{X: 75, Y: 2}

func frame(pos core.Point, b ButtonState) PointerInput {
	return PointerInput{Pos: pos, Button: b}
}

// dropPoint returns a point inside the pile region below all its cards
func dropPoint(p *Pile) core.Point {
	r := p.Region()
	return core.Point{X: r.X + 1, Y: r.Y + r.Height - 1}
}

func TestUpdate_HoverFaceUpCard(t *testing.T) {
	tbl := newTestTable(t, Options{})
	top, _ := tbl.File(3).Top()
	pos := tbl.State(top).Bounds.Origin()

	tbl.Update(frame(pos, ButtonUp))
	ix := tbl.Interaction()
	if ix.State() != StateHovering {
		t.Fatalf("Expected Hovering, got %s", ix.State())
	}
	if ix.HoveredCard() != top {
		t.Errorf("Expected hovered %s, got %s", top, ix.HoveredCard())
	}
	if ix.HoveredPile() != tbl.File(3).ID() {
		t.Errorf("Expected hovered pile %d, got %d", tbl.File(3).ID(), ix.HoveredPile())
	}

	tbl.Update(frame(offTable, ButtonUp))
	if s := tbl.Interaction().State(); s != StateIdle {
		t.Errorf("Expected Idle off the table, got %s", s)
	}
}

func TestUpdate_FaceDownNotHoverable(t *testing.T) {
	tbl := newTestTable(t, Options{})

	// Stock cards are all face-down
	tbl.Update(frame(tbl.Stock().Anchor(), ButtonUp))
	if got := tbl.Interaction().HoveredCard(); got != card.None {
		t.Errorf("Expected no hovered card over stock, got %s", got)
	}

	// Row 0 of file 6 is visible only through the first face-down card
	tbl.Update(frame(tbl.File(6).Anchor(), ButtonUp))
	if got := tbl.Interaction().HoveredCard(); got != card.None {
		t.Errorf("Expected no hovered card over face-down run, got %s", got)
	}
}

func TestUpdate_TopmostWins(t *testing.T) {
	tbl := newTestTable(t, Options{})
	file := tbl.File(0)
	lower, _ := file.Top()

	extra, _ := tbl.File(1).Top()
	if err := tbl.Move(extra, tbl.File(1).ID(), file.ID()); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	// Both cards cover the second row; the later one is on top
	overlap := file.Anchor().Add(core.Point{X: 1, Y: tbl.Layout().FanOffset})
	tbl.Update(frame(overlap, ButtonUp))
	if got := tbl.Interaction().HoveredCard(); got != extra {
		t.Errorf("Expected topmost %s, got %s", extra, got)
	}

	// The first row is only covered by the lower card
	tbl.Update(frame(file.Anchor(), ButtonUp))
	if got := tbl.Interaction().HoveredCard(); got != lower {
		t.Errorf("Expected lower %s, got %s", lower, got)
	}
}

func TestUpdate_DragCommit(t *testing.T) {
	tbl := newTestTable(t, Options{})
	src, dst := tbl.File(1), tbl.File(3)
	id, _ := src.Top()
	below := src.At(0)
	start := tbl.State(id).Bounds.Origin()

	tbl.Update(frame(start, ButtonUp))
	res := tbl.Update(frame(start, ButtonPressed))
	if !res.Lifted {
		t.Fatal("Expected drag to start")
	}
	ix := tbl.Interaction()
	if ix.State() != StateDragging || ix.Active() != id || ix.Home() != src.ID() {
		t.Fatalf("Unexpected drag state: state=%s active=%s home=%d", ix.State(), ix.Active(), ix.Home())
	}

	target := dropPoint(dst)
	before := tbl.State(id).Bounds
	tbl.Update(frame(target, ButtonHeld))
	if got, want := tbl.State(id).Bounds, before.Translate(target.Sub(start)); got != want {
		t.Errorf("Dragged bounds %+v, expected %+v", got, want)
	}

	res = tbl.Update(frame(target, ButtonReleased))
	if !res.Committed || res.Aborted {
		t.Fatalf("Expected commit, got %+v", res)
	}
	if top, _ := dst.Top(); top != id {
		t.Errorf("Expected %s on destination, got %s", id, top)
	}
	if !tbl.State(below).FaceUp {
		t.Error("Expected source's new top to be revealed")
	}
	if s := tbl.Interaction().State(); s == StateDragging {
		t.Error("Drag still active after release")
	}
	if err := tbl.Verify(); err != nil {
		t.Errorf("Verify after commit: %v", err)
	}
}

func TestUpdate_DragAbortIdempotent(t *testing.T) {
	tbl := newTestTable(t, Options{})
	src := tbl.File(4)
	id, _ := src.Top()
	orig := tbl.State(id)
	members := src.Cards()

	for i := 0; i < 3; i++ {
		start := tbl.State(id).Bounds.Origin()
		tbl.Update(frame(start, ButtonUp))
		tbl.Update(frame(start, ButtonPressed))
		tbl.Update(frame(start.Add(core.Point{X: 3, Y: -1}), ButtonHeld))
		tbl.Update(frame(offTable, ButtonHeld))
		res := tbl.Update(frame(offTable, ButtonReleased))
		if !res.Aborted {
			t.Fatalf("Round %d: expected abort, got %+v", i, res)
		}

		if got := tbl.State(id); got != orig {
			t.Fatalf("Round %d: card state drifted %+v -> %+v", i, orig, got)
		}
		if got := src.Cards(); len(got) != len(members) || got[len(got)-1] != id {
			t.Fatalf("Round %d: pile membership changed", i)
		}
	}
}

func TestUpdate_AbortTargets(t *testing.T) {
	tests := []struct {
		name   string
		target func(*Table) core.Point
	}{
		{"home pile", func(tbl *Table) core.Point { return dropPoint(tbl.File(2)) }},
		{"waste", func(tbl *Table) core.Point { return tbl.Waste().Anchor() }},
		{"stock", func(tbl *Table) core.Point { return tbl.Stock().Anchor() }},
		{"nowhere", func(*Table) core.Point { return offTable }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl := newTestTable(t, Options{})
			id, _ := tbl.File(2).Top()
			start := tbl.State(id).Bounds.Origin()
			stock := tbl.Stock().Count()

			tbl.Update(frame(start, ButtonPressed))
			target := tc.target(tbl)
			tbl.Update(frame(target, ButtonHeld))
			res := tbl.Update(frame(target, ButtonReleased))

			if !res.Aborted || res.Committed {
				t.Errorf("Expected abort, got %+v", res)
			}
			if top, _ := tbl.File(2).Top(); top != id {
				t.Error("Card left its home pile")
			}
			if tbl.Stock().Count() != stock {
				t.Error("Release over stock triggered a draw")
			}
		})
	}
}

func TestUpdate_PolicyRejects(t *testing.T) {
	var seen MoveRequest
	deny := PolicyFunc(func(req MoveRequest) bool {
		seen = req
		return false
	})
	tbl := newTestTable(t, Options{Policy: deny})
	id, _ := tbl.File(0).Top()
	dst := tbl.File(6)
	dstTop, _ := dst.Top()

	start := tbl.State(id).Bounds.Origin()
	tbl.Update(frame(start, ButtonPressed))
	res := tbl.Update(frame(dropPoint(dst), ButtonReleased))

	if !res.Aborted {
		t.Fatalf("Expected abort on policy rejection, got %+v", res)
	}
	if seen.Card != tbl.Card(id) || seen.Target != dstTop || !seen.IsTop || !seen.TargetFaceUp {
		t.Errorf("Unexpected request %+v", seen)
	}
	if seen.From != KindTableau || seen.To != KindTableau {
		t.Errorf("Expected tableau kinds, got %s -> %s", seen.From, seen.To)
	}
}

func TestUpdate_HoverSuppressedWhileDragging(t *testing.T) {
	tbl := newTestTable(t, Options{})
	id, _ := tbl.File(0).Top()
	other, _ := tbl.File(5).Top()

	tbl.Update(frame(tbl.State(id).Bounds.Origin(), ButtonPressed))
	tbl.Update(frame(tbl.State(other).Bounds.Origin(), ButtonHeld))

	ix := tbl.Interaction()
	if ix.HoveredCard() != card.None {
		t.Errorf("Expected hover suppressed during drag, got %s", ix.HoveredCard())
	}
	if ix.Active() != id {
		t.Errorf("Expected %s still active, got %s", id, ix.Active())
	}

	// A second press while dragging does not start another drag
	res := tbl.Update(frame(tbl.State(other).Bounds.Origin(), ButtonPressed))
	if res.Lifted || tbl.Interaction().Active() != id {
		t.Error("Press during drag changed the active card")
	}
}

func TestUpdate_StockClick(t *testing.T) {
	tbl := newTestTable(t, Options{})
	stock := tbl.Stock().Count()
	pos := tbl.Stock().Anchor()

	res := tbl.Update(frame(pos, ButtonPressed))
	if !res.Drew {
		t.Fatalf("Expected draw on stock press, got %+v", res)
	}
	tbl.Update(frame(pos, ButtonHeld))
	tbl.Update(frame(pos, ButtonReleased))
	if tbl.Stock().Count() != stock-1 || tbl.Waste().Count() != 1 {
		t.Errorf("Expected one draw, stock=%d waste=%d", tbl.Stock().Count(), tbl.Waste().Count())
	}

	for tbl.Stock().Count() > 0 {
		tbl.Update(frame(pos, ButtonPressed))
		tbl.Update(frame(pos, ButtonReleased))
	}
	res = tbl.Update(frame(pos, ButtonPressed))
	if !res.Recycled {
		t.Fatalf("Expected recycle on empty stock press, got %+v", res)
	}
	if tbl.Stock().Count() != stock {
		t.Errorf("Expected stock restored to %d, got %d", stock, tbl.Stock().Count())
	}
}

func TestUpdate_DragFromWaste(t *testing.T) {
	tbl := newTestTable(t, Options{})
	tbl.Update(frame(tbl.Stock().Anchor(), ButtonPressed))
	tbl.Update(frame(tbl.Stock().Anchor(), ButtonReleased))
	drawn, _ := tbl.Waste().Top()

	pos := tbl.Waste().Anchor()
	tbl.Update(frame(pos, ButtonUp))
	tbl.Update(frame(pos, ButtonPressed))
	if tbl.Interaction().Home() != tbl.Waste().ID() {
		t.Fatalf("Expected waste as home pile, got %d", tbl.Interaction().Home())
	}

	target := dropPoint(tbl.File(2))
	res := tbl.Update(frame(target, ButtonReleased))
	if !res.Committed {
		t.Fatalf("Expected commit, got %+v", res)
	}
	if top, _ := tbl.File(2).Top(); top != drawn {
		t.Errorf("Expected %s on file 2, got %s", drawn, top)
	}
	if tbl.Waste().Count() != 0 {
		t.Errorf("Expected empty waste, got %d", tbl.Waste().Count())
	}
}

func TestSnapshot_DraggedOnTop(t *testing.T) {
	tbl := newTestTable(t, Options{})
	id, _ := tbl.File(2).Top()

	tbl.Update(frame(tbl.State(id).Bounds.Origin(), ButtonPressed))
	snap := tbl.Snapshot()

	if snap.Dragged == nil || snap.Dragged.ID != id {
		t.Fatalf("Expected %s as dragged card, got %+v", id, snap.Dragged)
	}
	if snap.State != StateDragging {
		t.Errorf("Expected Dragging, got %s", snap.State)
	}
	for _, cv := range snap.Piles[tbl.File(2).ID()].Cards {
		if cv.ID == id {
			t.Error("Dragged card listed in its pile view")
		}
	}

	total := 1
	for _, pv := range snap.Piles {
		total += len(pv.Cards)
	}
	if total != card.DeckSize {
		t.Errorf("Snapshot shows %d cards, expected %d", total, card.DeckSize)
	}
}

func randomPoint(rng *vmath.FastRand, w, h int) core.Point {
	return core.Point{X: rng.Intn(w + 2), Y: rng.Intn(h + 2)}
}

func TestHitTest_CardAndPileAt(t *testing.T) {
	tbl := newTestTable(t, Options{})
	f := tbl.File(5)
	top, _ := f.Top()
	under := f.At(f.Count() - 2)

	if got := tbl.CardAt(tbl.State(top).Bounds.Origin()); got != top {
		t.Errorf("Expected %s at the top card origin, got %s", top, got)
	}
	// Fanned row of the face-down card beneath the top
	if got := tbl.CardAt(tbl.State(under).Bounds.Origin()); got != card.None {
		t.Errorf("Expected face-down card to be unhoverable, got %s", got)
	}
	if got := tbl.PileAt(dropPoint(f)); got != f.ID() {
		t.Errorf("Expected pile %d below the fan, got %d", f.ID(), got)
	}
	if got := tbl.PileAt(tbl.Waste().Anchor()); got != tbl.Waste().ID() {
		t.Errorf("Expected waste at its anchor, got %d", got)
	}
	if got := tbl.PileAt(offTable); got != NoPile {
		t.Errorf("Expected no pile off the table, got %d", got)
	}
	if got := tbl.CardAt(offTable); got != card.None {
		t.Errorf("Expected no card off the table, got %s", got)
	}
}
