package engine

import (
	"fmt"

	"github.com/lixenwraith/solitaire/card"
	"github.com/lixenwraith/solitaire/core"
)

// InteractionState is the drag-and-drop state
type InteractionState uint8

const (
	StateIdle     InteractionState = iota // Nothing under the pointer
	StateHovering                         // Pointer over a face-up card
	StateDragging                         // A card follows the pointer
)

func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateHovering:
		return "Hovering"
	case StateDragging:
		return "Dragging"
	default:
		return fmt.Sprintf("InteractionState(%d)", s)
	}
}

// ButtonState is the primary pointer button transition for one frame
type ButtonState uint8

const (
	ButtonUp       ButtonState = iota // Not held
	ButtonPressed                     // Went down this frame
	ButtonHeld                        // Down since an earlier frame
	ButtonReleased                    // Went up this frame
)

// Down reports whether the button is held during the frame
func (b ButtonState) Down() bool {
	return b == ButtonPressed || b == ButtonHeld
}

func (b ButtonState) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonPressed:
		return "Pressed"
	case ButtonHeld:
		return "Held"
	case ButtonReleased:
		return "Released"
	default:
		return fmt.Sprintf("ButtonState(%d)", b)
	}
}

// PointerInput is the polled pointer state for one frame
type PointerInput struct {
	Pos    core.Point
	Button ButtonState
}

// FrameResult reports what one Update did
type FrameResult struct {
	Lifted    bool // A drag started
	Committed bool // A dragged card moved to a new pile
	Aborted   bool // A dragged card snapped back home
	Drew      bool
	Recycled  bool
}

// Interaction holds drag and hover state for the session
// Hover fields are recomputed every frame
type Interaction struct {
	active card.ID // Card being dragged
	home   PileID  // Pile the active card was lifted from

	hoveredCard card.ID
	hoveredPile PileID

	last     core.Point // Pointer position of the previous frame
	tracking bool
}

func (ix *Interaction) reset() {
	*ix = Interaction{
		active:      card.None,
		home:        NoPile,
		hoveredCard: card.None,
		hoveredPile: NoPile,
		last:        ix.last,
		tracking:    ix.tracking,
	}
}

// State derives the machine state from the tracked handles
func (ix Interaction) State() InteractionState {
	switch {
	case ix.active != card.None:
		return StateDragging
	case ix.hoveredCard != card.None:
		return StateHovering
	default:
		return StateIdle
	}
}

func (ix Interaction) Active() card.ID      { return ix.active }
func (ix Interaction) Home() PileID         { return ix.home }
func (ix Interaction) HoveredCard() card.ID { return ix.hoveredCard }
func (ix Interaction) HoveredPile() PileID  { return ix.hoveredPile }

// Update advances the interaction by one frame
// Order is fixed: hover resolution, then drag update, then release handling,
// so at most one move is committed per frame
func (t *Table) Update(in PointerInput) FrameResult {
	var res FrameResult
	ix := &t.ix

	var delta core.Point
	if ix.tracking {
		delta = in.Pos.Sub(ix.last)
	}
	ix.last, ix.tracking = in.Pos, true

	// Hover resolution; card hover is suppressed while dragging
	ix.hoveredPile = t.pileAt(in.Pos)
	if ix.active == card.None {
		ix.hoveredCard = t.cardAt(in.Pos)
	} else {
		ix.hoveredCard = card.None
	}

	// Drag update
	switch {
	case ix.active != card.None:
		if delta != (core.Point{}) {
			cs := &t.cards[ix.active]
			cs.Bounds = cs.Bounds.Translate(delta)
		}

	case in.Button.Down() && ix.hoveredCard != card.None:
		ix.active = ix.hoveredCard
		ix.home = t.cards[ix.active].Pile
		ix.hoveredCard = card.None
		res.Lifted = true
		t.log.Debug("lifted card", "card", ix.active, "home", t.piles[ix.home].String())

	case in.Button == ButtonPressed && ix.hoveredPile == t.stock:
		res.Drew, res.Recycled = t.ClickStock()
	}

	// Release handling
	if ix.active != card.None && in.Button == ButtonReleased {
		if t.release() {
			res.Committed = true
		} else {
			res.Aborted = true
		}
	}
	return res
}

// release ends the drag, committing onto the hovered tableau file when allowed
func (t *Table) release() bool {
	ix := &t.ix
	id, home, dest := ix.active, ix.home, ix.hoveredPile
	ix.active, ix.home = card.None, NoPile

	if t.canDrop(id, home, dest) {
		err := t.Move(id, home, dest)
		if err == nil {
			return true
		}
		t.log.Error("move failed", "card", id, "error", err)
	}

	cs := &t.cards[id]
	cs.Bounds = cs.Bounds.At(cs.Home)
	t.log.Debug("drag aborted", "card", id, "home", t.piles[home].String())
	return false
}

func (t *Table) canDrop(id card.ID, home, dest PileID) bool {
	if dest == NoPile || dest == home || t.piles[dest].kind != KindTableau {
		return false
	}
	return t.policy.Allow(t.request(id, home, dest))
}

func (t *Table) request(id card.ID, from, to PileID) MoveRequest {
	src, dst := t.piles[from], t.piles[to]
	req := MoveRequest{
		Card:   t.deck[id],
		From:   src.kind,
		To:     dst.kind,
		Target: card.None,
	}
	if top, err := src.Top(); err == nil {
		req.IsTop = top == id
	}
	if top, err := dst.Top(); err == nil {
		req.Target = top
		req.TargetFaceUp = t.cards[top].FaceUp
	}
	return req
}

// Request builds the policy input for a prospective drop
func (t *Table) Request(id card.ID, from, to PileID) MoveRequest {
	return t.request(id, from, to)
}
