package engine

import "github.com/lixenwraith/solitaire/card"

// MoveRequest describes a drop about to be committed
type MoveRequest struct {
	Card  card.Card
	From  Kind
	To    Kind
	IsTop bool // Card is the top of its source pile

	// Target is the destination top card, card.None when the destination is empty
	Target       card.ID
	TargetFaceUp bool
}

// HasTarget reports whether the destination holds a card
func (r MoveRequest) HasTarget() bool {
	return r.Target != card.None
}

// Policy decides whether a drop onto a tableau file is legal
// Consulted only for drops the state machine would otherwise commit
type Policy interface {
	Name() string
	Allow(req MoveRequest) bool
}

// Permissive accepts every drop onto a tableau file
type Permissive struct{}

func (Permissive) Name() string           { return "permissive" }
func (Permissive) Allow(MoveRequest) bool { return true }

// PolicyFunc adapts a function to Policy
type PolicyFunc func(req MoveRequest) bool

func (PolicyFunc) Name() string                 { return "func" }
func (f PolicyFunc) Allow(req MoveRequest) bool { return f(req) }
