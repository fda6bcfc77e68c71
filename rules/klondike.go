// Package rules provides move legality policies for the engine.
package rules

import (
	"github.com/lixenwraith/solitaire/card"
	"github.com/lixenwraith/solitaire/engine"
)

// Klondike enforces tableau building: only a pile's top card moves,
// empty files take Kings, otherwise rank descends by one with alternating color
type Klondike struct{}

func (Klondike) Name() string { return "klondike" }

func (Klondike) Allow(req engine.MoveRequest) bool {
	if !req.IsTop || req.To != engine.KindTableau {
		return false
	}
	if !req.HasTarget() {
		return req.Card.Rank == card.King
	}
	if !req.TargetFaceUp {
		return false
	}
	target := req.Target.Card()
	return target.Color() != req.Card.Color() && target.Rank == req.Card.Rank+1
}
