package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/solitaire/core"
	"github.com/lixenwraith/solitaire/engine"
)

// Machine folds terminal events into one engine.PointerInput per frame
// Button edges are queued so a press and release inside one frame
// are reported on consecutive frames instead of being lost
type Machine struct {
	pos  core.Point
	down bool // Primary button currently held

	// Edges not yet reported, oldest first
	edges []engine.ButtonState

	// Last reported button state, to turn Pressed into Held
	reported engine.ButtonState
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		edges: make([]engine.ButtonState, 0, 4),
	}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no meaning to the game
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		m.processMouse(ev)
		return &Intent{Type: IntentPointer}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return &Intent{Type: IntentQuit}
		case 'n', 'N':
			return &Intent{Type: IntentNewGame}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	m.pos = core.Point{X: x, Y: y}

	// Wheel and secondary buttons are ignored
	down := ev.Buttons()&tcell.Button1 != 0
	if down == m.down {
		return
	}
	m.down = down
	if down {
		m.edges = append(m.edges, engine.ButtonPressed)
	} else {
		m.edges = append(m.edges, engine.ButtonReleased)
	}
}

// Frame returns the pointer state for the next update and consumes one edge
func (m *Machine) Frame() engine.PointerInput {
	var b engine.ButtonState
	if len(m.edges) > 0 {
		b = m.edges[0]
		m.edges = m.edges[1:]
	} else {
		switch m.reported {
		case engine.ButtonPressed, engine.ButtonHeld:
			b = engine.ButtonHeld
		default:
			b = engine.ButtonUp
		}
	}
	m.reported = b
	return engine.PointerInput{Pos: m.pos, Button: b}
}

// Reset drops pending edges and forgets the held button
func (m *Machine) Reset() {
	m.edges = m.edges[:0]
	m.down = false
	m.reported = engine.ButtonUp
}

// Pos returns the last known pointer position
func (m *Machine) Pos() core.Point {
	return m.pos
}
