package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/solitaire/constants"
	"github.com/lixenwraith/solitaire/engine"
	"github.com/lixenwraith/solitaire/input"
	"github.com/lixenwraith/solitaire/render"
	"github.com/lixenwraith/solitaire/vmath"
)

// Game binds the table to the terminal: events in, frames out
// Every engine call happens on the goroutine running Run
type Game struct {
	screen tcell.Screen
	table  *engine.Table
	input  *input.Machine
	render *render.Orchestrator
	rng    *vmath.FastRand
	log    *slog.Logger

	seed          uint64
	frame         time.Duration
	width, height int
	message       string

	// reseed picks the seed of the next game
	reseed func() uint64
}

// NewGame wires a dealt table to a screen
func NewGame(screen tcell.Screen, table *engine.Table, rng *vmath.FastRand, seed uint64, frame time.Duration, log *slog.Logger) *Game {
	w, h := screen.Size()
	return &Game{
		screen: screen,
		table:  table,
		input:  input.NewMachine(),
		render: render.NewDefaultOrchestrator(screen),
		rng:    rng,
		log:    log,
		seed:   seed,
		frame:  frame,
		width:  w,
		height: h,
		reseed: func() uint64 { return uint64(time.Now().UnixNano()) },
	}
}

// Run drives the frame loop until the player quits or the screen closes
func (g *Game) Run() {
	ticker := time.NewTicker(g.frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, constants.EventQueueSize)
	// Input polling uses a raw goroutine as it interacts directly with the screen
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(g.screen, "EVENT POLLER CRASHED", r)
			}
		}()
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	g.Step()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.Handle(ev) {
				return
			}
		case <-ticker.C:
			g.Step()
		}
	}
}

// Handle applies one terminal event; false means quit
func (g *Game) Handle(ev tcell.Event) bool {
	intent := g.input.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		g.log.Info("quit", "seed", g.seed)
		return false
	case input.IntentNewGame:
		g.NewDeal()
	case input.IntentResize:
		g.width, g.height = intent.Width, intent.Height
		g.render.Sync()
	}
	return true
}

// Step runs one interaction update and renders the result
func (g *Game) Step() {
	res := g.table.Update(g.input.Frame())
	switch {
	case res.Committed:
		g.message = ""
	case res.Aborted:
		g.message = "move rejected"
	case res.Recycled:
		g.message = "waste recycled"
	case res.Drew || res.Lifted:
		g.message = ""
	}

	g.render.RenderFrame(render.RenderContext{
		Snapshot: g.table.Snapshot(),
		Width:    g.width,
		Height:   g.height,
		Seed:     g.seed,
		Message:  g.message,
	})
}

// NewDeal reshuffles with a fresh seed and redeals
func (g *Game) NewDeal() {
	g.seed = g.reseed()
	g.rng.Seed(g.seed)
	g.input.Reset()
	if err := g.table.NewGame(); err != nil {
		g.log.Error("new game failed", "error", err)
		g.message = err.Error()
		return
	}
	g.message = ""
	g.log.Info("new game", "seed", g.seed)
}

// Seed returns the seed of the current deal
func (g *Game) Seed() uint64 { return g.seed }

// crash restores the terminal and exits with the panic and stack
func crash(screen tcell.Screen, title string, r any) {
	if screen != nil {
		screen.Fini()
	}
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", title, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
