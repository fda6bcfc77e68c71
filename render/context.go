package render

import "github.com/lixenwraith/solitaire/engine"

// RenderContext is the read-only input of one frame
type RenderContext struct {
	Snapshot      engine.Snapshot
	Width, Height int
	Seed          uint64
	Message       string
}

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, buf *Buffer)
}
