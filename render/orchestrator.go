package render

import "github.com/gdamore/tcell/v2"

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	buf       *Buffer
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing to screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	return &Orchestrator{
		buf:       &Buffer{screen: screen},
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers the standard table, highlight, drag and status layers
func NewDefaultOrchestrator(screen tcell.Screen) *Orchestrator {
	o := NewOrchestrator(screen)
	o.Register(BackgroundRenderer{}, PriorityBackground)
	o.Register(TableRenderer{}, PriorityTable)
	o.Register(HighlightRenderer{}, PriorityHighlight)
	o.Register(DragRenderer{}, PriorityDrag)
	o.Register(StatusBarRenderer{}, PriorityUI)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *Orchestrator) RenderFrame(ctx RenderContext) {
	o.buf.screen.Clear()
	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, o.buf)
	}
	o.buf.screen.Show()
}

// Sync forces a full redraw after a resize
func (o *Orchestrator) Sync() {
	o.buf.screen.Sync()
}
