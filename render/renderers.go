package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/solitaire/card"
	"github.com/lixenwraith/solitaire/constants"
	"github.com/lixenwraith/solitaire/core"
	"github.com/lixenwraith/solitaire/engine"
	"github.com/lixenwraith/solitaire/vmath"
)

// BackgroundRenderer paints the table felt
type BackgroundRenderer struct{}

func (BackgroundRenderer) Render(ctx RenderContext, buf *Buffer) {
	buf.Fill(0, 0, ctx.Width, ctx.Height, ' ', styleTable)
}

// TableRenderer draws every pile bottom to top, empty piles as outlined slots
type TableRenderer struct{}

func (TableRenderer) Render(ctx RenderContext, buf *Buffer) {
	snap := ctx.Snapshot
	for _, pv := range snap.Piles {
		if len(pv.Cards) == 0 {
			drawSlot(buf, pv.Slot, pv.Kind == engine.KindStock && snap.WasteCount > 0)
			continue
		}
		for _, cv := range pv.Cards {
			drawCard(buf, cv)
		}
	}
}

// HighlightRenderer outlines the hovered card
type HighlightRenderer struct{}

func (HighlightRenderer) Render(ctx RenderContext, buf *Buffer) {
	snap := ctx.Snapshot
	if snap.Hovered == card.None {
		return
	}
	for _, pv := range snap.Piles {
		for _, cv := range pv.Cards {
			if cv.ID == snap.Hovered {
				drawFrame(buf, cv.Bounds, styleHighlight, label(cv))
				return
			}
		}
	}
}

// DragRenderer draws the dragged card last so it floats above the table
type DragRenderer struct{}

func (DragRenderer) Render(ctx RenderContext, buf *Buffer) {
	cv := ctx.Snapshot.Dragged
	if cv == nil {
		return
	}
	drawCard(buf, *cv)
	drawFrame(buf, cv.Bounds, styleHighlight, label(*cv))
}

// StatusBarRenderer writes counts, seed and key help on the bottom row
type StatusBarRenderer struct{}

func (StatusBarRenderer) Render(ctx RenderContext, buf *Buffer) {
	y := ctx.Height - 1
	if y < 0 {
		return
	}
	buf.Fill(0, y, ctx.Width, 1, ' ', styleStatus)

	snap := ctx.Snapshot
	parts := []string{
		fmt.Sprintf(" stock %d", snap.StockCount),
		fmt.Sprintf("waste %d", snap.WasteCount),
		fmt.Sprintf("seed %d", ctx.Seed),
		"rules " + snap.Policy,
	}
	x := buf.Text(0, y, strings.Join(parts, constants.StatusSeparator), styleStatus)
	if ctx.Message != "" {
		x = buf.Text(x+2, y, ctx.Message, styleMessage)
	}
	if help := ctx.Width - len([]rune(constants.StatusHelp)) - 1; help > x {
		buf.Text(help, y, constants.StatusHelp, styleStatus)
	}
}

func label(cv engine.CardView) string {
	if !cv.FaceUp {
		return ""
	}
	return cv.Card.Label()
}

func faceStyle(c card.Card) tcell.Style {
	if c.Color() == card.Red {
		return styleFaceRed
	}
	return styleFaceBlack
}

// drawCard paints the card body then its frame; the label sits in the top border
// so it stays readable when the card is covered by a fanned card
func drawCard(buf *Buffer, cv engine.CardView) {
	a := cv.Bounds
	if a.Empty() {
		return
	}

	if !cv.FaceUp {
		buf.Fill(a.X, a.Y, a.Width, a.Height, runeBack, styleBack)
		drawFrame(buf, a, styleBack, "")
		return
	}

	style := faceStyle(cv.Card)
	buf.Fill(a.X, a.Y, a.Width, a.Height, ' ', style)
	drawFrame(buf, a, style, cv.Card.Label())
	if a.Height > 2 {
		c := vmath.AreaCenter(a)
		buf.Text(c.X, c.Y, cv.Card.Suit.Symbol(), style)
	}
}

// drawFrame draws a box border with an optional label after the top-left corner
func drawFrame(buf *Buffer, a core.Area, style tcell.Style, text string) {
	if a.Width < 2 || a.Height < 1 {
		return
	}
	right, bottom := a.X+a.Width-1, a.Y+a.Height-1

	for x := a.X + 1; x < right; x++ {
		buf.Set(x, a.Y, runeHorizontal, style)
		if bottom > a.Y {
			buf.Set(x, bottom, runeHorizontal, style)
		}
	}
	for y := a.Y + 1; y < bottom; y++ {
		buf.Set(a.X, y, runeVertical, style)
		buf.Set(right, y, runeVertical, style)
	}
	buf.Set(a.X, a.Y, runeTopLeft, style)
	buf.Set(right, a.Y, runeTopRight, style)
	if bottom > a.Y {
		buf.Set(a.X, bottom, runeBottomLeft, style)
		buf.Set(right, bottom, runeBottomRight, style)
	}

	if text != "" {
		buf.Text(a.X+1, a.Y, text, style)
	}
}

// drawSlot outlines an empty pile; an empty stock with cards to recycle shows a marker
func drawSlot(buf *Buffer, a core.Area, recycle bool) {
	right, bottom := a.X+a.Width-1, a.Y+a.Height-1
	for _, p := range []core.Point{{X: a.X, Y: a.Y}, {X: right, Y: a.Y}, {X: a.X, Y: bottom}, {X: right, Y: bottom}} {
		buf.Set(p.X, p.Y, runeSlot, styleSlot)
	}
	if recycle {
		c := vmath.AreaCenter(a)
		buf.Text(c.X, c.Y, constants.StatusRecycle, styleSlot)
	}
}
