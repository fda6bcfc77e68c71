package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Buffer wraps the screen with cell-level drawing helpers
type Buffer struct {
	screen tcell.Screen
}

// Set writes one cell; out-of-bounds writes are dropped by the screen
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	b.screen.SetContent(x, y, r, nil, style)
}

// Text writes s starting at x and returns the column after the last rune
func (b *Buffer) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

// Fill paints a rectangle with r
func (b *Buffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, r, style)
		}
	}
}
