package engine

import (
	"github.com/lixenwraith/solitaire/card"
	"github.com/lixenwraith/solitaire/constants"
	"github.com/lixenwraith/solitaire/core"
)

// Layout places piles on the screen grid
// All values are terminal cells
type Layout struct {
	Origin     core.Point
	CardWidth  int
	CardHeight int
	Gap        int // Horizontal space between piles
	RowGap     int // Vertical space between the top row and the tableau
	FanOffset  int // Vertical step between stacked tableau cards
}

// DefaultLayout returns the standard terminal geometry
func DefaultLayout() Layout {
	return Layout{
		Origin:     core.Point{X: constants.OriginX, Y: constants.OriginY},
		CardWidth:  constants.CardWidth,
		CardHeight: constants.CardHeight,
		Gap:        constants.PileGap,
		RowGap:     constants.RowGap,
		FanOffset:  constants.FanOffset,
	}
}

// CardArea returns the bounds of a card resting at p
func (l Layout) CardArea(p core.Point) core.Area {
	return core.Area{X: p.X, Y: p.Y, Width: l.CardWidth, Height: l.CardHeight}
}

func (l Layout) column(i int) int {
	return l.Origin.X + i*(l.CardWidth+l.Gap)
}

// StockRegion is the first slot of the top row
func (l Layout) StockRegion() core.Area {
	return l.CardArea(core.Point{X: l.column(0), Y: l.Origin.Y})
}

// WasteRegion is the second slot of the top row
func (l Layout) WasteRegion() core.Area {
	return l.CardArea(core.Point{X: l.column(1), Y: l.Origin.Y})
}

// TableauRegion covers the tallest file column i can grow to
// The deepest file holds files-1 face-down cards plus a full King-to-Ace run
func (l Layout) TableauRegion(i, files int) core.Area {
	maxLen := files - 1 + card.RankCount
	a := l.CardArea(core.Point{X: l.column(i), Y: l.Origin.Y + l.CardHeight + l.RowGap})
	a.Height += (maxLen - 1) * l.FanOffset
	return a
}

// Size returns the width and height of the whole table
func (l Layout) Size(files int) (int, int) {
	last := l.TableauRegion(files-1, files)
	waste := l.WasteRegion()
	return max(last.X+last.Width, waste.X+waste.Width), last.Y + last.Height
}
