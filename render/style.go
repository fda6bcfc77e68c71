package render

import "github.com/gdamore/tcell/v2"

var (
	styleTable     = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite)
	styleSlot      = styleTable.Foreground(tcell.ColorLightGreen)
	styleFaceBlack = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleFaceRed   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorRed)
	styleBack      = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorLightSteelBlue)
	styleHighlight = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorLime).Bold(true)
	styleStatus    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
	styleMessage   = styleStatus.Foreground(tcell.ColorYellow)
)

// Box drawing runes
const (
	runeTopLeft     = '┌'
	runeTopRight    = '┐'
	runeBottomLeft  = '└'
	runeBottomRight = '┘'
	runeHorizontal  = '─'
	runeVertical    = '│'
	runeBack        = '░'
	runeSlot        = '·'
)
