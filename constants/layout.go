package constants

import "time"

// Card geometry in terminal cells
const (
	// CardWidth fits a frame plus a two-rune label with padding
	CardWidth = 7

	// CardHeight is the full face height of an uncovered card
	CardHeight = 5

	// PileGap is the horizontal spacing between adjacent piles
	PileGap = 2

	// RowGap separates the stock/waste row from the tableau row
	RowGap = 1

	// FanOffset is the vertical offset between stacked tableau cards
	// One row leaves the top border, which carries the label, visible
	FanOffset = 1

	// OriginX, OriginY is the top-left corner of the table
	OriginX = 1
	OriginY = 1
)

// Game shape
const (
	// TableauFiles is the conventional Klondike column count
	TableauFiles = 7

	// MaxTableauFiles bounds the column count so the table fits 80 columns
	MaxTableauFiles = 9
)

// Frame timing
const (
	// FrameUpdateInterval drives one interaction update and one render
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize buffers terminal events between frames
	EventQueueSize = 256
)
