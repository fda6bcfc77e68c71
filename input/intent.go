package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit    // q, Esc, Ctrl+C, terminal closed
	IntentNewGame // n: reshuffle and redeal
	IntentResize  // Terminal resize event
	IntentPointer // Mouse event folded into the frame pointer
)

// Intent is a parsed user action
type Intent struct {
	Type          IntentType
	Width, Height int // Resize dimensions
}
