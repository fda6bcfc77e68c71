package constants

// Status line text
const (
	StatusHelp      = "[n] new game  [q] quit"
	StatusRecycle   = "↺"
	StatusSeparator = " │ "
)
