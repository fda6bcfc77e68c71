package rules

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/solitaire/engine"
)

// Policy names accepted by New
const (
	NamePermissive = "permissive"
	NameKlondike   = "klondike"
	NameScript     = "script"
)

// New resolves a policy by name
// The returned release function frees script resources and is never nil
func New(name, script string, log *slog.Logger) (engine.Policy, func(), error) {
	switch name {
	case NamePermissive, "":
		return engine.Permissive{}, func() {}, nil
	case NameKlondike:
		return Klondike{}, func() {}, nil
	case NameScript:
		s, err := LoadScript(script, log)
		if err != nil {
			return nil, func() {}, err
		}
		return s, s.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown rules %q", name)
	}
}
