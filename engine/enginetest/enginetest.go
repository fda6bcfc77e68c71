// Package enginetest provides dealt tables for tests of packages built on engine
package enginetest

import (
	"testing"

	"github.com/lixenwraith/solitaire/engine"
	"github.com/lixenwraith/solitaire/vmath"
)

// Seed is the default deal used by NewTable
const Seed = 42

// NewTable returns a strict table dealt from Seed unless opts.Rand is set
func NewTable(t testing.TB, opts engine.Options) *engine.Table {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = vmath.NewFastRand(Seed)
	}
	opts.Strict = true

	tbl, err := engine.NewTable(opts)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if err := tbl.NewGame(); err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return tbl
}
