package engine

import (
	"testing"

	"github.com/lixenwraith/solitaire/vmath"
)

// newTestTable returns a strict, dealt table with a fixed seed
func newTestTable(t testing.TB, opts Options) *Table {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = vmath.NewFastRand(42)
	}
	opts.Strict = true

	tbl, err := NewTable(opts)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if err := tbl.NewGame(); err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return tbl
}
