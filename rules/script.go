package rules

import (
	"fmt"
	"log/slog"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/lixenwraith/solitaire/card"
	"github.com/lixenwraith/solitaire/engine"
)

// ScriptEntry is the Lua global consulted for every drop
const ScriptEntry = "allow"

// Script evaluates drops with a Lua function:
//
//	function allow(move) return move.to == "tableau" end
//
// move carries suit, rank, color, from, to, is_top and target
// (a table with suit, rank, color, face_up, or nil for an empty file).
// A script error or a non-boolean result rejects the move.
type Script struct {
	name string
	L    *lua.LState
	fn   lua.LValue
	log  *slog.Logger
}

// LoadScript compiles a policy from a Lua file
func LoadScript(path string, log *slog.Logger) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules script: %w", err)
	}
	return NewScript(path, string(src), log)
}

// NewScript compiles a policy from Lua source
// Only the base, table, string and math libraries are opened
func NewScript(name, src string, log *slog.Logger) (*Script, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{Fn: L.NewFunction(lib.open), NRet: 0, Protect: true}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("open lua %s: %w", lib.name, err)
		}
	}

	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("load rules script %s: %w", name, err)
	}
	fn := L.GetGlobal(ScriptEntry)
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("rules script %s: global %q is %s, want function", name, ScriptEntry, fn.Type())
	}

	return &Script{name: name, L: L, fn: fn, log: log}, nil
}

func (s *Script) Name() string { return "script" }

// Allow calls the script; not safe for concurrent use
func (s *Script) Allow(req engine.MoveRequest) bool {
	if err := s.L.CallByParam(lua.P{Fn: s.fn, NRet: 1, Protect: true}, s.moveTable(req)); err != nil {
		s.log.Warn("rules script failed", "script", s.name, "error", err)
		return false
	}
	ret := s.L.Get(-1)
	s.L.Pop(1)

	b, ok := ret.(lua.LBool)
	if !ok {
		s.log.Warn("rules script returned non-boolean", "script", s.name, "type", ret.Type().String())
		return false
	}
	return bool(b)
}

// Close releases the Lua state
func (s *Script) Close() {
	s.L.Close()
}

func (s *Script) moveTable(req engine.MoveRequest) *lua.LTable {
	t := s.cardTable(req.Card)
	t.RawSetString("from", lua.LString(req.From.String()))
	t.RawSetString("to", lua.LString(req.To.String()))
	t.RawSetString("is_top", lua.LBool(req.IsTop))
	if req.HasTarget() {
		target := s.cardTable(req.Target.Card())
		target.RawSetString("face_up", lua.LBool(req.TargetFaceUp))
		t.RawSetString("target", target)
	}
	return t
}

func (s *Script) cardTable(c card.Card) *lua.LTable {
	t := s.L.NewTable()
	t.RawSetString("suit", lua.LString(c.Suit.String()))
	t.RawSetString("rank", lua.LNumber(c.Rank))
	t.RawSetString("color", lua.LString(c.Color().String()))
	return t
}
