// debug_lua.go - Lua-scriptable debug console surface over DebugAccessor.
// No example in the reference pack exercises gopher-lua directly; this
// wiring follows the library's own documented embedding API (register Go
// functions as global Lua functions, call lstate.DoString per script).

package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

func init() {
	compiledFeatures = append(compiledFeatures, "debug:lua")
}

// LuaDebugger wraps an *lua.LState wired to a DebugAccessor, exposing
// psx.step(), psx.reg(name), psx.setreg(name, value), psx.mem(addr, n) and
// psx.disasm(addr, n) to scripts.
type LuaDebugger struct {
	state *lua.LState
	dbg   *DebugAccessor
}

func NewLuaDebugger(dbg *DebugAccessor) *LuaDebugger {
	d := &LuaDebugger{state: lua.NewState(), dbg: dbg}
	d.registerAPI()
	return d
}

func (d *LuaDebugger) Close() {
	d.state.Close()
}

func (d *LuaDebugger) Run(script string) error {
	return d.state.DoString(script)
}

func (d *LuaDebugger) registerAPI() {
	mod := d.state.NewTable()

	d.state.SetField(mod, "step", d.state.NewFunction(func(L *lua.LState) int {
		d.dbg.Step()
		return 0
	}))

	d.state.SetField(mod, "reg", d.state.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		v, ok := d.dbg.GetRegister(name)
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LNumber(v))
		return 1
	}))

	d.state.SetField(mod, "setreg", d.state.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		value := uint32(L.CheckNumber(2))
		L.Push(lua.LBool(d.dbg.SetRegister(name, value)))
		return 1
	}))

	d.state.SetField(mod, "mem", d.state.NewFunction(func(L *lua.LState) int {
		addr := uint32(L.CheckNumber(1))
		n := L.CheckInt(2)
		data := d.dbg.ReadMemory(addr, n)
		L.Push(lua.LString(fmt.Sprintf("%x", data)))
		return 1
	}))

	d.state.SetField(mod, "disasm", d.state.NewFunction(func(L *lua.LState) int {
		addr := uint32(L.CheckNumber(1))
		n := L.CheckInt(2)
		t := L.NewTable()
		for i, line := range d.dbg.Disassemble(addr, n) {
			L.RawSetInt(t, i+1, lua.LString(fmt.Sprintf("0x%08x  %s", line.Address, line.Mnemonic)))
		}
		L.Push(t)
		return 1
	}))

	d.state.SetGlobal("psx", mod)
}
