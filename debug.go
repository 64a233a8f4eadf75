// debug.go - a trimmed debug accessor surface over the System aggregate,
// grounded on the teacher's DebuggableCPU interface but cut down to what a
// single fixed R3000A core needs: no per-architecture breakpoint/watchpoint
// machinery, just register/memory/disassembly access guarded so a separate
// debug-UI goroutine can read consistent state.

package main

import (
	"fmt"
)

// RegisterInfo describes one CPU register for display, mirroring the
// teacher's register-table shape used across its per-architecture debug
// views.
type RegisterInfo struct {
	Name  string
	Value uint32
	Group string
}

// DisassembledLine is one decoded instruction, used by a debug console to
// render a code listing around the current PC.
type DisassembledLine struct {
	Address  uint32
	Mnemonic string
	IsPC     bool
}

// DebugAccessor exposes System state to a separate goroutine (an
// interactive console, a Lua script) without that goroutine touching
// System fields directly. All methods take System.debugMu for their
// duration, and Step takes the write lock. RunFrame and System.Step do not
// take the lock, so a snapshot taken while RunFrame is running can tear.
type DebugAccessor struct {
	system *System
}

func (s *System) Debug() *DebugAccessor {
	return &DebugAccessor{system: s}
}

func (d *DebugAccessor) GetPC() uint32 {
	d.system.debugMu.RLock()
	defer d.system.debugMu.RUnlock()
	return d.system.cpu.pc
}

func (d *DebugAccessor) SetPC(addr uint32) {
	d.system.debugMu.Lock()
	defer d.system.debugMu.Unlock()
	d.system.cpu.pc = addr
	d.system.cpu.nextPC = addr + 4
}

// GetRegisters returns the 34-slot GPR file plus SR/CAUSE/EPC, named the
// way the disassembler names them so a console can print one consistent
// vocabulary.
func (d *DebugAccessor) GetRegisters() []RegisterInfo {
	d.system.debugMu.RLock()
	defer d.system.debugMu.RUnlock()

	c := &d.system.cpu
	regs := make([]RegisterInfo, 0, numGPR+3)
	for i := 0; i < numGPR; i++ {
		regs = append(regs, RegisterInfo{Name: registerName(uint(i)), Value: c.gpr[i], Group: "general"})
	}
	regs = append(regs, RegisterInfo{Name: "$sr", Value: c.cop0.sr, Group: "cop0"})
	regs = append(regs, RegisterInfo{Name: "$cause", Value: c.cop0.cause, Group: "cop0"})
	regs = append(regs, RegisterInfo{Name: "$epc", Value: c.cop0.epc, Group: "cop0"})
	return regs
}

func (d *DebugAccessor) GetRegister(name string) (uint32, bool) {
	for _, r := range d.GetRegisters() {
		if r.Name == name {
			return r.Value, true
		}
	}
	return 0, false
}

func (d *DebugAccessor) SetRegister(name string, value uint32) bool {
	d.system.debugMu.Lock()
	defer d.system.debugMu.Unlock()

	c := &d.system.cpu
	for i := 0; i < numGPR; i++ {
		if registerName(uint(i)) == name {
			c.gpr[i] = value
			return true
		}
	}
	switch name {
	case "$sr":
		c.cop0.sr = value
	case "$cause":
		c.cop0.cause = value
	case "$epc":
		c.cop0.epc = value
	default:
		return false
	}
	return true
}

// Step single-steps the CPU under the write lock so a concurrent snapshot
// reader never observes a torn register file.
func (d *DebugAccessor) Step() {
	d.system.debugMu.Lock()
	defer d.system.debugMu.Unlock()
	d.system.Step()
}

// Disassemble renders count instructions starting at addr without
// affecting CPU state, reading directly off the bus.
func (d *DebugAccessor) Disassemble(addr uint32, count int) []DisassembledLine {
	d.system.debugMu.RLock()
	defer d.system.debugMu.RUnlock()

	lines := make([]DisassembledLine, 0, count)
	pc := d.system.cpu.pc
	for n := 0; n < count; n++ {
		word := d.system.fetch(addr)
		lines = append(lines, DisassembledLine{
			Address:  addr,
			Mnemonic: disassemble(addr, word),
			IsPC:     addr == pc,
		})
		addr += 4
	}
	return lines
}

func (d *DebugAccessor) ReadMemory(addr uint32, size int) []byte {
	d.system.debugMu.RLock()
	defer d.system.debugMu.RUnlock()

	out := make([]byte, size)
	for i := range out {
		out[i] = d.system.read8(addr + uint32(i))
	}
	return out
}

func (d *DebugAccessor) WriteMemory(addr uint32, data []byte) {
	d.system.debugMu.Lock()
	defer d.system.debugMu.Unlock()
	for i, b := range data {
		d.system.write8(addr+uint32(i), b)
	}
}

// GPUCounters reports the stub GPU's command throughput, useful for
// confirming a title is actually driving the GPU without a rasterizer
// attached.
func (d *DebugAccessor) GPUCounters() (gp0, gp1 uint64) {
	d.system.debugMu.RLock()
	defer d.system.debugMu.RUnlock()
	return d.system.gpu.commandCounts()
}

func (d *DebugAccessor) String() string {
	d.system.debugMu.RLock()
	defer d.system.debugMu.RUnlock()
	c := &d.system.cpu
	return fmt.Sprintf("pc=0x%08x sr=0x%08x cause=0x%08x epc=0x%08x", c.pc, c.cop0.sr, c.cop0.cause, c.cop0.epc)
}
