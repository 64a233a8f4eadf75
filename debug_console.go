// debug_console.go - interactive raw-mode debug REPL, adapted from the
// teacher's TerminalHost stdin-reader pattern

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// DebugConsole reads raw stdin a line at a time and dispatches simple
// debug commands (step, regs, mem, disasm, continue, quit) against a
// DebugAccessor. Only instantiated by main when -debug is passed.
type DebugConsole struct {
	dbg          *DebugAccessor
	fd           int
	oldTermState *term.State
	line         []byte
}

func NewDebugConsole(dbg *DebugAccessor) *DebugConsole {
	return &DebugConsole{dbg: dbg, fd: int(os.Stdin.Fd())}
}

func (c *DebugConsole) Start() error {
	oldState, err := term.MakeRaw(c.fd)
	if err != nil {
		return err
	}
	c.oldTermState = oldState
	fmt.Print("psxcore debug console: step/regs/mem <addr> <n>/disasm <addr> <n>/continue/quit\r\n> ")
	return nil
}

func (c *DebugConsole) Stop() {
	if c.oldTermState != nil {
		_ = term.Restore(c.fd, c.oldTermState)
		c.oldTermState = nil
	}
}

// Poll reads any pending stdin bytes and executes complete lines. It
// returns true when the console requested quit.
func (c *DebugConsole) Poll() (quit bool) {
	buf := make([]byte, 64)
	n, err := syscall.Read(c.fd, buf)
	if err != nil || n == 0 {
		return false
	}
	for _, b := range buf[:n] {
		if b == '\r' || b == '\n' {
			fmt.Print("\r\n")
			if c.dispatch(string(c.line)) {
				return true
			}
			c.line = c.line[:0]
			fmt.Print("> ")
			continue
		}
		c.line = append(c.line, b)
		fmt.Printf("%c", b)
	}
	return false
}

func (c *DebugConsole) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "step", "s":
		c.dbg.Step()
		fmt.Printf("%s\r\n", c.dbg.String())
	case "regs", "r":
		for _, reg := range c.dbg.GetRegisters() {
			fmt.Printf("%-8s 0x%08x\r\n", reg.Name, reg.Value)
		}
	case "mem", "m":
		if len(fields) < 3 {
			fmt.Print("usage: mem <addr> <n>\r\n")
			break
		}
		addr := parseHex(fields[1])
		n := parseInt(fields[2])
		data := c.dbg.ReadMemory(addr, n)
		fmt.Printf("%x\r\n", data)
	case "disasm", "d":
		if len(fields) < 3 {
			fmt.Print("usage: disasm <addr> <n>\r\n")
			break
		}
		addr := parseHex(fields[1])
		n := parseInt(fields[2])
		for _, l := range c.dbg.Disassemble(addr, n) {
			marker := "  "
			if l.IsPC {
				marker = "->"
			}
			fmt.Printf("%s 0x%08x  %s\r\n", marker, l.Address, l.Mnemonic)
		}
	case "copy":
		if copyRegistersToClipboard(c.dbg) {
			fmt.Print("registers copied to clipboard\r\n")
		} else {
			fmt.Print("clipboard unavailable\r\n")
		}
	case "continue", "c":
		fmt.Print("continuing\r\n")
	case "quit", "q":
		return true
	default:
		fmt.Printf("unknown command: %s\r\n", fields[0])
	}
	return false
}

func parseHex(s string) uint32 {
	s = strings.TrimPrefix(s, "0x")
	v, _ := strconv.ParseUint(s, 16, 32)
	return uint32(v)
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
