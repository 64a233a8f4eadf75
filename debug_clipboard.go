//go:build !headless

// debug_clipboard.go - optional "copy" action for the debug console,
// adapted from the teacher's clipboard-paste handler in its ebiten video
// backend (same golang.design/x/clipboard Init-once pattern, writing
// instead of reading).

package main

import (
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

func init() {
	compiledFeatures = append(compiledFeatures, "debug:clipboard")
}

var (
	clipboardOnce sync.Once
	clipboardOK   bool
)

func clipboardAvailable() bool {
	clipboardOnce.Do(func() {
		clipboardOK = clipboard.Init() == nil
	})
	return clipboardOK
}

// copyRegistersToClipboard renders the current register file as text and
// writes it to the system clipboard, for pasting into a bug report.
func copyRegistersToClipboard(dbg *DebugAccessor) bool {
	if !clipboardAvailable() {
		return false
	}
	var b strings.Builder
	for _, r := range dbg.GetRegisters() {
		b.WriteString(r.Name)
		b.WriteString(" = 0x")
		b.WriteString(hex32(r.Value))
		b.WriteByte('\n')
	}
	clipboard.Write(clipboard.FmtText, []byte(b.String()))
	return true
}

func hex32(v uint32) string {
	const digits = "0123456789abcdef"
	out := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		out[i] = digits[v&0xf]
		v >>= 4
	}
	return string(out)
}
