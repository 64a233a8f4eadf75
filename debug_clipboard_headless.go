//go:build headless

// debug_clipboard_headless.go - headless builds carry no clipboard access.

package main

func copyRegistersToClipboard(dbg *DebugAccessor) bool {
	return false
}
