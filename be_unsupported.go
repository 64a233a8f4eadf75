//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package main

// psxcore's memory bus assumes little-endian byte order throughout.
var _ = "psxcore requires a little-endian architecture" + 1
