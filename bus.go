// bus.go - the System aggregate: owns RAM/BIOS/SPU RAM and the physical
// address-space region dispatch described by the memory map

package main

import (
	"encoding/binary"
	"fmt"
	"sync"
)

// System is the single explicit aggregate tying the CPU, memory, DMA
// controller, SPU and interrupt controller together. No package-level
// globals hold machine state; everything reachable from emulation hangs
// off this struct.
type System struct {
	cpu CPU

	ram     [ramSize]byte
	bios    [biosSize]byte
	spuRAM  [spuRamSize]byte

	memCtrl  [regionMemCtrlSize]byte
	memCtrl2 uint32
	cacheCtrl uint32

	dma DMAController
	spu SPU
	irq InterruptController

	exp2 EXP2
	gpu  GPUStub

	cyclesThisFrame uint64

	// debugMu serializes DebugAccessor calls made from other goroutines.
	// RunFrame and Step do not take it.
	debugMu sync.RWMutex
}

// NewSystem allocates a System with its BIOS image loaded. The bios slice
// must be exactly biosSize bytes.
func NewSystem(bios []byte) (*System, error) {
	if len(bios) != biosSize {
		return nil, errBiosSize
	}
	s := &System{}
	copy(s.bios[:], bios)
	s.dma.system = s
	s.spu.system = s
	s.hardReset()
	return s, nil
}

var errBiosSize = fmt.Errorf("bios image must be exactly %d bytes", biosSize)

func (s *System) hardReset() {
	s.ram = [ramSize]byte{}
	s.spuRAM = [spuRamSize]byte{}
	s.memCtrl = [regionMemCtrlSize]byte{}
	s.memCtrl2 = 0
	s.cacheCtrl = 0
	s.dma.reset()
	s.spu.reset()
	s.irq.reset()
	s.exp2.reset()
	s.gpu.reset()
	s.cpu.hardReset()
}

func (s *System) softReset() {
	s.cpu.softReset()
}

// translate resolves a virtual address to a physical one. Cache isolation
// (SR.ISC) is not checked here.
func (s *System) translate(addr uint32) uint32 {
	return translateVirtAddr(addr)
}

func inRange(addr, start, size uint32) bool {
	return addr >= start && addr < start+size
}

// read32 dispatches a 32-bit physical read across the region map, testing
// RAM and BIOS first and the remaining regions after them.
func (s *System) read32(addr uint32) uint32 {
	phys := s.translate(addr)

	switch {
	case inRange(phys, regionRAMStart, regionRAMSize):
		return binary.LittleEndian.Uint32(s.ram[phys:])
	case inRange(phys, regionBIOSStart, regionBIOSSize):
		return binary.LittleEndian.Uint32(s.bios[phys-regionBIOSStart:])
	case inRange(phys, regionEXP1Start, regionEXP1Size):
		return 0
	case inRange(phys, regionMemCtrlStart, regionMemCtrlSize):
		return binary.LittleEndian.Uint32(s.memCtrl[phys-regionMemCtrlStart:])
	case inRange(phys, regionMemCtrl2Start, regionMemCtrl2Size):
		return s.memCtrl2
	case phys == regionIRQStatusAddr:
		return s.irq.status
	case phys == regionIRQMaskAddr:
		return s.irq.mask
	case inRange(phys, regionDMAStart, regionDMASize):
		return s.dma.read32(phys - regionDMAStart)
	case inRange(phys, regionTimerStart, regionTimerSize):
		return 0
	case inRange(phys, regionCDROMStart, regionCDROMSize):
		return 0
	case phys == regionGP0Addr:
		return s.gpu.readGP0()
	case phys == regionGP1Addr:
		return s.gpu.readGP1()
	case inRange(phys, regionSPUStart, regionSPUSize):
		lo := uint32(s.spu.read16(phys - regionSPUStart))
		hi := uint32(s.spu.read16(phys - regionSPUStart + 2))
		return lo | hi<<16
	case inRange(phys, regionEXP2Start, regionEXP2Size):
		b0 := uint32(s.exp2.read8(phys - regionEXP2Start))
		b1 := uint32(s.exp2.read8(phys - regionEXP2Start + 1))
		b2 := uint32(s.exp2.read8(phys - regionEXP2Start + 2))
		b3 := uint32(s.exp2.read8(phys - regionEXP2Start + 3))
		return b0 | b1<<8 | b2<<16 | b3<<24
	case phys == regionCacheCtrlAddr:
		return s.cacheCtrl
	default:
		panic(fmt.Sprintf("bus: unmapped 32-bit read at 0x%08x", phys))
	}
}

func (s *System) write32(addr uint32, value uint32) {
	phys := s.translate(addr)

	switch {
	case inRange(phys, regionRAMStart, regionRAMSize):
		binary.LittleEndian.PutUint32(s.ram[phys:], value)
	case inRange(phys, regionMemCtrlStart, regionMemCtrlSize):
		binary.LittleEndian.PutUint32(s.memCtrl[phys-regionMemCtrlStart:], value)
	case inRange(phys, regionMemCtrl2Start, regionMemCtrl2Size):
		s.memCtrl2 = value
	case phys == regionIRQStatusAddr:
		s.irq.acknowledge(value)
	case phys == regionIRQMaskAddr:
		s.irq.replaceMask(value)
	case inRange(phys, regionDMAStart, regionDMASize):
		s.dma.write32(phys-regionDMAStart, value)
	case inRange(phys, regionTimerStart, regionTimerSize):
		// timers are accepted but not simulated
	case inRange(phys, regionCDROMStart, regionCDROMSize):
		// CD-ROM controller is accepted but not simulated
	case phys == regionGP0Addr:
		s.gpu.writeGP0(value)
	case phys == regionGP1Addr:
		s.gpu.writeGP1(value)
	case inRange(phys, regionSPUStart, regionSPUSize):
		s.spu.write16(phys-regionSPUStart, uint16(value))
		s.spu.write16(phys-regionSPUStart+2, uint16(value>>16))
	case inRange(phys, regionEXP2Start, regionEXP2Size):
		s.exp2.write8(phys-regionEXP2Start, byte(value))
	case phys == regionCacheCtrlAddr:
		s.cacheCtrl = value
	case inRange(phys, regionEXP1Start, regionEXP1Size):
		// expansion ROM is read-only
	default:
		panic(fmt.Sprintf("bus: unmapped 32-bit write at 0x%08x = 0x%08x", phys, value))
	}
}

func (s *System) read16(addr uint32) uint16 {
	phys := s.translate(addr)
	switch {
	case inRange(phys, regionRAMStart, regionRAMSize):
		return binary.LittleEndian.Uint16(s.ram[phys:])
	case inRange(phys, regionBIOSStart, regionBIOSSize):
		return binary.LittleEndian.Uint16(s.bios[phys-regionBIOSStart:])
	case inRange(phys, regionSPUStart, regionSPUSize):
		return s.spu.read16(phys - regionSPUStart)
	case phys == regionIRQStatusAddr || phys == regionIRQStatusAddr+2:
		return uint16(s.read32(phys &^ 3) >> ((phys & 2) * 8))
	case phys == regionIRQMaskAddr || phys == regionIRQMaskAddr+2:
		return uint16(s.read32(phys &^ 3) >> ((phys & 2) * 8))
	case inRange(phys, regionTimerStart, regionTimerSize):
		return 0
	default:
		return uint16(s.read32(phys &^ 3) >> ((phys & 2) * 8))
	}
}

func (s *System) write16(addr uint32, value uint16) {
	phys := s.translate(addr)
	switch {
	case inRange(phys, regionRAMStart, regionRAMSize):
		binary.LittleEndian.PutUint16(s.ram[phys:], value)
	case inRange(phys, regionSPUStart, regionSPUSize):
		s.spu.write16(phys-regionSPUStart, value)
	case inRange(phys, regionTimerStart, regionTimerSize):
		// timers accepted, not simulated
	default:
		shift := (phys & 2) * 8
		word := s.read32(phys &^ 3)
		word = (word &^ (0xffff << shift)) | uint32(value)<<shift
		s.write32(phys&^3, word)
	}
}

func (s *System) read8(addr uint32) byte {
	phys := s.translate(addr)
	switch {
	case inRange(phys, regionRAMStart, regionRAMSize):
		return s.ram[phys]
	case inRange(phys, regionBIOSStart, regionBIOSSize):
		return s.bios[phys-regionBIOSStart]
	case inRange(phys, regionEXP1Start, regionEXP1Size):
		return 0
	case inRange(phys, regionEXP2Start, regionEXP2Size):
		return s.exp2.read8(phys - regionEXP2Start)
	case inRange(phys, regionCDROMStart, regionCDROMSize):
		return 0
	default:
		shift := (phys & 3) * 8
		return byte(s.read32(phys&^3) >> shift)
	}
}

func (s *System) write8(addr uint32, value byte) {
	phys := s.translate(addr)
	switch {
	case inRange(phys, regionRAMStart, regionRAMSize):
		s.ram[phys] = value
	case inRange(phys, regionEXP2Start, regionEXP2Size):
		s.exp2.write8(phys-regionEXP2Start, value)
	case inRange(phys, regionCDROMStart, regionCDROMSize):
		// CD-ROM controller accepted, not simulated
	default:
		shift := (phys & 3) * 8
		word := s.read32(phys &^ 3)
		word = (word &^ (0xff << shift)) | uint32(value)<<shift
		s.write32(phys&^3, word)
	}
}

// fetch reads an instruction word. Cache isolation never affects
// instruction fetch, only data access.
func (s *System) fetch(addr uint32) uint32 {
	return s.read32(addr)
}

func (s *System) dataRead32(addr uint32) uint32 {
	if s.cpu.cop0.cacheIsolated() {
		return 0
	}
	return s.read32(addr)
}

func (s *System) dataRead16(addr uint32) uint16 {
	if s.cpu.cop0.cacheIsolated() {
		return 0
	}
	return s.read16(addr)
}

func (s *System) dataRead8(addr uint32) byte {
	if s.cpu.cop0.cacheIsolated() {
		return 0
	}
	return s.read8(addr)
}

func (s *System) dataWrite32(addr uint32, value uint32) {
	if s.cpu.cop0.cacheIsolated() {
		return
	}
	s.write32(addr, value)
}

func (s *System) dataWrite16(addr uint32, value uint16) {
	if s.cpu.cop0.cacheIsolated() {
		return
	}
	s.write16(addr, value)
}

func (s *System) dataWrite8(addr uint32, value byte) {
	if s.cpu.cop0.cacheIsolated() {
		return
	}
	s.write8(addr, value)
}
