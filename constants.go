// constants.go - shared size and address-map constants for the PSX core

package main

const (
	ramSize    = 2 * 1024 * 1024
	biosSize   = 512 * 1024
	spuRamSize = 512 * 1024

	wordSize = 4
)

// Physical address map, matching the layout of the real machine. The bus
// tests RAM and BIOS before the other regions.
const (
	regionRAMStart       = 0x00000000
	regionRAMSize        = ramSize
	regionEXP1Start      = 0x1F000000
	regionEXP1Size       = 8 * 1024 * 1024
	regionMemCtrlStart   = 0x1F801000
	regionMemCtrlSize    = 0x24
	regionMemCtrl2Start  = 0x1F801060
	regionMemCtrl2Size   = 4
	regionIRQStatusAddr  = 0x1F801070
	regionIRQMaskAddr    = 0x1F801074
	regionDMAStart       = 0x1F801080
	regionDMASize        = 0x80
	regionTimerStart     = 0x1F801100
	regionTimerSize      = 0x30
	regionCDROMStart     = 0x1F801800
	regionCDROMSize      = 4
	regionGP0Addr        = 0x1F801810
	regionGP1Addr        = 0x1F801814
	regionSPUStart       = 0x1F801C00
	regionSPUSize        = 0x400
	regionEXP2Start      = 0x1F802000
	regionEXP2Size       = 8 * 1024
	regionBIOSStart      = 0x1FC00000
	regionBIOSSize       = biosSize
	regionCacheCtrlAddr  = 0xFFFE0130
	gp1StatusDefault     = 0x1C000000
)

const r3000Freq = 33868800
