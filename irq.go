// irq.go - the main interrupt controller: a 32-bit status/mask pair that
// ORs device interrupt kinds into STAT and gates them through MASK

package main

// Interrupt source bits in the IRQ_STATUS/IRQ_MASK register pair, matching
// the PSX's documented IRQ line assignment.
type irqKind uint

const (
	irqVBlank irqKind = iota
	irqGPU
	irqCDROM
	irqDMA
	irqTimer0
	irqTimer1
	irqTimer2
	irqControllerMemCard
	irqSIO
	irqSPU
	irqLightpen
)

// InterruptController holds the STAT/MASK register pair. assertIRQ ORs a
// device's bit into STAT on its rising edge; the CPU observes a pending
// interrupt whenever STAT & MASK is nonzero.
type InterruptController struct {
	status uint32
	mask   uint32
}

func (ic *InterruptController) reset() {
	ic.status = 0
	ic.mask = 0
}

// assertIRQ sets the status bit for kind. Devices call this on their
// interrupt-condition rising edge; repeated asserts while already pending
// are idempotent, matching a level-to-latch OR.
func (ic *InterruptController) assertIRQ(kind irqKind) {
	ic.status |= 1 << uint(kind)
}

// acknowledge implements the CPU's STAT write semantics: writing a bit as 0
// clears that status bit, writing 1 leaves it unaffected (ack-by-AND).
func (ic *InterruptController) acknowledge(value uint32) {
	ic.status &= value
}

func (ic *InterruptController) replaceMask(value uint32) {
	ic.mask = value
}

func (ic *InterruptController) pending() bool {
	return ic.status&ic.mask != 0
}
