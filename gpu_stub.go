// gpu_stub.go - GP0/GP1 command sink stub. Rasterization is out of scope;
// this satisfies the DMA GPU channel and direct MMIO writers by counting
// commands rather than drawing them.

package main

const gp1ResetCommand = 0x00

// GPUStub accepts GP0 (render/data) and GP1 (control) command words so that
// software driving the GPU never stalls waiting for a FIFO that would
// otherwise never drain. It tracks a command count for diagnostics and
// reports a stable "ready" status word.
type GPUStub struct {
	gp0Count uint64
	gp1Count uint64
	status   uint32
}

func (g *GPUStub) reset() {
	g.gp0Count = 0
	g.gp1Count = 0
	g.status = gp1StatusDefault
}

func (g *GPUStub) writeGP0(value uint32) {
	g.gp0Count++
}

func (g *GPUStub) writeGP1(value uint32) {
	g.gp1Count++
	if (value >> 24) == gp1ResetCommand {
		g.status = gp1StatusDefault
	}
}

func (g *GPUStub) readGP0() uint32 {
	return 0
}

// readGP1 returns the GPUSTAT word. Bit 26/27/28 (ready for DMA/cmd/vram)
// are held high so DMA transfers targeting the GPU channel never block on
// a status bit this stub will never otherwise clear.
func (g *GPUStub) readGP1() uint32 {
	return g.status | 0x1C000000
}

// commandCounts exposes the stub's counters to the debug accessor surface.
func (g *GPUStub) commandCounts() (gp0, gp1 uint64) {
	return g.gp0Count, g.gp1Count
}
