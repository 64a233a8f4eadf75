//go:build !headless

// audio_backend_oto.go - OTO v3 audio output implementation

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const (
	otoSampleRate = 44100
	otoChannels   = 2
)

func init() {
	compiledFeatures = append(compiledFeatures, "audio:oto")
}

// OtoPlayer adapts a *ringBuffer (byte-granularity stereo 16-bit frames,
// produced by the SPU's tick loop) to the io.Reader oto's player pulls
// from. The ring pointer is atomic so Read, the hot path, never takes a
// lock; mutex is only for setup/control operations.
type OtoPlayer struct {
	ctx     *oto.Context
	player  *oto.Player
	ring    atomic.Pointer[ringBuffer]
	started bool
	mutex   sync.Mutex
}

func NewOtoPlayer() (*OtoPlayer, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   otoSampleRate,
		ChannelCount: otoChannels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready

	return &OtoPlayer{ctx: ctx}, nil
}

func (op *OtoPlayer) SetupPlayer(ring *ringBuffer) {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	op.ring.Store(ring)
	op.player = op.ctx.NewPlayer(op)
}

// Read drains available bytes from the ring buffer, padding any shortfall
// with silence so oto never blocks waiting on a slow or stalled producer.
func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	ring := op.ring.Load()
	if ring == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	got := ring.read(p)
	for i := got; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}

func (op *OtoPlayer) Start() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if !op.started && op.player != nil {
		op.player.Play()
		op.started = true
	}
}

func (op *OtoPlayer) Stop() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.started && op.player != nil {
		op.player.Pause()
		op.started = false
	}
}

func (op *OtoPlayer) Close() {
	op.Stop()
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.player != nil {
		op.player.Close()
		op.player = nil
	}
}

func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}
