//go:build headless

// audio_backend_headless.go - a no-op OtoPlayer for headless builds,
// adapted from the teacher's headless audio stub.

package main

func init() {
	compiledFeatures = append(compiledFeatures, "audio:headless")
}

type OtoPlayer struct {
	started bool
	ring    *ringBuffer
}

func NewOtoPlayer() (*OtoPlayer, error) {
	return &OtoPlayer{}, nil
}

func (op *OtoPlayer) SetupPlayer(ring *ringBuffer) {
	op.ring = ring
}

func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	return len(p), nil
}

func (op *OtoPlayer) Start() {
	op.started = true
}

func (op *OtoPlayer) Stop() {
	op.started = false
}

func (op *OtoPlayer) Close() {
	op.started = false
}

func (op *OtoPlayer) IsStarted() bool {
	return op.started
}
