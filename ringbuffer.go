// ringbuffer.go - lock-free SPSC byte ring buffer for SPU sample output

package main

import "sync/atomic"

// audioRingCapacity holds roughly 0.1s of stereo 16-bit samples at 44.1kHz:
// 44100 * 2 channels * 2 bytes * 0.1s = 17640, rounded down to a power of
// two (16384 bytes, about 93ms).
const audioRingCapacity = 16384

// ringBuffer is a single-producer/single-consumer byte ring buffer. The
// execution thread is the sole writer (spuWriteSamples); a host audio
// callback goroutine is the sole reader (OtoPlayer.Read). head/tail are
// atomics so the two sides never need a mutex; capacity is a power of two
// so index wrap is a mask, not a modulo.
type ringBuffer struct {
	buf  [audioRingCapacity]byte
	head atomic.Uint64 // next read position, producer never touches
	tail atomic.Uint64 // next write position, consumer never touches
}

func (r *ringBuffer) mask(i uint64) uint64 {
	return i & (audioRingCapacity - 1)
}

func (r *ringBuffer) usage() uint64 {
	return r.tail.Load() - r.head.Load()
}

func (r *ringBuffer) free() uint64 {
	return audioRingCapacity - r.usage()
}

// write copies as much of data as fits, dropping the remainder on overflow
// (truncate, not block) to keep the producer, the CPU execution thread,
// from ever stalling on a slow or absent consumer.
func (r *ringBuffer) write(data []byte) int {
	free := r.free()
	n := uint64(len(data))
	if n > free {
		n = free
	}
	if n == 0 {
		return 0
	}

	tail := r.tail.Load()
	for i := uint64(0); i < n; i++ {
		r.buf[r.mask(tail+i)] = data[i]
	}
	r.tail.Store(tail + n)
	return int(n)
}

// read copies as much as is available into data, returning the count. On
// underflow the remainder of data is left untouched; callers (the oto
// reader) pad it with silence.
func (r *ringBuffer) read(data []byte) int {
	avail := r.usage()
	n := uint64(len(data))
	if n > avail {
		n = avail
	}
	if n == 0 {
		return 0
	}

	head := r.head.Load()
	for i := uint64(0); i < n; i++ {
		data[i] = r.buf[r.mask(head+i)]
	}
	r.head.Store(head + n)
	return int(n)
}

func (r *ringBuffer) clear() {
	r.head.Store(0)
	r.tail.Store(0)
}
