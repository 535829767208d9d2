package kyber

import (
	"encoding/binary"
	"io"
)

// CounterSource is a deterministic byte source for tests and benchmarks.
// Every 8 bytes it emits the next value of an incrementing 64-bit counter in
// little-endian order. It is not suitable for generating real keys.
type CounterSource struct {
	state uint64
}

// NewCounterSource returns a source whose first emitted counter value is
// start+1.
func NewCounterSource(start uint64) *CounterSource {
	return &CounterSource{state: start}
}

// Uint64 advances the counter and returns it.
func (c *CounterSource) Uint64() uint64 {
	c.state++
	return c.state
}

// Read fills p and never fails. A trailing partial word consumes a full
// counter step.
func (c *CounterSource) Read(p []byte) (int, error) {
	var w [8]byte
	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, c.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		binary.LittleEndian.PutUint64(w[:], c.Uint64())
		copy(p, w[:])
	}
	return n, nil
}

// NewSeed reads a fresh PRF seed from rand.
func NewSeed(rand io.Reader) (*[SymSize]byte, error) {
	var seed [SymSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, err
	}
	return &seed, nil
}
