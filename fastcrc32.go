package fastcrc32

import (
	"github.com/hupe1980/fastcrc32/internal/clmul"
	"github.com/hupe1980/fastcrc32/internal/gf2"
	"github.com/hupe1980/fastcrc32/internal/scalar"
)

// updateFunc extends an un-complemented CRC-32 remainder with a buffer.
type updateFunc func(crc uint32, p []byte) uint32

// Checksum is a CRC-32 (ISO-HDLC, reflected polynomial 0xEDB88320)
// accumulator.
//
// The value held between calls is always the un-complemented running
// remainder of all bytes processed so far, which is also the final
// CRC-32 value of those bytes: Finalize applies no further transform.
//
// A Checksum is a sequential accumulator: it is not safe for
// concurrent use. To parallelize, checksum independent chunks on
// independent Checksums and merge the results with Combine (or use
// Parallel, which does exactly that).
type Checksum struct {
	state       uint32
	update      updateFunc
	accelerated bool
	done        bool
}

// New returns a Checksum backed by the fastest engine available on
// this host: the carry-less-multiplication engine when the CPU
// qualifies, the table-driven scalar engine otherwise.
//
// The engine is bound once here and never re-probed per call.
//
// Pass initial = 0 for a fresh checksum, or a prior Finalize result
// to continue where that checksum left off.
func New(initial uint32) *Checksum {
	if c, ok := NewAccelerated(initial); ok {
		return c
	}
	return NewScalar(initial)
}

// NewScalar returns a Checksum backed by the table-driven engine.
// It is available on every target.
func NewScalar(initial uint32) *Checksum {
	return &Checksum{state: initial, update: scalar.UpdateFast16}
}

// NewAccelerated returns a Checksum backed by the
// carry-less-multiplication folding engine, or (nil, false) when the
// CPU lacks the required features (PCLMULQDQ+SSE2+SSE4.1 on amd64,
// PMULL on arm64).
//
// A false result is not an error; callers fall back to NewScalar.
// New does the fallback automatically.
func NewAccelerated(initial uint32) (*Checksum, bool) {
	if !clmul.Available() {
		return nil, false
	}
	return &Checksum{state: initial, update: clmul.Update, accelerated: true}, true
}

// AcceleratedAvailable reports whether NewAccelerated can succeed on
// this host.
func AcceleratedAvailable() bool {
	return clmul.Available()
}

// Accelerated reports whether c is backed by the folding engine.
func (c *Checksum) Accelerated() bool {
	return c.accelerated
}

// Update extends the checksum with p. Calling Update with an empty
// buffer is a no-op.
//
// Update panics if c has been finalized: a finalized Checksum is
// consumed, and silently continuing would return a wrong CRC.
func (c *Checksum) Update(p []byte) {
	if c.done {
		panic("fastcrc32: Update after Finalize")
	}
	c.state = c.update(c.state, p)
}

// Finalize consumes the Checksum and returns the CRC-32 of everything
// it has seen. Any further Update, Combine or Finalize panics; Reset
// makes the object usable again.
func (c *Checksum) Finalize() uint32 {
	if c.done {
		panic("fastcrc32: Finalize called twice")
	}
	c.done = true
	return c.state
}

// Reset sets the remainder to 0 (always 0, not the value New was
// given) and revives a finalized Checksum.
func (c *Checksum) Reset() {
	c.state = 0
	c.done = false
}

// Combine merges a second, independently computed checksum into c:
// other is the CRC-32 of the n bytes that logically follow everything
// c has seen. Afterwards c holds the CRC-32 of the concatenation, as
// if those n bytes had been passed to Update.
//
// Only the two CRC values and n take part, so it does not matter
// which engine computed either side. n == 0 leaves c unchanged.
func (c *Checksum) Combine(other uint32, n uint64) {
	if c.done {
		panic("fastcrc32: Combine after Finalize")
	}
	c.state = gf2.Combine(c.state, other, n)
}

// Sum returns the CRC-32 of p using the fastest available engine.
func Sum(p []byte) uint32 {
	c := New(0)
	c.Update(p)
	return c.Finalize()
}
