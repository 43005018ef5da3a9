// Package clmul implements the carry-less-multiplication CRC-32
// engine: four interleaved 128-bit folding lanes reduced with a
// two-step Barrett reduction, per the Intel "Fast CRC Computation
// Using PCLMULQDQ" technique.
//
// The kernel operates on opaque 128-bit vector values with a software
// 64×64→128 carry-less multiply, so it is bit-exact on every GOARCH.
// Whether the engine is offered at all is a separate question answered
// by Available (see capability.go): folding only pays for itself where
// the CPU has a native carry-less multiply.
package clmul

import (
	"encoding/binary"
	"math/bits"

	"github.com/hupe1980/fastcrc32/internal/scalar"
)

// Folding constants for the reflected CRC-32/ISO-HDLC polynomial
// P = 0xEDB88320. Kn is x^n mod P(x) for the fold distance n; P_X is
// the full 33-bit polynomial and U_PRIME its Barrett inverse
// ⌊x^64 / P(x)⌋. Fixed by the polynomial; never change them.
const (
	k1 = 0x154442bd4 // x^(4·128+64) mod P
	k2 = 0x1c6e41596 // x^(4·128)    mod P
	k3 = 0x1751997d0 // x^(128+64)   mod P
	k4 = 0x0ccaa009e // x^128        mod P
	k5 = 0x163cd6124 // x^96         mod P
	k6 = 0x1db710640 // x^64         mod P

	pX     = 0x1db710641
	uPrime = 0x1f7011641
)

// vec128 is a 128-bit vector value. lo holds bytes 0..7 of a
// little-endian load, hi bytes 8..15, matching SIMD lane order.
type vec128 struct {
	lo, hi uint64
}

func load(p []byte) vec128 {
	return vec128{
		lo: binary.LittleEndian.Uint64(p[0:8]),
		hi: binary.LittleEndian.Uint64(p[8:16]),
	}
}

// mul64 is a 64×64→128-bit carry-less multiply (GF(2), no carries).
// One XOR-shift per set bit of b; the folding keys have few set bits.
func mul64(a, b uint64) vec128 {
	var v vec128
	for b != 0 {
		i := uint(bits.TrailingZeros64(b))
		v.lo ^= a << i
		v.hi ^= a >> (64 - i) // i == 0 shifts by 64, which is 0 in Go
		b &= b - 1
	}
	return v
}

// reduce128 folds lane a forward over one fold distance and absorbs
// the next data chunk b: (a.lo·klo) XOR (a.hi·khi) XOR b.
func reduce128(a, b vec128, klo, khi uint64) vec128 {
	t1 := mul64(a.lo, klo)
	t2 := mul64(a.hi, khi)
	return vec128{
		lo: b.lo ^ t1.lo ^ t2.lo,
		hi: b.hi ^ t1.hi ^ t2.hi,
	}
}

// Update extends the un-complemented remainder crc with buf.
//
// Inputs shorter than 128 bytes are not worth setting up four lanes
// for and defer entirely to the scalar engine; so does any trailing
// partial 16-byte chunk.
func Update(crc uint32, buf []byte) uint32 {
	if len(buf) < 128 {
		return scalar.UpdateFast16(crc, buf)
	}

	x0 := load(buf[0:16])
	x1 := load(buf[16:32])
	x2 := load(buf[32:48])
	x3 := load(buf[48:64])
	buf = buf[64:]

	// The running remainder enters the first lane, complemented.
	x0.lo ^= uint64(^crc)

	// Fold each lane forward by 64 bytes per iteration.
	for len(buf) >= 64 {
		x0 = reduce128(x0, load(buf[0:16]), k1, k2)
		x1 = reduce128(x1, load(buf[16:32]), k1, k2)
		x2 = reduce128(x2, load(buf[32:48]), k1, k2)
		x3 = reduce128(x3, load(buf[48:64]), k1, k2)
		buf = buf[64:]
	}

	// Fold the four lanes into one, then absorb any remaining whole
	// 16-byte chunks at the single-lane distance.
	x := reduce128(x0, x1, k3, k4)
	x = reduce128(x, x2, k3, k4)
	x = reduce128(x, x3, k3, k4)
	for len(buf) >= 16 {
		x = reduce128(x, load(buf[0:16]), k3, k4)
		buf = buf[16:]
	}

	// Reduce 128 bits to 96, then to 64.
	t := mul64(x.lo, k4)
	x = vec128{lo: t.lo ^ x.hi, hi: t.hi}
	t = mul64(x.lo&0xffffffff, k5)
	x = vec128{
		lo: t.lo ^ (x.lo>>32 | x.hi<<32),
		hi: t.hi ^ (x.hi >> 32),
	}

	// Barrett reduction, 64 bits to 32:
	//   T1(x) = ⌊R(x) mod x^32⌋ · µ
	//   T2(x) = ⌊T1(x) mod x^32⌋ · P(x)
	//   C(x)  = (R(x) XOR T2(x)) / x^32
	t1 := mul64(x.lo&0xffffffff, uPrime)
	t2 := mul64(t1.lo&0xffffffff, pX)
	c := uint32((x.lo ^ t2.lo) >> 32) // still complemented

	if len(buf) > 0 {
		return scalar.UpdateFast16(^c, buf)
	}
	return ^c
}
