// Package gf2 implements CRC-32 combination: computing the checksum
// of a concatenation from the checksums of its parts, without
// touching the bytes again.
//
// Appending n bytes to a message multiplies its CRC remainder by
// x^(8n) modulo the generator polynomial. That linear operator over
// GF(2) is represented as a 32×32 bit matrix and applied with
// square-and-multiply, so Combine runs in O(log n) matrix operations
// regardless of how long the second buffer was.
package gf2

import "github.com/hupe1980/fastcrc32/internal/crctable"

// matrix is a linear operator on GF(2)^32: row n is the image of the
// basis vector with bit n set.
type matrix [32]uint32

// times applies the operator to a vector.
func (m *matrix) times(vec uint32) uint32 {
	var sum uint32
	for n := 0; vec != 0; n++ {
		if vec&1 != 0 {
			sum ^= m[n]
		}
		vec >>= 1
	}
	return sum
}

// square sets m to mat·mat.
func (m *matrix) square(mat *matrix) {
	for n := range m {
		m[n] = mat.times(mat[n])
	}
}

// Combine returns the CRC-32 of the concatenation of two buffers,
// given crc1 over the first, crc2 over the second, and the length in
// bytes of the second. len2 == 0 returns crc1 unchanged.
func Combine(crc1, crc2 uint32, len2 uint64) uint32 {
	if len2 == 0 {
		return crc1
	}

	var even, odd matrix

	// Operator for one zero bit.
	odd[0] = crctable.Polynomial
	row := uint32(1)
	for n := 1; n < 32; n++ {
		odd[n] = row
		row <<= 1
	}

	// Two zero bits, then four.
	even.square(&odd)
	odd.square(&even)

	// Apply len2 zero bytes to crc1. The first square below turns
	// the four-bit operator into the one-zero-byte operator.
	for {
		even.square(&odd)
		if len2&1 != 0 {
			crc1 = even.times(crc1)
		}
		len2 >>= 1
		if len2 == 0 {
			break
		}

		odd.square(&even)
		if len2&1 != 0 {
			crc1 = odd.times(crc1)
		}
		len2 >>= 1
		if len2 == 0 {
			break
		}
	}

	return crc1 ^ crc2
}
