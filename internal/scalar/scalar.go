// Package scalar implements the portable, table-driven CRC-32 engine.
//
// Both entry points take and return the un-complemented running
// remainder: the complement that the CRC-32 definition applies at the
// start and end of a message happens inside each call, so partial
// results can be chained (update(update(s, a), b) == update(s, a++b)).
package scalar

import "github.com/hupe1980/fastcrc32/internal/crctable"

// UpdateSlow extends prev with buf one byte at a time.
func UpdateSlow(prev uint32, buf []byte) uint32 {
	crc := ^prev
	for _, b := range buf {
		crc = crctable.Slice16[0][byte(crc)^b] ^ (crc >> 8)
	}
	return ^crc
}

// UpdateFast16 extends prev with buf using slicing-by-16, consuming
// 64 bytes per outer round (4 unrolled 16-byte slices). Anything
// shorter than 64 bytes, including the tail, goes through UpdateSlow.
func UpdateFast16(prev uint32, buf []byte) uint32 {
	const bytesAtOnce = 64

	crc := ^prev
	t := crctable.Slice16
	for len(buf) >= bytesAtOnce {
		for i := 0; i < 4; i++ {
			// The running remainder folds into the first four
			// bytes of the slice; the other twelve are pure
			// table lookups.
			crc = t[0][buf[0xf]] ^
				t[1][buf[0xe]] ^
				t[2][buf[0xd]] ^
				t[3][buf[0xc]] ^
				t[4][buf[0xb]] ^
				t[5][buf[0xa]] ^
				t[6][buf[0x9]] ^
				t[7][buf[0x8]] ^
				t[8][buf[0x7]] ^
				t[9][buf[0x6]] ^
				t[10][buf[0x5]] ^
				t[11][buf[0x4]] ^
				t[12][buf[0x3]^byte(crc>>24)] ^
				t[13][buf[0x2]^byte(crc>>16)] ^
				t[14][buf[0x1]^byte(crc>>8)] ^
				t[15][buf[0x0]^byte(crc)]
			buf = buf[16:]
		}
	}
	return UpdateSlow(^crc, buf)
}
