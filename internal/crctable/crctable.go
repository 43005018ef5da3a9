// Package crctable holds the precomputed lookup tables for the
// table-driven CRC-32 engine.
//
// The tables are built once at package init and never mutated.
// Building them at init (rather than embedding 4096 literals) keeps
// the source small; the cost is a few microseconds at program start.
package crctable

// Polynomial is the CRC-32/ISO-HDLC generator polynomial in reflected
// (LSB-first) form.
const Polynomial uint32 = 0xedb88320

// Slice16 is a set of 16 skew tables of 256 entries each, for the
// slicing-by-16 technique: entry [n][v] is the CRC contribution of
// byte value v followed by n zero bytes.
//
// Slice16[0] is the classic Sarwate byte table.
var Slice16 = buildSlice16()

func buildSlice16() *[16][256]uint32 {
	t := new([16][256]uint32)
	for v := 0; v < 256; v++ {
		crc := uint32(v)
		for i := 0; i < 8; i++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ Polynomial
			} else {
				crc >>= 1
			}
		}
		t[0][v] = crc
	}
	for v := 0; v < 256; v++ {
		crc := t[0][v]
		for n := 1; n < 16; n++ {
			crc = t[0][crc&0xff] ^ (crc >> 8)
			t[n][v] = crc
		}
	}
	return t
}
