// Package fastcrc32 provides a fast CRC-32 (ISO-HDLC) checksum
// accumulator for Go.
//
// It computes the classic reflected-polynomial (0xEDB88320) CRC-32,
// the same value as hash/crc32's IEEE table and zlib, with two
// engines behind one surface:
//
//   - a portable table-driven engine (slicing-by-16, 64 bytes per
//     round), available everywhere
//   - a carry-less-multiplication folding engine (four interleaved
//     128-bit lanes, Barrett reduction), offered when the CPU
//     qualifies: PCLMULQDQ+SSE2+SSE4.1 on amd64, PMULL on arm64
//
// The engine is selected once at construction, never per call.
//
// # Quick Start
//
// One-shot:
//
//	crc := fastcrc32.Sum(data)
//
// Streaming:
//
//	c := fastcrc32.New(0)
//	c.Update(chunk1)
//	c.Update(chunk2)
//	crc := c.Finalize()
//
// Finalize consumes the accumulator: using it again panics, and Reset
// revives it. Pass a prior Finalize result as the initial state to
// resume a checksum.
//
// # Combining Checksums
//
// Combine merges independently computed checksums without touching
// the bytes again, in O(log n) of the second buffer's length:
//
//	c1 := fastcrc32.New(0)        // CRC of part 1
//	c1.Update(part1)
//	c2 := fastcrc32.Sum(part2)    // CRC of part 2, computed anywhere
//	c1.Combine(c2, uint64(len(part2)))
//	crc := c1.Finalize()          // == Sum(part1 ++ part2)
//
// This is the building block for parallel checksumming: one
// accumulator per chunk, merged pairwise. Parallel wraps that pattern:
//
//	crc := fastcrc32.Parallel(hugeBuffer, 0) // 0 = GOMAXPROCS workers
//
// # Engine Selection
//
// New probes the accelerated engine and falls back to the scalar one;
// NewAccelerated exposes the probe directly and returns (nil, false)
// on hosts without the required CPU features. A missing capability is
// an expected negative result, never an error. Set FASTCRC32_NOCLMUL
// in the environment to force the scalar engine.
//
// # Concurrency
//
// A Checksum is a sequential accumulator with no internal locking.
// Compute independent Checksums in parallel and merge with Combine;
// never share one instance across goroutines.
package fastcrc32
