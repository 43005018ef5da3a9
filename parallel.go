package fastcrc32

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minParallelChunk is the smallest chunk worth handing to a goroutine.
// Below this, goroutine and combine overhead dominate the checksum
// itself.
const minParallelChunk = 128 << 10

// Parallel returns the CRC-32 of p, computed by checksumming chunks
// concurrently and merging the partial results with Combine. The
// result is bit-identical to Sum(p).
//
// workers bounds the number of concurrent goroutines; workers <= 0
// means GOMAXPROCS. Small inputs are computed serially.
func Parallel(p []byte, workers int) uint32 {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || len(p) < 2*minParallelChunk {
		return Sum(p)
	}

	chunk := (len(p) + workers - 1) / workers
	if chunk < minParallelChunk {
		chunk = minParallelChunk
	}
	n := (len(p) + chunk - 1) / chunk

	crcs := make([]uint32, n)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			lo := i * chunk
			hi := lo + chunk
			if hi > len(p) {
				hi = len(p)
			}
			crcs[i] = Sum(p[lo:hi])
			return nil
		})
	}
	// The tasks are pure computation and never return an error.
	_ = g.Wait()

	// Merge left to right. Each chunk but the last has exactly
	// chunk bytes.
	c := New(crcs[0])
	for i := 1; i < n; i++ {
		size := chunk
		if i == n-1 {
			size = len(p) - (n-1)*chunk
		}
		c.Combine(crcs[i], uint64(size))
	}
	return c.Finalize()
}
