package clmul

import (
	"hash/crc32"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fastcrc32/internal/scalar"
)

// The kernel is portable Go, so equivalence against the scalar engine
// is testable on every GOARCH regardless of what Available reports.

func TestUpdateMatchesScalarThresholds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	buf := make([]byte, 4096)
	rng.Read(buf)

	// Every length that straddles an internal threshold: the <128
	// scalar cutoff, the 64-byte lane loop, the 16-byte chunk loop
	// and the <16 tail.
	lengths := []int{
		0, 1, 15, 16, 63, 64, 65, 127, 128, 129,
		143, 144, 191, 192, 193, 255, 256, 257, 1024, 4096,
	}
	for _, n := range lengths {
		for _, prev := range []uint32{0, 1, 0xdeadbeef, ^uint32(0)} {
			assert.Equal(t, scalar.UpdateFast16(prev, buf[:n]), Update(prev, buf[:n]),
				"length %d prev %#x", n, prev)
		}
	}
}

func TestUpdateMatchesScalarRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	buf := make([]byte, 8192)
	rng.Read(buf)

	for i := 0; i < 500; i++ {
		off := rng.Intn(len(buf))
		end := off + rng.Intn(len(buf)-off)
		prev := rng.Uint32()
		require.Equal(t, scalar.UpdateFast16(prev, buf[off:end]), Update(prev, buf[off:end]))
	}
}

func TestUpdateCanonicalBuffers(t *testing.T) {
	for _, n := range []int{128, 256, 1000} {
		zeros := make([]byte, n)
		ones := make([]byte, n)
		for i := range ones {
			ones[i] = 0xff
		}
		assert.Equal(t, scalar.UpdateSlow(0, zeros), Update(0, zeros), "zeros length %d", n)
		assert.Equal(t, scalar.UpdateSlow(0, ones), Update(0, ones), "0xff length %d", n)
	}
}

func TestUpdateEmptyIsIdentity(t *testing.T) {
	for _, prev := range []uint32{0, 0xcafebabe, ^uint32(0)} {
		assert.Equal(t, prev, Update(prev, nil))
	}
}

func TestUpdateIncrementalEqualsBatch(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	buf := make([]byte, 1024)
	rng.Read(buf)

	want := Update(0, buf)
	for _, k := range []int{0, 1, 64, 127, 128, 500, 1023, 1024} {
		assert.Equal(t, want, Update(Update(0, buf[:k]), buf[k:]), "split at %d", k)
	}
}

func TestEnginesMatchStdlibIEEE(t *testing.T) {
	// hash/crc32's IEEE table is the same polynomial; it is the
	// independent reference for all three update paths.
	rng := rand.New(rand.NewSource(23))
	buf := make([]byte, 20<<10)
	rng.Read(buf)

	for i := 0; i < 1000; i++ {
		off := rng.Intn(len(buf))
		end := off + rng.Intn(len(buf)-off)
		p := buf[off:end]

		want := crc32.ChecksumIEEE(p)
		require.Equal(t, want, scalar.UpdateSlow(0, p), "length %d", len(p))
		require.Equal(t, want, scalar.UpdateFast16(0, p), "length %d", len(p))
		require.Equal(t, want, Update(0, p), "length %d", len(p))
	}
}

func TestMul64(t *testing.T) {
	// Carry-less multiply identities.
	v := mul64(0, 0x1234)
	assert.Equal(t, vec128{}, v)

	v = mul64(0xffffffffffffffff, 1)
	assert.Equal(t, vec128{lo: 0xffffffffffffffff}, v)

	// (x^63)·(x^1) = x^64: the product crosses into the high word.
	v = mul64(1<<63, 2)
	assert.Equal(t, vec128{lo: 0, hi: 1}, v)

	// (x+1)(x+1) = x^2+1 over GF(2).
	v = mul64(3, 3)
	assert.Equal(t, vec128{lo: 5}, v)
}

func BenchmarkUpdate(b *testing.B) {
	buf := make([]byte, 1<<20)
	rand.New(rand.NewSource(1)).Read(buf)

	b.SetBytes(int64(len(buf)))
	var crc uint32
	for i := 0; i < b.N; i++ {
		crc = Update(crc, buf)
	}
}
