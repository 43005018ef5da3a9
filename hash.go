package fastcrc32

import "hash"

// digest adapts Checksum to the standard streaming-hash interface.
//
// Unlike Finalize, Sum32 is a non-consuming read: hash.Hash32 callers
// expect to interleave Sum and Write freely.
type digest struct {
	c *Checksum
}

// New32 returns a hash.Hash32 computing the CRC-32/ISO-HDLC checksum,
// backed by the fastest engine available on this host.
func New32() hash.Hash32 {
	return &digest{c: New(0)}
}

func (d *digest) Write(p []byte) (int, error) {
	d.c.Update(p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 {
	return d.c.state
}

// Sum appends the big-endian CRC-32, following hash/crc32 convention.
func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *digest) Reset() {
	d.c.Reset()
}

func (d *digest) Size() int { return 4 }

func (d *digest) BlockSize() int { return 1 }
