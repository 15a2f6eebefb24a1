// Package readers provides reproducible pseudo-random sources for workloads
// that must replay identically across runs.
package readers

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"io"

	"hop.computer/seq/pkg"
	"hop.computer/seq/pkg/must"
)

var iv = [aes.BlockSize]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
var mask = [aes.BlockSize]byte{0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77}

type ctrReader struct {
	stream cipher.Stream
}

// Read implements io.Reader. The output depends only on the seed and the
// total number of bytes read so far. It cannot fail.
func (c *ctrReader) Read(p []byte) (n int, err error) {
	for i := 0; i < len(p); i += len(mask) {
		chunk := p[i:]
		c.stream.XORKeyStream(chunk, mask[0:min(len(chunk), len(mask))])
	}
	return len(p), nil
}

var _ io.Reader = &ctrReader{}

// newCTRReader returns a reader keyed on seed, using AES in CTR mode with a
// static IV.
func newCTRReader(seed uint64) *ctrReader {
	key := [16]byte{}
	binary.LittleEndian.PutUint64(key[:], seed)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		pkg.Panicf("unable to create new aes: %s", err)
	}
	return &ctrReader{
		stream: cipher.NewCTR(block, iv[:]),
	}
}

// DeterministicInts yields reproducible integers in [0, limit).
type DeterministicInts struct {
	r     *ctrReader
	limit uint64
}

// NewDeterministicInts panics if limit is not positive.
func NewDeterministicInts(seed uint64, limit int) *DeterministicInts {
	if limit <= 0 {
		pkg.Panicf("limit must be positive, got %d", limit)
	}
	return &DeterministicInts{
		r:     newCTRReader(seed),
		limit: uint64(limit),
	}
}

// Next returns the next integer of the sequence.
func (d *DeterministicInts) Next() int {
	var buf [8]byte
	_ = must.Do(d.r.Read(buf[:]))
	return int(binary.LittleEndian.Uint64(buf[:]) % d.limit)
}

// DeterministicCoinFlipper is a biased coin whose flips replay for a seed.
type DeterministicCoinFlipper struct {
	r    *ctrReader
	bits int
}

// Flip flips the coin. True represents heads, with probability 2^-bits.
func (f *DeterministicCoinFlipper) Flip() bool {
	var buf [1]byte
	_ = must.Do(f.r.Read(buf[:]))
	return buf[0]&byte((1<<f.bits)-1) == 0
}

// NewDeterministicCoinFlipper panics unless bits is in [0, 7].
func NewDeterministicCoinFlipper(seed uint64, bits int) *DeterministicCoinFlipper {
	if bits > 7 || bits < 0 {
		pkg.Panicf("bits must be in the range 0-7, got %d", bits)
	}
	return &DeterministicCoinFlipper{
		r:    newCTRReader(seed),
		bits: bits,
	}
}
