package random

import (
	"encoding/binary"
	"io"

	"github.com/zeebo/blake3"
)

const (
	blake3SeedSize  = 32
	blake3BlockSize = 64
)

type blake3BlockGenerator struct {
	hasher *blake3.Hasher
	digest *blake3.Digest
	offset int64
}

// NewBLAKE3BlockGenerator creates a SeedableBlockGenerator that yields
// the extendable output of BLAKE3 in keyed hashing mode, using the
// seed as the key. The seed must be 32 bytes in size.
func NewBLAKE3BlockGenerator(seed []byte) SeedableBlockGenerator {
	var g blake3BlockGenerator
	g.Seed(seed)
	return &g
}

func (blake3BlockGenerator) BlockSize() int {
	return blake3BlockSize
}

func (g *blake3BlockGenerator) Generate(block []uint32) {
	var output [4 * blake3BlockSize]byte
	if _, err := io.ReadFull(g.digest, output[:4*len(block)]); err != nil {
		panic(err)
	}
	g.offset += int64(4 * len(block))
	for i := range block {
		block[i] = binary.LittleEndian.Uint32(output[4*i:])
	}
}

func (blake3BlockGenerator) SeedSize() int {
	return blake3SeedSize
}

func (g *blake3BlockGenerator) Seed(seed []byte) {
	if len(seed) != blake3SeedSize {
		panic("BLAKE3 seeds must be 32 bytes in size")
	}
	hasher, err := blake3.NewKeyed(seed)
	if err != nil {
		panic(err)
	}
	g.hasher = hasher
	g.digest = hasher.Digest()
	g.offset = 0
}

func (g *blake3BlockGenerator) Clone() SeedableBlockGenerator {
	// Digests cannot be copied. Obtain a new one from the hasher
	// and seek it to the current position in the output stream.
	digest := g.hasher.Digest()
	if _, err := digest.Seek(g.offset, io.SeekStart); err != nil {
		panic(err)
	}
	return &blake3BlockGenerator{
		hasher: g.hasher,
		digest: digest,
		offset: g.offset,
	}
}
