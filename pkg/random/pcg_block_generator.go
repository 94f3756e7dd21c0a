package random

import (
	"encoding/binary"
	"math/rand/v2"
)

const (
	pcgSeedSize  = 16
	pcgBlockSize = 64
)

type pcgBlockGenerator struct {
	pcg rand.PCG
}

// NewPCGBlockGenerator creates a SeedableBlockGenerator that is backed
// by the PCG implementation of math/rand/v2. It is fast, but not
// suitable for cryptographic purposes. The seed must be 16 bytes in
// size.
func NewPCGBlockGenerator(seed []byte) SeedableBlockGenerator {
	var g pcgBlockGenerator
	g.Seed(seed)
	return &g
}

func (pcgBlockGenerator) BlockSize() int {
	return pcgBlockSize
}

func (g *pcgBlockGenerator) Generate(block []uint32) {
	for i := 0; i < len(block); i += 2 {
		v := g.pcg.Uint64()
		block[i] = uint32(v)
		block[i+1] = uint32(v >> 32)
	}
}

func (pcgBlockGenerator) SeedSize() int {
	return pcgSeedSize
}

func (g *pcgBlockGenerator) Seed(seed []byte) {
	if len(seed) != pcgSeedSize {
		panic("PCG seeds must be 16 bytes in size")
	}
	g.pcg.Seed(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:]))
}

func (g *pcgBlockGenerator) Clone() SeedableBlockGenerator {
	clone := *g
	return &clone
}
