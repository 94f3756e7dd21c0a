package random

import (
	"encoding/binary"
)

// BlockSource is an implementation of Source that buffers a single
// block of output of a BlockGenerator, handing out words and bytes
// from it until it is exhausted.
//
// Words are consumed in order. A 64-bit word is formed by taking two
// consecutive 32-bit words, the first being the least significant
// half. Byte output is formed by storing words in little endian order.
// Unused bytes of a partially consumed word are discarded.
type BlockSource struct {
	generator BlockGenerator
	results   []uint32
	index     int
}

var _ Source = (*BlockSource)(nil)

// NewBlockSource creates a BlockSource that obtains blocks of output
// from a given generator. No output is generated until the first call
// against the BlockSource.
func NewBlockSource(generator BlockGenerator) *BlockSource {
	blockSize := generator.BlockSize()
	if blockSize < 2 {
		panic("Block generators must produce at least two words per block")
	}
	return &BlockSource{
		generator: generator,
		results:   make([]uint32, blockSize),
		index:     blockSize,
	}
}

// Generator returns the BlockGenerator that backs this source.
func (s *BlockSource) Generator() BlockGenerator {
	return s.generator
}

// Reset discards any buffered output, causing the next call to
// generate a new block.
func (s *BlockSource) Reset() {
	s.index = len(s.results)
}

func (s *BlockSource) generate(index int) {
	s.generator.Generate(s.results)
	s.index = index
}

// Uint32 returns the next word of buffered output.
func (s *BlockSource) Uint32() uint32 {
	if s.index >= len(s.results) {
		s.generate(0)
	}
	v := s.results[s.index]
	s.index++
	return v
}

// Uint64 returns the next two words of buffered output.
func (s *BlockSource) Uint64() uint64 {
	if s.index < len(s.results)-1 {
		s.index += 2
		return uint64(s.results[s.index-1])<<32 | uint64(s.results[s.index-2])
	}
	if s.index >= len(s.results) {
		s.generate(2)
		return uint64(s.results[1])<<32 | uint64(s.results[0])
	}
	// A single word remains. Use it as the low half.
	low := uint64(s.results[len(s.results)-1])
	s.generate(1)
	return uint64(s.results[0])<<32 | low
}

// FillBytes fills the provided buffer with buffered output, generating
// new blocks as needed.
func (s *BlockSource) FillBytes(p []byte) {
	for len(p) > 0 {
		if s.index >= len(s.results) {
			s.generate(0)
		}
		for s.index < len(s.results) && len(p) > 0 {
			var b [4]byte
			binary.LittleEndian.PutUint32(b[:], s.results[s.index])
			n := copy(p, b[:])
			p = p[n:]
			s.index++
		}
	}
}

// TryFillBytes fills the provided buffer with buffered output. Block
// generators cannot fail, meaning this method always succeeds.
func (s *BlockSource) TryFillBytes(p []byte) error {
	s.FillBytes(p)
	return nil
}
