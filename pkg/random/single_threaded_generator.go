package random

import (
	"math/rand/v2"
)

// SingleThreadedGenerator is a Random Number Generator (RNG) that
// cannot be used concurrently. This interface is a subset of Go's
// rand.Rand, extended with a method for generating bytes.
type SingleThreadedGenerator interface {
	// Generates a number in range [0.0, 1.0).
	Float64() float64
	// Generates a number in range [0, n), where n is of type int64.
	Int64N(n int64) int64
	// Generates a number in range [0, n), where n is of type int.
	IntN(n int) int
	// Generates arbitrary bytes of data. This method is guaranteed
	// to succeed.
	Read(p []byte) (int, error)
	// Shuffle the elements in a list.
	Shuffle(n int, swap func(i, j int))
	// Generates an arbitrary 32-bit integer value.
	Uint32() uint32
	// Generates an arbitrary 64-bit integer value.
	Uint64() uint64
}

type singleThreadedGenerator struct {
	*rand.Rand
	source Source
}

// NewSingleThreadedGenerator creates a SingleThreadedGenerator that
// obtains its randomness from a Source. Integers and bytes are
// obtained from the Source directly, so that the sequence of output is
// identical to that of the Source.
func NewSingleThreadedGenerator(source Source) SingleThreadedGenerator {
	return singleThreadedGenerator{
		Rand:   rand.New(NewMathRandSource(source)),
		source: source,
	}
}

func (g singleThreadedGenerator) Read(p []byte) (int, error) {
	g.source.FillBytes(p)
	return len(p), nil
}

func (g singleThreadedGenerator) Uint32() uint32 {
	return g.source.Uint32()
}

func (g singleThreadedGenerator) Uint64() uint64 {
	return g.source.Uint64()
}

type fastSingleThreadedGenerator struct {
	SingleThreadedGenerator
}

// NewFastSingleThreadedGenerator creates a new SingleThreadedGenerator
// that is not suitable for cryptographic purposes. The generator is
// randomly seeded.
func NewFastSingleThreadedGenerator() SingleThreadedGenerator {
	var seed [pcgSeedSize]byte
	CryptoSource.FillBytes(seed[:])
	return fastSingleThreadedGenerator{
		SingleThreadedGenerator: NewSingleThreadedGenerator(
			NewBlockSource(NewPCGBlockGenerator(seed[:]))),
	}
}

func (fastSingleThreadedGenerator) Read(p []byte) (int, error) {
	CryptoSource.FillBytes(p)
	return len(p), nil
}
