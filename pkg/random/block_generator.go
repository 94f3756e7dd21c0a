package random

// BlockGenerator is a pseudo-random number generator that produces its
// output in fixed size blocks of 32-bit words. Cryptographic
// generators are typically structured this way, as their core
// algorithm emits more than a single word at a time.
//
// BlockSource can be used to turn a BlockGenerator into a Source.
type BlockGenerator interface {
	// BlockSize returns the number of 32-bit words that are
	// written by every call to Generate(). The value may not change
	// over the lifetime of the generator.
	BlockSize() int
	// Generate fills the provided block with the next BlockSize()
	// words of output.
	Generate(block []uint32)
}

// SeedableBlockGenerator is a BlockGenerator whose state can be reset
// by providing a seed, and which can be duplicated.
type SeedableBlockGenerator interface {
	BlockGenerator

	// SeedSize returns the number of bytes of seed that Seed()
	// expects.
	SeedSize() int
	// Seed replaces the state of the generator by one that is
	// derived from the provided seed. Generators seeded with the
	// same seed produce the same output.
	Seed(seed []byte)
	// Clone returns an independent copy of the generator that
	// produces the same output as the original.
	Clone() SeedableBlockGenerator
}

// SeedFromSource seeds a generator with output obtained from another
// source. If obtaining the seed fails, the generator is left
// unmodified.
func SeedFromSource(generator SeedableBlockGenerator, source Source) error {
	seed := make([]byte, generator.SeedSize())
	if err := source.TryFillBytes(seed); err != nil {
		return err
	}
	generator.Seed(seed)
	return nil
}
