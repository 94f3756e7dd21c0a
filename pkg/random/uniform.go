package random

import (
	"math/bits"
)

// Uint64N returns a uniformly distributed integer in range [0, n)
// drawn from a source, using Lemire's nearly divisionless method. The
// result is unbiased. n must be positive.
func Uint64N(s Source, n uint64) uint64 {
	if n == 0 {
		panic("Invalid argument to Uint64N")
	}
	if n&(n-1) == 0 {
		// n is a power of two, meaning masking is sufficient.
		return s.Uint64() & (n - 1)
	}
	hi, lo := bits.Mul64(s.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(s.Uint64(), n)
		}
	}
	return hi
}

// Uint32N returns a uniformly distributed integer in range [0, n)
// drawn from a source. n must be positive.
func Uint32N(s Source, n uint32) uint32 {
	if n == 0 {
		panic("Invalid argument to Uint32N")
	}
	if n&(n-1) == 0 {
		return s.Uint32() & (n - 1)
	}
	prod := uint64(s.Uint32()) * uint64(n)
	if low := uint32(prod); low < n {
		thresh := -n % n
		for low < thresh {
			prod = uint64(s.Uint32()) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}

// Float64 returns a uniformly distributed floating point number in
// range [0.0, 1.0) drawn from a source, consuming a single 64-bit word.
func Float64(s Source) float64 {
	return float64(s.Uint64()<<11>>11) / (1 << 53)
}
