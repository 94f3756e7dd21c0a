package random

import (
	"encoding/binary"
)

// Source of random data. Implementations may be deterministic
// pseudo-random number generators, wrappers around them, or sources
// of entropy provided by the operating system.
//
// For deterministic implementations, the exact sequence of output
// obtained for a given seed is part of the contract. Changing which
// primitive FillBytes() is built on top of (e.g., 32-bit words instead
// of 64-bit words) alters the output sequence and is therefore a
// breaking change, even if the output remains statistically
// equivalent.
//
// Sources do not permit concurrent access, unless stated otherwise.
type Source interface {
	// Uint32 returns the next 32-bit word of output. This method is
	// guaranteed to succeed. Failures of the underlying source are
	// considered programming errors and cause a panic.
	Uint32() uint32
	// Uint64 returns the next 64-bit word of output. This method
	// is guaranteed to succeed.
	Uint64() uint64
	// FillBytes fills the provided buffer in its entirety. This
	// method is guaranteed to succeed.
	FillBytes(p []byte)
	// TryFillBytes fills the provided buffer in its entirety. This
	// is the only method through which failures of the underlying
	// source are reported. Errors are of type *Error.
	TryFillBytes(p []byte) error
}

// CloneableSource is implemented by sources whose state can be
// duplicated. ReseedingGenerator.Clone() uses it to give the clone its
// own copy of the reseeder.
type CloneableSource interface {
	Source

	// CloneSource returns a copy of the source that yields the
	// same output as the original, without affecting the output
	// of the original.
	CloneSource() Source
}

// WordSource is the subset of Source that FillBytesViaUint64() needs.
type WordSource interface {
	Uint32() uint32
	Uint64() uint64
}

// FillBytesViaUint64 fills a buffer by repeatedly obtaining 64-bit
// words from a source, storing them in little endian order. A trailing
// chunk of up to four bytes consumes a single 32-bit word, while a
// trailing chunk of five to seven bytes consumes another 64-bit word.
func FillBytesViaUint64(s WordSource, p []byte) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, s.Uint64())
		p = p[8:]
	}
	if len(p) > 4 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], s.Uint64())
		copy(p, b[:])
	} else if len(p) > 0 {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], s.Uint32())
		copy(p, b[:])
	}
}
