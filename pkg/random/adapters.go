package random

import (
	"io"
	"math/rand/v2"
)

type mathRandSource struct {
	source Source
}

func (s mathRandSource) Uint64() uint64 {
	return s.source.Uint64()
}

// NewMathRandSource creates a math/rand/v2 Source that forwards calls
// to a Source. It allows the use of functions provided by rand.Rand
// against any generator provided by this package.
func NewMathRandSource(source Source) rand.Source {
	return mathRandSource{source: source}
}

type reader struct {
	source Source
}

func (r reader) Read(p []byte) (int, error) {
	if err := r.source.TryFillBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewReader creates an io.Reader that fills buffers using
// Source.TryFillBytes(). Reads either fill the buffer entirely or
// return the error reported by the source.
func NewReader(source Source) io.Reader {
	return reader{source: source}
}
