package random

import (
	"github.com/lazybeaver/xorshift"
)

type xorShiftSource struct {
	sequence *xorshift.XorShift64Star
}

var _ CloneableSource = (*xorShiftSource)(nil)

// NewXorShiftSource creates a deterministic Source that is backed by
// the xorshift64* algorithm. It is fast, but not suitable for
// cryptographic purposes. A seed of zero is replaced by one, as the
// algorithm would otherwise only yield zeros.
func NewXorShiftSource(seed uint64) Source {
	if seed == 0 {
		seed = 1
	}
	return &xorShiftSource{
		sequence: xorshift.NewXorShift64Star(seed).(*xorshift.XorShift64Star),
	}
}

func (s *xorShiftSource) Uint32() uint32 {
	return uint32(s.sequence.Next() >> 32)
}

func (s *xorShiftSource) Uint64() uint64 {
	return s.sequence.Next()
}

func (s *xorShiftSource) FillBytes(p []byte) {
	FillBytesViaUint64(s, p)
}

func (s *xorShiftSource) TryFillBytes(p []byte) error {
	s.FillBytes(p)
	return nil
}

func (s *xorShiftSource) CloneSource() Source {
	sequence := *s.sequence
	return &xorShiftSource{sequence: &sequence}
}
