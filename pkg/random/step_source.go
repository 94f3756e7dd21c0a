package random

// StepSource is a Source that yields an arithmetic sequence of 64-bit
// words, starting at an initial value and incrementing it by a fixed
// amount using wrapping arithmetic. An increment of zero causes the
// source to yield a constant.
//
// StepSource is intended to be used in tests, where it can act as a
// degenerate, fully predictable reseeder.
type StepSource struct {
	value     uint64
	increment uint64
}

var _ CloneableSource = (*StepSource)(nil)

// NewStepSource creates a StepSource.
func NewStepSource(initial, increment uint64) *StepSource {
	return &StepSource{
		value:     initial,
		increment: increment,
	}
}

// Uint32 returns the lower half of the next value of the sequence.
func (s *StepSource) Uint32() uint32 {
	return uint32(s.Uint64())
}

// Uint64 returns the next value of the sequence.
func (s *StepSource) Uint64() uint64 {
	v := s.value
	s.value += s.increment
	return v
}

// FillBytes fills a buffer with values of the sequence.
func (s *StepSource) FillBytes(p []byte) {
	FillBytesViaUint64(s, p)
}

// TryFillBytes fills a buffer with values of the sequence. It always
// succeeds.
func (s *StepSource) TryFillBytes(p []byte) error {
	s.FillBytes(p)
	return nil
}

// Clone returns a StepSource that continues the sequence
// independently.
func (s *StepSource) Clone() *StepSource {
	clone := *s
	return &clone
}

// CloneSource is identical to Clone(), except that it returns the
// copy as a Source.
func (s *StepSource) CloneSource() Source {
	return s.Clone()
}
