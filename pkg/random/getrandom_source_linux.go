//go:build linux

package random

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

type getrandomSource struct {
	flags int
}

// NewGetrandomSource creates a Source that obtains random data by
// calling getrandom(2) directly. Unlike CryptoSource, failures are
// classified. In non-blocking mode, attempting to read from an entropy
// pool that has not been initialized yet fails with ErrorKindNotReady
// instead of blocking.
func NewGetrandomSource(nonBlocking bool) (Source, error) {
	s := &getrandomSource{}
	if nonBlocking {
		s.flags = unix.GRND_NONBLOCK
	}
	return s, nil
}

func (s *getrandomSource) Uint32() uint32 {
	var b [4]byte
	s.FillBytes(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

func (s *getrandomSource) Uint64() uint64 {
	var b [8]byte
	s.FillBytes(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func (s *getrandomSource) FillBytes(p []byte) {
	if err := s.TryFillBytes(p); err != nil {
		panic(err.Error())
	}
}

func (s *getrandomSource) TryFillBytes(p []byte) error {
	// Large requests may be satisfied partially.
	for len(p) > 0 {
		n, err := unix.Getrandom(p, s.flags)
		switch err {
		case nil:
			p = p[n:]
		case unix.EINTR:
			return NewErrorWithCause(ErrorKindTransient, "Interrupted while waiting for random data", err)
		case unix.EAGAIN:
			return NewErrorWithCause(ErrorKindNotReady, "Entropy pool of the operating system is not initialized yet", err)
		default:
			return NewErrorWithCause(ErrorKindUnavailable, "Failed to obtain random data from the operating system", err)
		}
	}
	return nil
}
