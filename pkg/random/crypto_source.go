package random

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
)

type cryptoSource struct{}

func (s cryptoSource) Uint32() uint32 {
	var b [4]byte
	s.FillBytes(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

func (s cryptoSource) Uint64() uint64 {
	var b [8]byte
	s.FillBytes(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func (s cryptoSource) FillBytes(p []byte) {
	if err := s.TryFillBytes(p); err != nil {
		panic(err.Error())
	}
}

func (cryptoSource) TryFillBytes(p []byte) error {
	if _, err := crypto_rand.Read(p); err != nil {
		return NewErrorWithCause(ErrorKindUnavailable, "Failed to obtain random data from the operating system", err)
	}
	return nil
}

// CryptoSource is a Source that obtains random data from the entropy
// source provided by the operating system. It is suitable for
// cryptographic purposes and for seeding other generators. Unlike most
// other sources, it is safe for concurrent use.
var CryptoSource Source = cryptoSource{}
