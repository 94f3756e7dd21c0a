package random

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/crypto/chacha20"
)

const (
	// Number of 32-bit words returned by every call to Generate().
	// This corresponds to four blocks of ChaCha20 keystream.
	chaCha20BlockSize = 64

	// Number of ChaCha20 blocks that may be generated using a
	// single nonce, as the block counter is 32 bits in size.
	chaCha20BlocksPerNonce = 1 << 32
)

// chaCha20Nonce is a 12-byte little endian counter that is used as the
// ChaCha20 nonce. It is incremented every time the block counter of the
// cipher is exhausted.
type chaCha20Nonce [chacha20.NonceSize]byte

func (n *chaCha20Nonce) inc() {
	n0 := binary.LittleEndian.Uint32(n[0:4])
	n1 := binary.LittleEndian.Uint32(n[4:8])
	n2 := binary.LittleEndian.Uint32(n[8:12])

	var carry uint32
	n0, carry = bits.Add32(n0, 1, carry)
	n1, carry = bits.Add32(n1, 0, carry)
	n2, _ = bits.Add32(n2, 0, carry)

	binary.LittleEndian.PutUint32(n[0:4], n0)
	binary.LittleEndian.PutUint32(n[4:8], n1)
	binary.LittleEndian.PutUint32(n[8:12], n2)
}

type chaCha20BlockGenerator struct {
	key    [chacha20.KeySize]byte
	nonce  chaCha20Nonce
	cipher chacha20.Cipher
	blocks uint64
}

// NewChaCha20BlockGenerator creates a SeedableBlockGenerator that
// yields the ChaCha20 keystream. The seed is used as the key and must
// be 32 bytes in size. The generator is suitable for cryptographic
// purposes, provided that the seed is obtained from a cryptographic
// source.
func NewChaCha20BlockGenerator(seed []byte) SeedableBlockGenerator {
	var g chaCha20BlockGenerator
	g.Seed(seed)
	return &g
}

func (chaCha20BlockGenerator) BlockSize() int {
	return chaCha20BlockSize
}

func (g *chaCha20BlockGenerator) resetCipher() {
	// Never fails with correct key and nonce sizes.
	cipher, err := chacha20.NewUnauthenticatedCipher(g.key[:], g.nonce[:])
	if err != nil {
		panic(err)
	}
	g.cipher = *cipher
	g.blocks = 0
}

func (g *chaCha20BlockGenerator) Generate(block []uint32) {
	var keystream [4 * chaCha20BlockSize]byte
	blocksNeeded := uint64(len(keystream) / 64)
	if g.blocks+blocksNeeded > chaCha20BlocksPerNonce {
		g.nonce.inc()
		g.resetCipher()
	}
	g.cipher.XORKeyStream(keystream[:], keystream[:])
	g.blocks += blocksNeeded
	for i := range block {
		block[i] = binary.LittleEndian.Uint32(keystream[4*i:])
	}
}

func (chaCha20BlockGenerator) SeedSize() int {
	return chacha20.KeySize
}

func (g *chaCha20BlockGenerator) Seed(seed []byte) {
	if len(seed) != chacha20.KeySize {
		panic("ChaCha20 seeds must be 32 bytes in size")
	}
	copy(g.key[:], seed)
	g.nonce = chaCha20Nonce{}
	g.resetCipher()
}

func (g *chaCha20BlockGenerator) Clone() SeedableBlockGenerator {
	clone := *g
	return &clone
}
