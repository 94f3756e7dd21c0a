package random

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
)

// Number of bytes of output after which the state of a LocalGenerator
// is reseeded. Reseeding has a noticeable impact on throughput for
// thresholds of 32 KiB and less.
const localGeneratorReseedThreshold = 64 * 1024

const localGeneratorPlaceholder = "LocalGenerator{ .. }"

type localGeneratorState struct {
	generator        SeedableBlockGenerator
	source           *BlockSource
	entropySource    Source
	bytesUntilReseed int64
}

func newLocalGeneratorState(entropySource Source) *localGeneratorState {
	var seed [chacha20.KeySize]byte
	if err := entropySource.TryFillBytes(seed[:]); err != nil {
		// There is no safe way to continue without a properly
		// seeded cryptographic generator.
		panic(fmt.Sprintf("Failed to initialize local generator: %s", err))
	}
	generator := NewChaCha20BlockGenerator(seed[:])
	return &localGeneratorState{
		generator:        generator,
		source:           NewBlockSource(generator),
		entropySource:    entropySource,
		bytesUntilReseed: localGeneratorReseedThreshold,
	}
}

func (s *localGeneratorState) reseed() error {
	if err := SeedFromSource(s.generator, s.entropySource); err != nil {
		return err
	}
	s.source.Reset()
	s.bytesUntilReseed = localGeneratorReseedThreshold
	return nil
}

func (s *localGeneratorState) consume(n int) {
	if s.bytesUntilReseed <= 0 {
		// Continue to use the existing state if the entropy
		// source fails. Reseeding is retried on the next call.
		_ = s.reseed()
	}
	s.bytesUntilReseed -= int64(n)
}

// localGeneratorCell holds the state that is shared by all handles
// obtained through LocalGenerator.Clone().
type localGeneratorCell struct {
	entropySource Source
	state         *localGeneratorState
	busy          bool
}

// LocalGenerator is a handle to a fast cryptographically secure
// generator that is seeded from an entropy source, and is reseeded
// after every 64 KiB of output. It is backed by ChaCha20.
//
// The state of the generator is created lazily on first use, and is
// shared by all handles obtained through Clone(). It lives for as long
// as any of the handles referencing it. Handles are confined to a
// single goroutine: neither the handle nor any of its clones may be
// used concurrently, as access to the state is not synchronized.
// Handles may be passed along call chains explicitly, or through a
// context.Context using NewContextWithLocalGenerator().
//
// Methods on LocalGenerator are not reentrant. Calling into a handle
// while another call against the same state is in progress (e.g., from
// within the entropy source) causes a panic.
//
// The internal state of the generator is never exposed through
// formatting or serialization.
type LocalGenerator struct {
	cell *localGeneratorCell
}

var _ Source = (*LocalGenerator)(nil)

// NewLocalGenerator creates a handle to a new LocalGenerator that is
// seeded using CryptoSource. Failing to obtain the initial seed causes
// a panic when the generator is first used.
func NewLocalGenerator() *LocalGenerator {
	return NewLocalGeneratorFromEntropySource(CryptoSource)
}

// NewLocalGeneratorFromEntropySource creates a handle to a new
// LocalGenerator that is seeded using a custom entropy source. The
// entropy source may not make any calls against the LocalGenerator.
func NewLocalGeneratorFromEntropySource(entropySource Source) *LocalGenerator {
	return &LocalGenerator{
		cell: &localGeneratorCell{
			entropySource: entropySource,
		},
	}
}

func (g *LocalGenerator) enter() *localGeneratorState {
	c := g.cell
	if c.busy {
		panic("Attempted to use LocalGenerator reentrantly")
	}
	c.busy = true
	if c.state == nil {
		defer func() {
			// Permit initialization to be retried if the
			// entropy source caused a panic.
			if c.state == nil {
				c.busy = false
			}
		}()
		c.state = newLocalGeneratorState(c.entropySource)
	}
	return c.state
}

func (g *LocalGenerator) leave() {
	g.cell.busy = false
}

// Uint32 returns a 32-bit word of output.
func (g *LocalGenerator) Uint32() uint32 {
	s := g.enter()
	defer g.leave()
	s.consume(4)
	return s.source.Uint32()
}

// Uint64 returns a 64-bit word of output.
func (g *LocalGenerator) Uint64() uint64 {
	s := g.enter()
	defer g.leave()
	s.consume(8)
	return s.source.Uint64()
}

// FillBytes fills the provided buffer with output.
func (g *LocalGenerator) FillBytes(p []byte) {
	s := g.enter()
	defer g.leave()
	s.consume(len(p))
	s.source.FillBytes(p)
}

// TryFillBytes fills the provided buffer with output. It always
// succeeds, as failures of the entropy source are only reported by
// Reseed().
func (g *LocalGenerator) TryFillBytes(p []byte) error {
	g.FillBytes(p)
	return nil
}

// Reseed the generator immediately using the entropy source,
// discarding any buffered output. Errors reported by the entropy
// source are returned, in which case the existing state is retained.
func (g *LocalGenerator) Reseed() error {
	s := g.enter()
	defer g.leave()
	return s.reseed()
}

// Clone returns another handle to the same generator state. Unlike
// ReseedingGenerator.Clone(), the resulting handle does not yield
// independent output.
func (g *LocalGenerator) Clone() *LocalGenerator {
	return &LocalGenerator{cell: g.cell}
}

func (LocalGenerator) String() string {
	return localGeneratorPlaceholder
}

// GoString prevents the state from being exposed through %#v.
func (LocalGenerator) GoString() string {
	return localGeneratorPlaceholder
}

// Format prints a placeholder, regardless of the verb.
func (LocalGenerator) Format(f fmt.State, verb rune) {
	io.WriteString(f, localGeneratorPlaceholder)
}

// MarshalJSON emits a placeholder string.
func (LocalGenerator) MarshalJSON() ([]byte, error) {
	return json.Marshal(localGeneratorPlaceholder)
}

type localGeneratorKey struct{}

// NewContextWithLocalGenerator returns a copy of a context that carries
// a handle to a LocalGenerator. The context may only be used by the
// goroutine that owns the handle.
func NewContextWithLocalGenerator(ctx context.Context, generator *LocalGenerator) context.Context {
	return context.WithValue(ctx, localGeneratorKey{}, generator)
}

// LocalGeneratorFromContext returns the LocalGenerator handle stored in
// a context by NewContextWithLocalGenerator(). False is returned if the
// context does not carry a handle. Callers that fall back to creating
// a new LocalGenerator should store it in the context, as every new
// LocalGenerator obtains its own seed from the operating system.
func LocalGeneratorFromContext(ctx context.Context) (*LocalGenerator, bool) {
	generator, ok := ctx.Value(localGeneratorKey{}).(*LocalGenerator)
	return generator, ok
}
