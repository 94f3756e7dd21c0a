package random

import (
	"math/rand/v2"
	"sync"
)

// ThreadSafeGenerator is identical to SingleThreadedGenerator, except
// that it is safe to use from within multiple goroutines without
// additional locking. These generators may be slower than their
// single-threaded counterparts.
type ThreadSafeGenerator interface {
	SingleThreadedGenerator

	IsThreadSafe()
}

type lockingGenerator struct {
	lock sync.Mutex
	base SingleThreadedGenerator
}

// NewThreadSafeGenerator creates a ThreadSafeGenerator that obtains
// its randomness from a Source, serializing all calls against it using
// a mutex.
func NewThreadSafeGenerator(source Source) ThreadSafeGenerator {
	return &lockingGenerator{
		base: NewSingleThreadedGenerator(source),
	}
}

func (*lockingGenerator) IsThreadSafe() {}

func (g *lockingGenerator) Float64() float64 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Float64()
}

func (g *lockingGenerator) Int64N(n int64) int64 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Int64N(n)
}

func (g *lockingGenerator) IntN(n int) int {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.IntN(n)
}

func (g *lockingGenerator) Read(p []byte) (int, error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Read(p)
}

func (g *lockingGenerator) Shuffle(n int, swap func(i, j int)) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.base.Shuffle(n, swap)
}

func (g *lockingGenerator) Uint32() uint32 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Uint32()
}

func (g *lockingGenerator) Uint64() uint64 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Uint64()
}

// unlockedGenerator is a ThreadSafeGenerator for sources that are safe
// for concurrent use. No locking is performed, as rand.Rand carries no
// state of its own.
type unlockedGenerator struct {
	SingleThreadedGenerator
}

func (unlockedGenerator) IsThreadSafe() {}

// CryptoThreadSafeGenerator is an instance of ThreadSafeGenerator that is
// suitable for cryptographic purposes.
var CryptoThreadSafeGenerator ThreadSafeGenerator = unlockedGenerator{
	SingleThreadedGenerator: NewSingleThreadedGenerator(CryptoSource),
}

type globalSource struct{}

func (globalSource) Uint32() uint32 {
	return rand.Uint32()
}

func (globalSource) Uint64() uint64 {
	return rand.Uint64()
}

func (s globalSource) FillBytes(p []byte) {
	FillBytesViaUint64(s, p)
}

func (s globalSource) TryFillBytes(p []byte) error {
	s.FillBytes(p)
	return nil
}

// GlobalSource is a Source that is backed by the top-level functions
// of math/rand/v2. It is randomly seeded on startup and is safe for
// concurrent use, but offers no control over its seed.
var GlobalSource Source = globalSource{}

// FastThreadSafeGenerator is an instance of ThreadSafeGenerator that is
// backed by GlobalSource.
var FastThreadSafeGenerator ThreadSafeGenerator = unlockedGenerator{
	SingleThreadedGenerator: NewSingleThreadedGenerator(GlobalSource),
}
