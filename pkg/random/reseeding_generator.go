package random

import (
	"math"

	"github.com/buildbarn/bb-random/pkg/util"
)

// reseedingCore is a BlockGenerator that forwards calls to another
// generator, while keeping track of the number of bytes generated. Once
// the configured number of bytes is exceeded, the inner generator is
// reseeded before the next block is generated.
type reseedingCore struct {
	inner       SeedableBlockGenerator
	reseeder    Source
	errorLogger util.ErrorLogger

	threshold int64
	// May become negative. Reseeding is due when it is no longer
	// positive.
	bytesUntilReseed int64
}

func (c *reseedingCore) BlockSize() int {
	return c.inner.BlockSize()
}

func (c *reseedingCore) Generate(block []uint32) {
	if c.bytesUntilReseed <= 0 {
		c.reseedAndGenerate(block)
		return
	}
	c.bytesUntilReseed -= int64(4 * len(block))
	c.inner.Generate(block)
}

func (c *reseedingCore) reseed() error {
	if err := SeedFromSource(c.inner, c.reseeder); err != nil {
		return err
	}
	c.bytesUntilReseed = c.threshold
	return nil
}

func (c *reseedingCore) reseedAndGenerate(block []uint32) {
	numBytes := int64(4 * len(block))
	if err := c.reseed(); err != nil {
		// Never let a failure to reseed prevent output from
		// being generated. Continue to use the existing state,
		// and retry reseeding when the next block is generated.
		c.errorLogger.Log(util.StatusWrap(err, "Failed to reseed generator"))
		c.bytesUntilReseed = -numBytes
	} else {
		c.bytesUntilReseed = c.threshold - numBytes
	}
	c.inner.Generate(block)
}

func (c *reseedingCore) clone() *reseedingCore {
	reseeder := c.reseeder
	if cloneable, ok := reseeder.(CloneableSource); ok {
		reseeder = cloneable.CloneSource()
	}
	return &reseedingCore{
		inner:       c.inner.Clone(),
		reseeder:    reseeder,
		errorLogger: c.errorLogger,
		threshold:   c.threshold,
		// Reseed the clone on first use, so that the clone and
		// the original don't yield the same output.
		bytesUntilReseed: 0,
	}
}

// ReseedingGenerator is a Source that is backed by a
// SeedableBlockGenerator. The generator is reseeded using output of
// another Source in the following cases:
//
//   - After a configurable number of bytes have been generated.
//   - On an explicit call to Reseed().
//   - On the first use of a copy obtained through Clone().
//
// Failures to reseed after the configured number of bytes are not
// reported to the caller. They are passed on to an ErrorLogger instead,
// and generation continues using the existing state of the generator.
// Reseeding is retried when the next block of output is generated.
//
// The output of a ReseedingGenerator is a pure function of the seed of
// the inner generator, the output of the reseeder, and the sequence of
// calls made against it.
type ReseedingGenerator struct {
	*BlockSource

	core *reseedingCore
}

var _ CloneableSource = (*ReseedingGenerator)(nil)

// NewReseedingGenerator creates a ReseedingGenerator that reseeds the
// inner generator after every threshold bytes of output. A threshold of
// zero disables reseeding based on the number of bytes generated.
// Thresholds above math.MaxInt64 are treated as math.MaxInt64.
func NewReseedingGenerator(inner SeedableBlockGenerator, threshold uint64, reseeder Source, errorLogger util.ErrorLogger) *ReseedingGenerator {
	clampedThreshold := int64(math.MaxInt64)
	if threshold != 0 && threshold <= math.MaxInt64 {
		clampedThreshold = int64(threshold)
	}
	return newReseedingGeneratorFromCore(&reseedingCore{
		inner:            inner,
		reseeder:         reseeder,
		errorLogger:      errorLogger,
		threshold:        clampedThreshold,
		bytesUntilReseed: clampedThreshold,
	})
}

func newReseedingGeneratorFromCore(core *reseedingCore) *ReseedingGenerator {
	return &ReseedingGenerator{
		BlockSource: NewBlockSource(core),
		core:        core,
	}
}

// Reseed the inner generator immediately, discarding any output that
// has been generated, but not yet returned. Unlike reseeding that is
// triggered automatically, errors are returned to the caller. The
// existing state of the generator is retained if reseeding fails.
func (g *ReseedingGenerator) Reseed() error {
	g.BlockSource.Reset()
	return g.core.reseed()
}

// Clone returns a copy of the ReseedingGenerator. The copy is reseeded
// before it generates its first block of output, so that the clone and
// the original don't yield the same output. If the reseeder implements
// CloneableSource, the copy uses a clone of the reseeder. Otherwise the
// reseeder is shared, in which case it must be safe for concurrent use
// if the copies are used concurrently.
func (g *ReseedingGenerator) Clone() *ReseedingGenerator {
	return newReseedingGeneratorFromCore(g.core.clone())
}

// CloneSource is identical to Clone(), except that it returns the
// copy as a Source. This permits ReseedingGenerators to act as
// reseeders of other ReseedingGenerators that get cloned.
func (g *ReseedingGenerator) CloneSource() Source {
	return g.Clone()
}
