package random_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/buildbarn/bb-random/internal/mock"
	"github.com/buildbarn/bb-random/pkg/random"
	"github.com/buildbarn/bb-random/pkg/testutil"
	"github.com/buildbarn/bb-random/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fillBlock returns a function that can be passed to Do() of a mocked
// Generate() call, filling the block with a constant.
func fillBlock(v uint32) func(block []uint32) {
	return func(block []uint32) {
		for i := range block {
			block[i] = v
		}
	}
}

func newMockBlockGenerator(ctrl *gomock.Controller) *mock.MockSeedableBlockGenerator {
	inner := mock.NewMockSeedableBlockGenerator(ctrl)
	inner.EXPECT().BlockSize().Return(4).AnyTimes()
	inner.EXPECT().SeedSize().Return(8).AnyTimes()
	return inner
}

func TestReseedingGeneratorThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)

	inner := newMockBlockGenerator(ctrl)
	reseeder := mock.NewMockSource(ctrl)
	errorLogger := mock.NewMockErrorLogger(ctrl)
	generator := random.NewReseedingGenerator(inner, 32, reseeder, errorLogger)

	// Each block is 16 bytes in size, meaning that the third block
	// is the first one to exceed the threshold. Reseeding should
	// take place right before it is generated.
	gomock.InOrder(
		inner.EXPECT().Generate(gomock.Len(4)).Do(fillBlock(1)),
		inner.EXPECT().Generate(gomock.Len(4)).Do(fillBlock(2)),
		reseeder.EXPECT().TryFillBytes(gomock.Len(8)).DoAndReturn(testutil.FillBytes(0x42)),
		inner.EXPECT().Seed(bytes.Repeat([]byte{0x42}, 8)),
		inner.EXPECT().Generate(gomock.Len(4)).Do(fillBlock(3)),
		inner.EXPECT().Generate(gomock.Len(4)).Do(fillBlock(4)))

	for _, expected := range []uint32{1, 2, 3, 4} {
		for i := 0; i < 4; i++ {
			require.Equal(t, expected, generator.Uint32())
		}
	}
}

func TestReseedingGeneratorTransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	inner := newMockBlockGenerator(ctrl)
	reseeder := mock.NewMockSource(ctrl)
	errorLogger := mock.NewMockErrorLogger(ctrl)
	generator := random.NewReseedingGenerator(inner, 16, reseeder, errorLogger)

	// Failures to reseed should only be logged. Output should
	// continue to be generated using the existing state, and
	// reseeding should be retried for the next block.
	gomock.InOrder(
		inner.EXPECT().Generate(gomock.Len(4)).Do(fillBlock(1)),
		reseeder.EXPECT().TryFillBytes(gomock.Len(8)).Return(random.NewError(random.ErrorKindTransient, "Entropy pool exhausted")),
		errorLogger.EXPECT().Log(testutil.EqStatus(status.Error(codes.Aborted, "Failed to reseed generator: RNG error [transient failure]: Entropy pool exhausted"))),
		inner.EXPECT().Generate(gomock.Len(4)).Do(fillBlock(2)),
		reseeder.EXPECT().TryFillBytes(gomock.Len(8)).DoAndReturn(testutil.FillBytes(0x13)),
		inner.EXPECT().Seed(bytes.Repeat([]byte{0x13}, 8)),
		inner.EXPECT().Generate(gomock.Len(4)).Do(fillBlock(3)))

	var b [48]byte
	generator.FillBytes(b[:])
	require.Equal(t, bytes.Repeat([]byte{1, 0, 0, 0}, 4), b[:16])
	require.Equal(t, bytes.Repeat([]byte{2, 0, 0, 0}, 4), b[16:32])
	require.Equal(t, bytes.Repeat([]byte{3, 0, 0, 0}, 4), b[32:])
}

func TestReseedingGeneratorReseed(t *testing.T) {
	ctrl := gomock.NewController(t)

	inner := newMockBlockGenerator(ctrl)
	reseeder := mock.NewMockSource(ctrl)
	errorLogger := mock.NewMockErrorLogger(ctrl)
	generator := random.NewReseedingGenerator(inner, 1000, reseeder, errorLogger)

	t.Run("Success", func(t *testing.T) {
		// Explicit reseeding should discard the remainder of
		// the current block.
		gomock.InOrder(
			inner.EXPECT().Generate(gomock.Len(4)).Do(fillBlock(1)),
			reseeder.EXPECT().TryFillBytes(gomock.Len(8)).DoAndReturn(testutil.FillBytes(0x99)),
			inner.EXPECT().Seed(bytes.Repeat([]byte{0x99}, 8)),
			inner.EXPECT().Generate(gomock.Len(4)).Do(fillBlock(2)))

		require.Equal(t, uint32(1), generator.Uint32())
		require.NoError(t, generator.Reseed())
		require.Equal(t, uint32(2), generator.Uint32())
	})

	t.Run("Failure", func(t *testing.T) {
		// Errors should be returned to the caller instead of
		// being logged. The existing state is retained.
		reseedErr := random.NewError(random.ErrorKindUnavailable, "Device not found")
		gomock.InOrder(
			reseeder.EXPECT().TryFillBytes(gomock.Len(8)).Return(reseedErr),
			inner.EXPECT().Generate(gomock.Len(4)).Do(fillBlock(3)))

		require.Equal(t, reseedErr, generator.Reseed())
		require.Equal(t, uint32(3), generator.Uint32())
	})
}

func TestReseedingGeneratorNoThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)

	// Thresholds of zero and thresholds that don't fit in a signed
	// integer should not cause the generator to be reseeded.
	for _, threshold := range []uint64{0, math.MaxUint64} {
		inner := newMockBlockGenerator(ctrl)
		reseeder := mock.NewMockSource(ctrl)
		errorLogger := mock.NewMockErrorLogger(ctrl)
		generator := random.NewReseedingGenerator(inner, threshold, reseeder, errorLogger)

		inner.EXPECT().Generate(gomock.Len(4)).Do(fillBlock(7)).Times(1000)
		var b [16000]byte
		generator.FillBytes(b[:])
		require.Equal(t, bytes.Repeat([]byte{7, 0, 0, 0}, 4000), b[:])
	}
}

func TestReseedingGeneratorReproducible(t *testing.T) {
	newGenerator := func() *random.ReseedingGenerator {
		return random.NewReseedingGenerator(
			random.NewChaCha20BlockGenerator(bytes.Repeat([]byte{0x01}, 32)),
			128,
			random.NewStepSource(1, 1),
			util.DefaultErrorLogger)
	}
	a, b := newGenerator(), newGenerator()
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestReseedingGeneratorZeroReseeder(t *testing.T) {
	// Reseeding with zeros after every block should cause the
	// ChaCha20 keystream for an all-zero key to be repeated.
	generator := random.NewReseedingGenerator(
		random.NewChaCha20BlockGenerator(make([]byte, 32)),
		128,
		random.NewStepSource(0, 0),
		util.DefaultErrorLogger)

	var first [64]uint32
	for i := range first {
		first[i] = generator.Uint32()
	}
	require.Equal(t, uint32(0xade0b876), first[0])
	for block := 0; block < 3; block++ {
		for i := range first {
			require.Equal(t, first[i], generator.Uint32())
		}
	}
}

func TestReseedingGeneratorClone(t *testing.T) {
	t.Run("ReseedsOnFirstUse", func(t *testing.T) {
		original := random.NewReseedingGenerator(
			random.NewChaCha20BlockGenerator(make([]byte, 32)),
			128,
			random.NewStepSource(0, 0),
			util.DefaultErrorLogger)
		first := original.Uint32()
		for i := 0; i < 10; i++ {
			original.Uint32()
		}

		// The clone is reseeded with zeros before generating its
		// first block, thereby restarting the keystream.
		clone := original.Clone()
		require.Equal(t, first, clone.Uint32())
	})

	t.Run("ClonesReseeder", func(t *testing.T) {
		original := random.NewReseedingGenerator(
			random.NewChaCha20BlockGenerator(make([]byte, 32)),
			0,
			random.NewStepSource(1, 1),
			util.DefaultErrorLogger)
		original.Uint32()

		// The clone obtains its seed from a copy of the
		// reseeder. Reseeding the original afterwards should
		// therefore yield the same state.
		clone := original.Clone()
		fromClone := clone.Uint64()
		require.NoError(t, original.Reseed())
		require.Equal(t, fromClone, original.Uint64())
	})

	t.Run("DiffersFromOriginal", func(t *testing.T) {
		original := random.NewReseedingGenerator(
			random.NewChaCha20BlockGenerator(make([]byte, 32)),
			0,
			random.NewStepSource(1, 1),
			util.DefaultErrorLogger)
		original.Uint32()

		clone := original.Clone()
		require.NotEqual(t, original.Uint64(), clone.Uint64())
	})

	t.Run("OriginalUnaffectedByClone", func(t *testing.T) {
		// Using a clone should not alter the output of the
		// original, regardless of the type of reseeder. This
		// requires reseeders to be cloned as well.
		for name, newReseeder := range map[string]func() random.Source{
			"Step":     func() random.Source { return random.NewStepSource(1, 1) },
			"XorShift": func() random.Source { return random.NewXorShiftSource(7) },
			"Reseeding": func() random.Source {
				return random.NewReseedingGenerator(
					random.NewPCGBlockGenerator(make([]byte, 16)),
					64,
					random.NewXorShiftSource(9),
					util.DefaultErrorLogger)
			},
		} {
			t.Run(name, func(t *testing.T) {
				newGenerator := func() *random.ReseedingGenerator {
					return random.NewReseedingGenerator(
						random.NewPCGBlockGenerator(make([]byte, 16)),
						256,
						newReseeder(),
						util.DefaultErrorLogger)
				}
				a, b := newGenerator(), newGenerator()
				a.Clone().Uint64()

				var fromA, fromB [1024]byte
				a.FillBytes(fromA[:])
				b.FillBytes(fromB[:])
				require.Equal(t, fromB, fromA)
			})
		}
	})

	t.Run("SharesNonCloneableReseeder", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		reseeder := mock.NewMockSource(ctrl)
		errorLogger := mock.NewMockErrorLogger(ctrl)
		original := random.NewReseedingGenerator(
			random.NewPCGBlockGenerator(make([]byte, 16)),
			0,
			reseeder,
			errorLogger)
		clone := original.Clone()

		reseeder.EXPECT().TryFillBytes(gomock.Len(16)).DoAndReturn(testutil.FillBytes(0x01, 0x02))
		clone.Uint32()
	})
}
