package random_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/buildbarn/bb-random/pkg/random"
	"github.com/buildbarn/bb-random/pkg/testutil"
	"github.com/buildbarn/bb-random/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newSourceFromSnippet(t *testing.T, snippet string) (random.Source, error) {
	var configuration random.SourceConfiguration
	require.NoError(t, util.UnmarshalConfigurationFromSnippet("source.jsonnet", snippet, &configuration))
	return random.NewSourceFromConfiguration(&configuration, util.DefaultErrorLogger)
}

func TestNewSourceFromConfiguration(t *testing.T) {
	t.Run("Step", func(t *testing.T) {
		source, err := newSourceFromSnippet(t, `{ step: { initial: 3, increment: 4 } }`)
		require.NoError(t, err)
		require.Equal(t, uint64(3), source.Uint64())
		require.Equal(t, uint64(7), source.Uint64())
	})

	t.Run("XorShift", func(t *testing.T) {
		source, err := newSourceFromSnippet(t, `{ xorShift: { seed: 42 } }`)
		require.NoError(t, err)
		require.Equal(t, random.NewXorShiftSource(42).Uint64(), source.Uint64())
	})

	t.Run("Crypto", func(t *testing.T) {
		source, err := newSourceFromSnippet(t, `{ crypto: {} }`)
		require.NoError(t, err)
		require.Equal(t, random.CryptoSource, source)
	})

	t.Run("Getrandom", func(t *testing.T) {
		source, err := newSourceFromSnippet(t, `{ getrandom: { nonBlocking: true } }`)
		if runtime.GOOS != "linux" {
			testutil.RequireEqualStatus(t, status.Error(codes.Unimplemented, "getrandom() is not supported on this platform"), err)
			return
		}
		require.NoError(t, err)
		require.NoError(t, source.TryFillBytes(make([]byte, 32)))
	})

	t.Run("LocalGenerator", func(t *testing.T) {
		source, err := newSourceFromSnippet(t, `{ localGenerator: {} }`)
		require.NoError(t, err)
		require.IsType(t, &random.LocalGenerator{}, source)
	})

	t.Run("ReseedingWithSeed", func(t *testing.T) {
		source, err := newSourceFromSnippet(t, `{
			reseeding: {
				algorithm: 'CHACHA20',
				seed: std.repeat('00', 32),
				thresholdBytes: 256,
				reseeder: { step: { initial: 0, increment: 0 } },
			},
		}`)
		require.NoError(t, err)

		// Reseeding with zeros should yield the keystream of an
		// all-zero key indefinitely.
		reference := newChaCha20Reference(0x00)
		first := reference.Uint32()
		require.Equal(t, first, source.Uint32())
		for i := 1; i < 64; i++ {
			source.Uint32()
		}
		require.Equal(t, first, source.Uint32())
	})

	t.Run("ReseedingWithoutSeed", func(t *testing.T) {
		// The initial seed should be obtained from the reseeder.
		source, err := newSourceFromSnippet(t, `{
			reseeding: {
				algorithm: 'BLAKE3',
				thresholdBytes: 0,
				reseeder: { step: { initial: 0, increment: 0 } },
			},
		}`)
		require.NoError(t, err)

		reference := random.NewBlockSource(random.NewBLAKE3BlockGenerator(make([]byte, 32)))
		for i := 0; i < 100; i++ {
			require.Equal(t, reference.Uint64(), source.Uint64())
		}
	})

	t.Run("ReseedingPCG", func(t *testing.T) {
		source, err := newSourceFromSnippet(t, `{
			reseeding: {
				algorithm: 'PCG',
				seed: '` + strings.Repeat("01", 16) + `',
				thresholdBytes: 1024,
			},
		}`)
		require.NoError(t, err)
		source.Uint64()
	})

	t.Run("NotSpecified", func(t *testing.T) {
		_, err := random.NewSourceFromConfiguration(nil, util.DefaultErrorLogger)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Source configuration not specified"), err)
	})

	t.Run("NoSourceType", func(t *testing.T) {
		_, err := newSourceFromSnippet(t, `{}`)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "No source type specified"), err)
	})

	t.Run("MultipleSourceTypes", func(t *testing.T) {
		_, err := newSourceFromSnippet(t, `{ crypto: {}, localGenerator: {} }`)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Multiple source types specified"), err)
	})

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		_, err := newSourceFromSnippet(t, `{ reseeding: { algorithm: 'RC4' } }`)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Unknown block generator algorithm \"RC4\""), err)
	})

	t.Run("InvalidSeed", func(t *testing.T) {
		_, err := newSourceFromSnippet(t, `{ reseeding: { algorithm: 'CHACHA20', seed: 'xyz' } }`)
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Invalid seed: "), err)
	})

	t.Run("SeedSizeMismatch", func(t *testing.T) {
		_, err := newSourceFromSnippet(t, `{ reseeding: { algorithm: 'CHACHA20', seed: '0011' } }`)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Seed is 2 bytes in size, while algorithm CHACHA20 requires 32 bytes"), err)
	})

	t.Run("InvalidReseeder", func(t *testing.T) {
		_, err := newSourceFromSnippet(t, `{ reseeding: { algorithm: 'PCG', reseeder: {} } }`)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Failed to create reseeder: No source type specified"), err)
	})
}
