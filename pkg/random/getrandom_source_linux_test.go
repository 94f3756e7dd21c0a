//go:build linux

package random_test

import (
	"testing"

	"github.com/buildbarn/bb-random/pkg/random"
	"github.com/stretchr/testify/require"
)

func TestGetrandomSource(t *testing.T) {
	for name, nonBlocking := range map[string]bool{
		"Blocking":    false,
		"NonBlocking": true,
	} {
		t.Run(name, func(t *testing.T) {
			source, err := random.NewGetrandomSource(nonBlocking)
			require.NoError(t, err)

			// Requests larger than 256 bytes may be satisfied
			// partially by the kernel.
			var a, b [4096]byte
			require.NoError(t, source.TryFillBytes(a[:]))
			source.FillBytes(b[:])
			require.NotEqual(t, a, b)
			require.NotEqual(t, source.Uint64(), source.Uint64())
		})
	}
}
