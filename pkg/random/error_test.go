package random_test

import (
	"errors"
	"io"
	"testing"

	"github.com/buildbarn/bb-random/pkg/random"
	"github.com/buildbarn/bb-random/pkg/testutil"
	"github.com/buildbarn/bb-random/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorKind(t *testing.T) {
	for kind, expected := range map[random.ErrorKind]struct {
		shouldRetry bool
		shouldWait  bool
		code        codes.Code
	}{
		random.ErrorKindUnavailable: {false, false, codes.Unavailable},
		random.ErrorKindTransient:   {true, false, codes.Aborted},
		random.ErrorKindNotReady:    {true, true, codes.FailedPrecondition},
		random.ErrorKindOther:       {false, false, codes.Unknown},
	} {
		t.Run(kind.String(), func(t *testing.T) {
			require.Equal(t, expected.shouldRetry, kind.ShouldRetry())
			require.Equal(t, expected.shouldWait, kind.ShouldWait())
			require.Equal(t, expected.code, status.Code(random.NewError(kind, "Hello")))
		})
	}
}

func TestError(t *testing.T) {
	t.Run("WithoutCause", func(t *testing.T) {
		err := random.NewError(random.ErrorKindNotReady, "Entropy pool not initialized")
		require.Equal(t, "RNG error [not ready yet]: Entropy pool not initialized", err.Error())
		require.Nil(t, errors.Unwrap(err))
		require.Equal(t, random.ErrorKindNotReady, random.KindOf(err))
	})

	t.Run("WithCause", func(t *testing.T) {
		err := random.NewErrorWithCause(random.ErrorKindUnavailable, "Failed to read", io.ErrUnexpectedEOF)
		require.Equal(t, "RNG error [permanent failure or unavailable]: Failed to read: unexpected EOF", err.Error())
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("KindOfWrapped", func(t *testing.T) {
		err := random.NewError(random.ErrorKindTransient, "Interrupted")
		require.Equal(t, random.ErrorKindTransient, random.KindOf(errors.Join(io.EOF, err)))
		require.Equal(t, random.ErrorKindOther, random.KindOf(io.EOF))
		require.Equal(t, random.ErrorKindOther, random.KindOf(nil))
	})

	t.Run("StatusWrap", func(t *testing.T) {
		// Wrapping an error using the gRPC status helpers should
		// retain its classification.
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Aborted, "Failed to reseed generator: RNG error [transient failure]: Interrupted"),
			util.StatusWrap(random.NewError(random.ErrorKindTransient, "Interrupted"), "Failed to reseed generator"))
	})
}
