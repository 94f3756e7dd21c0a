package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// RequireEqualStatus asserts that two errors convert to the same gRPC
// status. This also applies to errors of type *random.Error, as they
// can be converted to a gRPC status.
func RequireEqualStatus(t *testing.T, want, got error) {
	t.Helper()
	wantProto := status.Convert(want).Proto()
	gotProto := status.Convert(got).Proto()
	if !proto.Equal(wantProto, gotProto) {
		t.Fatalf("Not equal:\nWant:\n\n%s\n\nGot:\n\n%s", mustMarshalToString(t, wantProto), mustMarshalToString(t, gotProto))
	}
}

// RequirePrefixedStatus compares that two errors, assumed to be gRPC
// statuses, are the same, except got may have extra trailing
// characters in its message.
func RequirePrefixedStatus(t *testing.T, want, got error) {
	t.Helper()
	wantProto := status.Convert(want).Proto()
	gotProto := status.Convert(got).Proto()
	require.Condition(t, func() bool { return strings.HasPrefix(gotProto.GetMessage(), wantProto.GetMessage()) }, "Want message of status\n%v\nto have prefix\n%v", mustMarshalToString(t, gotProto), wantProto.GetMessage())
	gotProto.Message = wantProto.GetMessage()
	require.True(t, proto.Equal(wantProto, gotProto), "Status %v does not match %v", got, want)
}

type eqStatusMatcher struct {
	status        error
	statusMessage proto.Message
}

// EqStatus is a gomock matcher for gRPC status equality. It can, for
// example, be used to match errors passed to a mocked ErrorLogger.
func EqStatus(s error) gomock.Matcher {
	return &eqStatusMatcher{
		status:        s,
		statusMessage: status.Convert(s).Proto(),
	}
}

func (m *eqStatusMatcher) Matches(got any) bool {
	if gotError, ok := got.(error); ok {
		return proto.Equal(m.statusMessage, status.Convert(gotError).Proto())
	}
	return false
}

func (m *eqStatusMatcher) String() string {
	return fmt.Sprintf("is status equal to %v", m.status)
}

type eqPrefixedStatusMatcher struct {
	status error
}

// EqPrefixedStatus is a gomock matcher for gRPC status equality
// allowing trailing characters in the message.
func EqPrefixedStatus(status error) gomock.Matcher {
	return &eqPrefixedStatusMatcher{
		status: status,
	}
}

func (m *eqPrefixedStatusMatcher) Matches(got any) bool {
	if gotError, ok := got.(error); ok {
		gotProto := status.Convert(gotError).Proto()
		matchProto := status.Convert(m.status).Proto()
		if strings.HasPrefix(gotProto.GetMessage(), matchProto.GetMessage()) {
			matchProto.Message = gotProto.GetMessage()
			return proto.Equal(gotProto, matchProto)
		}
	}
	return false
}

func (m *eqPrefixedStatusMatcher) String() string {
	return fmt.Sprintf("is status prefixed by %v", m.status)
}

// FillBytes returns a function that can be passed to DoAndReturn() of
// a mocked Source.TryFillBytes() call. It copies the provided data
// into the buffer, repeating it if the buffer is larger, and reports
// success.
func FillBytes(data ...byte) func(p []byte) error {
	return func(p []byte) error {
		for i := range p {
			p[i] = data[i%len(data)]
		}
		return nil
	}
}

func mustMarshalToString(t *testing.T, message proto.Message) string {
	s, err := protojson.MarshalOptions{
		Multiline: true,
	}.Marshal(message)
	if err != nil {
		t.Fatal(err)
	}
	return string(s)
}
