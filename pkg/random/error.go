package random

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind classifies failures of a Source, indicating whether the
// operation that caused it may be retried.
type ErrorKind int

const (
	// ErrorKindUnavailable indicates a permanent failure. It is
	// unlikely to be recoverable without intervention by the user.
	ErrorKindUnavailable ErrorKind = iota
	// ErrorKindTransient indicates a temporary failure. Retrying
	// may succeed.
	ErrorKindTransient
	// ErrorKindNotReady indicates that the source is not ready
	// yet. Retrying after a delay may succeed.
	ErrorKindNotReady
	// ErrorKindOther is used for failures that are not categorized.
	ErrorKindOther
)

// ShouldRetry returns true if an operation that failed with this kind
// of error may succeed when retried.
func (k ErrorKind) ShouldRetry() bool {
	return k == ErrorKindTransient || k == ErrorKindNotReady
}

// ShouldWait returns true if an operation that failed with this kind of
// error should only be retried after a delay. ShouldWait() implies
// ShouldRetry().
func (k ErrorKind) ShouldWait() bool {
	return k == ErrorKindNotReady
}

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUnavailable:
		return "permanent failure or unavailable"
	case ErrorKindTransient:
		return "transient failure"
	case ErrorKindNotReady:
		return "not ready yet"
	default:
		return "uncategorized"
	}
}

func (k ErrorKind) grpcCode() codes.Code {
	switch k {
	case ErrorKindUnavailable:
		return codes.Unavailable
	case ErrorKindTransient:
		return codes.Aborted
	case ErrorKindNotReady:
		return codes.FailedPrecondition
	default:
		return codes.Unknown
	}
}

// Error returned by Source.TryFillBytes() and by operations that
// reseed generators.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// NewError creates an Error of a given kind.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// NewErrorWithCause creates an Error of a given kind that chains an
// error that caused it.
func NewErrorWithCause(kind ErrorKind, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("RNG error [%s]: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("RNG error [%s]: %s: %s", e.Kind, e.Message, e.Cause)
}

// Unwrap returns the error that caused this error, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// GRPCStatus converts the error to a gRPC status, allowing it to be
// processed by status.Convert() and the helpers in pkg/util without
// losing its classification.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Kind.grpcCode(), e.Error())
}

// KindOf returns the kind of the first Error contained in the chain
// of err. ErrorKindOther is returned if err does not contain an Error.
func KindOf(err error) ErrorKind {
	var randomErr *Error
	if errors.As(err, &randomErr) {
		return randomErr.Kind
	}
	return ErrorKindOther
}
