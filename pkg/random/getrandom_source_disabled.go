//go:build !linux

package random

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewGetrandomSource creates a Source that obtains random data by
// calling getrandom(2) directly. This implementation is a stub for
// operating systems that don't provide getrandom(2).
func NewGetrandomSource(nonBlocking bool) (Source, error) {
	return nil, status.Error(codes.Unimplemented, "getrandom() is not supported on this platform")
}
