package util

import (
	"log"
)

// ErrorLogger may be used to report errors. Implementations may decide
// to log, mutate, redirect and discard them. This interface is used in
// places where errors are generated asynchronously, or where errors are
// deliberately not returned to the caller, such as failures to reseed
// a generator automatically.
type ErrorLogger interface {
	Log(err error)
}

type defaultErrorLogger struct{}

func (l defaultErrorLogger) Log(err error) {
	log.Print(err)
}

// DefaultErrorLogger writes errors using Go's standard logging package.
var DefaultErrorLogger ErrorLogger = defaultErrorLogger{}

// ErrorLoggerFunc is an adapter that allows the use of an ordinary
// function as an ErrorLogger.
type ErrorLoggerFunc func(err error)

// Log calls f(err).
func (f ErrorLoggerFunc) Log(err error) {
	f(err)
}
