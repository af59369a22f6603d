package goout

import (
	"errors"

	"nickandperla.net/goout/internal/fault"
)

// SyntaxError is the parse-time failure kind.
type SyntaxError = fault.SyntaxError

// RuntimeError is the execution-time failure kind.
type RuntimeError = fault.RuntimeError

// IsSyntaxError reports whether err is a goout syntax failure.
func IsSyntaxError(err error) bool {
	var se *fault.SyntaxError
	return errors.As(err, &se)
}

// IsRuntimeError reports whether err is a goout runtime failure.
func IsRuntimeError(err error) bool {
	var re *fault.RuntimeError
	return errors.As(err, &re)
}
