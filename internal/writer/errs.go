package writer

import "errors"

var (
	// ErrTracerUnavailable indicates the configured tracer command could
	// not be found on PATH.
	ErrTracerUnavailable = errors.New("writer: tracer command unavailable")

	// ErrTracerWindow indicates the tracer subprocess failed or produced
	// no parseable output during its sampling window.
	ErrTracerWindow = errors.New("writer: tracer window failed")
)
