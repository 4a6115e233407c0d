package daemon

import "errors"

// ErrTracerUnavailable is returned by New when the configured tracer
// binary can't be found on PATH; the daemon fails fast rather than
// starting with a detector that can never report anything.
var ErrTracerUnavailable = errors.New("daemon: tracer command unavailable, refusing to start")
