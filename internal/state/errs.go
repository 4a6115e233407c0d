package state

import "errors"

// ErrLocked indicates another instance already holds the PID file lock.
var ErrLocked = errors.New("state: another instance is already running")
