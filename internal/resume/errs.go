package resume

import "errors"

// ErrResumeFailed indicates sending the continue signal to an otherwise
// eligible paused process failed (target vanished, permission denied).
var ErrResumeFailed = errors.New("resume: signal delivery failed")
