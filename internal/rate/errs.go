package rate

import "errors"

// ErrMalformedState indicates the persisted "rate" state file body was
// not two whitespace-separated integers.
var ErrMalformedState = errors.New("rate: malformed state")
