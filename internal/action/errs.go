package action

import "errors"

// ErrMalformedState indicates a persisted "paused_pids" line did not have
// the expected four TAB-separated fields.
var ErrMalformedState = errors.New("action: malformed paused_pids state")
