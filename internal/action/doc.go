// Package action sends the signal appropriate to a severity level to the
// top-ranked writer candidates and tracks paused processes (strike counts,
// pause time) so the resume manager can later unfreeze them safely.
package action
