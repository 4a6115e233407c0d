// Package procfs provides the handful of /proc readers the writer detector
// and resume manager need that are cheaper to read directly than to go
// through a general-purpose process library: the raw kernel state
// character (to confirm a PID is actually stopped, "T", before it is
// resumed) and the kernel-truncated comm string
// used to detect a PID being recycled out from under a tracked record.
//
// Everything here is read-only except nothing — procfs never writes.
// Sampling cost is one or two file opens per PID per call; callers that
// scan every PID on the host (the writer detector's fallback path)
// should expect cost to scale with the number of processes on the box.
package procfs
