// Package state manages the watchdog's private state directory: the
// exclusive PID-file lock that keeps a second instance from starting, and
// atomic (write-temp-then-rename) reads/writes of the small per-concern
// state files (current level, last sample, known writers, paused PIDs,
// per-level notification cooldowns).
package state
