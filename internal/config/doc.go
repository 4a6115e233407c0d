// Package config loads the watchdog's key=value configuration file,
// applies DISK_WATCHDOG_<KEY> environment overrides, and resolves the
// free-space thresholds a disk of a given size should use.
//
// Loading and resolving are deliberately kept as separate steps:
// Load produces a Config of typed/validated settings; Resolve turns that
// Config plus a measured disk size into ResolvedThresholds. On SIGHUP the
// daemon re-runs both steps, keeping the previous Config and
// ResolvedThresholds if either fails.
package config
