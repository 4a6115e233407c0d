// Package writer identifies processes actively writing to the monitored
// mount's backing block device. The primary source is a short window of
// a block-I/O tracing tool (e.g. bcc's biosnoop); in smart mode a
// cumulative /proc/<pid>/io scan supplements each tracer window. Results
// from both are merged with a persisted table of recently-seen writers so
// a process that stopped writing moments before a sample isn't invisible.
package writer
