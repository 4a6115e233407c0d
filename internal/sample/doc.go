// Package sample reads free/total space for a single mount point and
// derives the backing block device's short name (the form that shows up
// in block-I/O tracer output, e.g. "sda" or "nvme0n1").
package sample
