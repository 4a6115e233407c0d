// Package cli builds the cobra command tree for the diskwatchdog
// binary: run (the daemon itself) plus the read-only and administrative
// subcommands that inspect or act on its persisted state without
// running the control loop.
package cli
