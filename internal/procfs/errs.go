package procfs

import "errors"

var (
	// ErrNoStat indicates that /proc/<pid>/stat was empty or malformed.
	ErrNoStat = errors.New("procfs: malformed or empty stat")

	// ErrShortStat indicates that /proc/<pid>/stat had fewer fields than expected.
	ErrShortStat = errors.New("procfs: short stat")

	// ErrNoIO indicates that /proc/<pid>/io had neither read_bytes nor write_bytes.
	ErrNoIO = errors.New("procfs: no io counters")
)
