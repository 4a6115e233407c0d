//go:build linux

package procfs

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// Exists reports whether a given PID currently exists in /proc.
func Exists(pid int) bool {
	_, err := os.Stat(fmt.Sprintf("/proc/%d", pid))
	return err == nil
}

// Stat holds the fields of /proc/<pid>/stat the daemon cares about.
type Stat struct {
	// Comm is the kernel-truncated command name (≤15 bytes), without
	// the parens /proc/<pid>/stat wraps it in.
	Comm string
	// State is the single-character process state ('R', 'S', 'D', 'Z',
	// 'T' stopped, ...).
	State byte
}

// Stopped reports whether the process is in the kernel "T" (stopped) state.
func (s Stat) Stopped() bool { return s.State == 'T' }

// ReadStat parses /proc/<pid>/stat for comm and state.
//
// comm (2nd field) is parenthesized and may itself contain spaces or
// parens, so everything up to the last ")" is treated as "pid (comm)"
// and the state char is the first field after that.
func ReadStat(pid int) (Stat, error) {
	f, err := os.Open(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return Stat{}, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return Stat{}, ErrNoStat
	}
	line := sc.Text()

	open := strings.IndexByte(line, '(')
	closeParen := strings.LastIndexByte(line, ')')
	if open < 0 || closeParen < 0 || closeParen < open {
		return Stat{}, ErrNoStat
	}
	comm := line[open+1 : closeParen]

	rest := strings.Fields(line[closeParen+1:])
	if len(rest) < 1 || len(rest[0]) == 0 {
		return Stat{}, ErrShortStat
	}

	return Stat{Comm: comm, State: rest[0][0]}, nil
}

// IOCounters reads /proc/<pid>/io and returns cumulative read_bytes and
// write_bytes. These counters are monotonic for the life of the process.
//
// Not all processes expose this file (kernel threads, insufficient
// permission); callers should treat an error as "no data this tick"
// rather than fatal.
func IOCounters(pid int) (readBytes, writeBytes uint64, err error) {
	f, err := os.Open(fmt.Sprintf("/proc/%d/io", pid))
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	var sawAny bool
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "read_bytes:"):
			v := strings.TrimSpace(strings.TrimPrefix(line, "read_bytes:"))
			readBytes, _ = strconv.ParseUint(v, 10, 64)
			sawAny = true
		case strings.HasPrefix(line, "write_bytes:"):
			v := strings.TrimSpace(strings.TrimPrefix(line, "write_bytes:"))
			writeBytes, _ = strconv.ParseUint(v, 10, 64)
			sawAny = true
		}
	}
	if err := sc.Err(); err != nil {
		return 0, 0, err
	}
	if !sawAny {
		return 0, 0, ErrNoIO
	}
	return readBytes, writeBytes, nil
}

// OwnerUID returns the numeric UID that owns /proc/<pid>, via stat on the
// directory rather than parsing /proc/<pid>/status.
func OwnerUID(pid int) (uint32, error) {
	fi, err := os.Stat(fmt.Sprintf("/proc/%d", pid))
	if err != nil {
		return 0, err
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, ErrNoStat
	}
	return st.Uid, nil
}
