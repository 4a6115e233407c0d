//go:build linux

package state

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// PIDFile is the locked, decimal-PID-holding file required while the
// daemon runs, guaranteeing mutual exclusion against other instances.
type PIDFile struct {
	file *os.File
	path string
}

// AcquirePIDFile opens (creating if needed) the PID file at path, takes a
// non-blocking exclusive advisory lock on it, and writes the current
// process's PID. Startup fails immediately — never blocks — if another
// instance already holds the lock.
func AcquirePIDFile(path string) (*PIDFile, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("state: open pid file %s: %w", path, err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		if err == syscall.EWOULDBLOCK {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("state: lock pid file %s: %w", path, err)
	}

	if err := f.Truncate(0); err != nil {
		f.Close()
		return nil, fmt.Errorf("state: truncate pid file: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return nil, fmt.Errorf("state: seek pid file: %w", err)
	}
	if _, err := f.WriteString(strconv.Itoa(os.Getpid())); err != nil {
		f.Close()
		return nil, fmt.Errorf("state: write pid file: %w", err)
	}

	return &PIDFile{file: f, path: path}, nil
}

// Release unlocks, closes, and removes the PID file. Called on clean
// shutdown.
func (p *PIDFile) Release() error {
	_ = syscall.Flock(int(p.file.Fd()), syscall.LOCK_UN)
	_ = p.file.Close()
	return os.Remove(p.path)
}

// ReadPID reads the decimal PID from path without acquiring any lock, for
// the "stop" subcommand to find the target process.
func ReadPID(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return 0, fmt.Errorf("state: malformed pid file %s: %w", path, err)
	}
	return pid, nil
}
