package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// File names within the private state directory.
const (
	FileLevel        = "state"
	FileRate         = "rate"
	FileKnownWriters = "known_writers"
	FilePausedPIDs   = "paused_pids"
)

// NotifyFile returns the per-level cooldown file name, e.g. "notify_warn".
func NotifyFile(levelName string) string {
	return "notify_" + levelName
}

// Dir is the watchdog's private state directory (mode 0700), holding the
// small per-concern state files the daemon owns and read-only
// subcommands parse.
type Dir struct {
	path string
}

// Open ensures path exists with 0700 permissions and returns a Dir
// rooted there.
func Open(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return nil, fmt.Errorf("state: create state dir %s: %w", path, err)
	}
	return &Dir{path: path}, nil
}

// Path joins name onto the state directory's path.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.path, name)
}

// Read returns the trimmed contents of name, or ("", false) if the file
// doesn't exist. Missing state files are tolerated everywhere: a fresh
// install, or a daemon that's never written a given file yet.
func (d *Dir) Read(name string) (string, bool, error) {
	b, err := os.ReadFile(d.Path(name))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(string(b)), true, nil
}

// Write atomically replaces name's contents: write to a sibling temp
// file, then rename over the target. A crash mid-write never leaves a
// half-written state file for the next read.
func (d *Dir) Write(name, body string) error {
	target := d.Path(name)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, []byte(body), 0o600); err != nil {
		return fmt.Errorf("state: write temp %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("state: rename %s -> %s: %w", tmp, target, err)
	}
	return nil
}

// ReadNotifyCooldown returns the last-sent wall time for levelName's
// notification cooldown, or the zero time if never sent.
func (d *Dir) ReadNotifyCooldown(levelName string) (time.Time, error) {
	body, ok, err := d.Read(NotifyFile(levelName))
	if err != nil {
		return time.Time{}, err
	}
	if !ok || body == "" {
		return time.Time{}, nil
	}
	sec, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("state: malformed %s: %w", NotifyFile(levelName), err)
	}
	return time.Unix(sec, 0), nil
}

// WriteNotifyCooldown records at as levelName's last-sent time.
func (d *Dir) WriteNotifyCooldown(levelName string, at time.Time) error {
	return d.Write(NotifyFile(levelName), strconv.FormatInt(at.Unix(), 10))
}

// ClearNotifyCooldowns removes every per-level cooldown file, as done on
// recovery back to "ok".
func (d *Dir) ClearNotifyCooldowns(levelNames []string) error {
	for _, name := range levelNames {
		if err := os.Remove(d.Path(NotifyFile(name))); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
