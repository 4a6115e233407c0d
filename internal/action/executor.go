//go:build linux

package action

import (
	"log/slog"
	"syscall"
	"time"

	"github.com/radrob2/diskwatchdog/internal/level"
	"github.com/radrob2/diskwatchdog/internal/logx"
	"github.com/radrob2/diskwatchdog/internal/procfs"
	"github.com/radrob2/diskwatchdog/internal/writer"
)

// candidateCount is how many ranked writers each level acts on.
func candidateCount(lvl level.Level) int {
	switch lvl {
	case level.Pause:
		return 5
	case level.Stop:
		return 5
	case level.Kill:
		return 10
	default:
		return 0
	}
}

func signalFor(lvl level.Level) syscall.Signal {
	switch lvl {
	case level.Pause:
		return syscall.SIGSTOP
	case level.Stop:
		return syscall.SIGTERM
	case level.Kill:
		return syscall.SIGKILL
	default:
		return 0
	}
}

// Executor signals top writer candidates for a level transition and
// tracks pauses for the resume manager.
type Executor struct {
	Logger *slog.Logger
	DryRun bool
	Paused *PausedTable
}

// Result is the per-candidate outcome of one Execute call.
type Result struct {
	Candidate writer.Candidate
	Signaled  bool
	Err       error
}

// Execute signals up to N candidates (N depends on lvl) with the signal
// appropriate to lvl. Only level.Pause/Stop/Kill act; any other level is
// a no-op and returns nil. Before signaling, each candidate's comm is
// rechecked against /proc/<pid>/stat; a PID that has vanished or whose
// comm no longer matches (reused between detection and signal delivery)
// is skipped silently rather than signaled. Signal-delivery failures
// (permission denied) are logged and skipped, not retried; they don't
// abort the remaining candidates.
func (e *Executor) Execute(lvl level.Level, candidates []writer.Candidate, now time.Time) []Result {
	n := candidateCount(lvl)
	if n == 0 {
		return nil
	}
	if n > len(candidates) {
		n = len(candidates)
	}
	sig := signalFor(lvl)

	results := make([]Result, 0, n)
	for _, c := range candidates[:n] {
		if stat, err := procfs.ReadStat(c.PID); err != nil || stat.Comm != c.Comm {
			e.Logger.Info("candidate gone or comm changed, skipping", logx.Tag("INFO"), "level", lvl.String(), "pid", c.PID, "comm", c.Comm)
			continue
		}

		if e.DryRun {
			e.Logger.Info("would signal writer", logx.Tag("DRY-RUN"), "level", lvl.String(), "pid", c.PID, "comm", c.Comm)
			if lvl == level.Pause {
				e.Paused.Pause(c.PID, c.Comm, now)
			}
			results = append(results, Result{Candidate: c, Signaled: false})
			continue
		}

		err := syscall.Kill(c.PID, sig)
		if err != nil {
			e.Logger.Warn("signal delivery failed", "level", lvl.String(), "pid", c.PID, "comm", c.Comm, "err", err)
			results = append(results, Result{Candidate: c, Err: err})
			continue
		}

		e.Logger.Info("signaled writer", logx.Tag("ACTION"), "level", lvl.String(), "pid", c.PID, "comm", c.Comm, "bytes", c.RankBytes())
		if lvl == level.Pause {
			e.Paused.Pause(c.PID, c.Comm, now)
		}
		results = append(results, Result{Candidate: c, Signaled: true})
	}
	return results
}
