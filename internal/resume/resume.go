//go:build linux

package resume

import (
	"syscall"
	"time"

	"github.com/radrob2/diskwatchdog/internal/action"
	"github.com/radrob2/diskwatchdog/internal/procfs"
)

// StaleAge is how long a paused-records entry survives cleanup even if
// its PID still exists in the kernel's process table.
const StaleAge = 2 * time.Hour

// Disposition is what Attempt decided to do about one PausedRecord.
type Disposition int

const (
	// Dropped means the record was removed without signaling: the PID
	// is gone, its comm changed, or it's no longer in state T.
	Dropped Disposition = iota
	// KeptStrikes means the record was left in place because its strike
	// count has reached the configured maximum.
	KeptStrikes
	// KeptCooldown means the record was left in place because its
	// cooldown hasn't elapsed yet.
	KeptCooldown
	// Resumed means CONT was sent successfully and the record removed.
	Resumed
	// ResumeFailed means CONT delivery failed; the record is left in
	// place for the next attempt.
	ResumeFailed
)

// Outcome is the per-record result of one Attempt call.
type Outcome struct {
	Record      action.PausedRecord
	Disposition Disposition
	Err         error
}

// ShouldAttempt reports whether the control loop should run Attempt this
// iteration: auto-resume must be enabled and free space must have
// recovered to at least the resume threshold.
func ShouldAttempt(autoResumeEnabled bool, freeGB, resumeThresholdGB int) bool {
	return autoResumeEnabled && freeGB >= resumeThresholdGB
}

// Attempt evaluates every record in paused against current process state
// and either resumes it, drops it, or leaves it in place, per record.
func Attempt(paused *action.PausedTable, now time.Time, cooldown time.Duration, maxStrikes int) []Outcome {
	var outcomes []Outcome
	for _, rec := range paused.Entries() {
		stat, err := procfs.ReadStat(rec.PID)
		if err != nil {
			paused.Remove(rec.PID)
			outcomes = append(outcomes, Outcome{Record: rec, Disposition: Dropped})
			continue
		}
		if stat.Comm != rec.Comm {
			paused.Remove(rec.PID)
			outcomes = append(outcomes, Outcome{Record: rec, Disposition: Dropped})
			continue
		}
		if !stat.Stopped() {
			paused.Remove(rec.PID)
			outcomes = append(outcomes, Outcome{Record: rec, Disposition: Dropped})
			continue
		}
		if rec.Strikes >= maxStrikes {
			outcomes = append(outcomes, Outcome{Record: rec, Disposition: KeptStrikes})
			continue
		}
		if now.Sub(rec.PausedAt) < cooldown {
			outcomes = append(outcomes, Outcome{Record: rec, Disposition: KeptCooldown})
			continue
		}

		if err := syscall.Kill(rec.PID, syscall.SIGCONT); err != nil {
			outcomes = append(outcomes, Outcome{Record: rec, Disposition: ResumeFailed, Err: err})
			continue
		}
		paused.Remove(rec.PID)
		outcomes = append(outcomes, Outcome{Record: rec, Disposition: Resumed})
	}
	return outcomes
}

// ManualResumeAll unconditionally sends CONT to every still-stopped
// record (ignoring cooldown and strike limits, matching the manual
// "resume" subcommand), then empties the table so the caller's
// persisted-file truncation reflects reality.
func ManualResumeAll(paused *action.PausedTable) []Outcome {
	var outcomes []Outcome
	for _, rec := range paused.Entries() {
		stat, err := procfs.ReadStat(rec.PID)
		if err != nil || stat.Comm != rec.Comm || !stat.Stopped() {
			outcomes = append(outcomes, Outcome{Record: rec, Disposition: Dropped})
			continue
		}
		if err := syscall.Kill(rec.PID, syscall.SIGCONT); err != nil {
			outcomes = append(outcomes, Outcome{Record: rec, Disposition: ResumeFailed, Err: err})
			continue
		}
		outcomes = append(outcomes, Outcome{Record: rec, Disposition: Resumed})
	}
	for _, rec := range paused.Entries() {
		paused.Remove(rec.PID)
	}
	return outcomes
}

// CleanStale removes records older than StaleAge regardless of PID
// state. The control loop runs it on its periodic cleanup cadence.
func CleanStale(paused *action.PausedTable, now time.Time) {
	for _, rec := range paused.Entries() {
		if now.Sub(rec.PausedAt) >= StaleAge {
			paused.Remove(rec.PID)
		}
	}
}
