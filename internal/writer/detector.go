package writer

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/radrob2/diskwatchdog/internal/procfs"
)

// MaxCandidates is how many ranked candidates the detector ever returns
// or feeds to the action executor.
const MaxCandidates = 10

// Detector runs tracer windows, cross-checks and filters the results,
// and maintains the persisted recently-seen-writers table.
type Detector struct {
	Device                string
	TracerCmd             string
	TracerByteThreshold   int64
	FallbackByteThreshold int64
	Protected             *regexp.Regexp
	Targets               *regexp.Regexp // nil => no allow-list, every comm eligible
	SmartMode             bool
	OwnerUID              *uint32 // nil => no user filter

	// selfPID and parentPID are excluded from every candidate set
	// regardless of comm, belt-and-suspenders against a racy rename of
	// the watchdog's own binary defeating the protected-comm regex.
	selfPID   int
	parentPID int

	Table *Table
}

// NewDetector resolves userName (if non-empty) to a UID and builds a
// Detector. An unknown userName is an error, since silently monitoring
// every user when one was explicitly requested would be a worse failure
// mode than refusing to start.
func NewDetector(device, tracerCmd string, tracerByteThreshold, fallbackByteThreshold int64, protected, targets *regexp.Regexp, smartMode bool, userName string, table *Table) (*Detector, error) {
	d := &Detector{
		Device:                device,
		TracerCmd:             tracerCmd,
		TracerByteThreshold:   tracerByteThreshold,
		FallbackByteThreshold: fallbackByteThreshold,
		Protected:             protected,
		Targets:               targets,
		SmartMode:             smartMode,
		selfPID:               os.Getpid(),
		parentPID:             os.Getppid(),
		Table:                 table,
	}
	if userName != "" {
		u, err := user.Lookup(userName)
		if err != nil {
			return nil, fmt.Errorf("writer: lookup user %q: %w", userName, err)
		}
		uid64, err := strconv.ParseUint(u.Uid, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("writer: user %q has non-numeric uid %q", userName, u.Uid)
		}
		uid32 := uint32(uid64)
		d.OwnerUID = &uid32
	}
	return d, nil
}

// accepts applies the self/parent-PID, PID-exists, owner, protected-set
// and target-allow-list cross-checks spec'd for every reported candidate.
func (d *Detector) accepts(pid int, comm string) bool {
	if pid == d.selfPID || pid == d.parentPID {
		return false
	}
	if !procfs.Exists(pid) {
		return false
	}
	if d.Protected != nil && d.Protected.MatchString(comm) {
		return false
	}
	if d.Targets != nil && !d.Targets.MatchString(comm) {
		return false
	}
	if d.OwnerUID != nil {
		uid, err := procfs.OwnerUID(pid)
		if err != nil || uid != *d.OwnerUID {
			return false
		}
	}
	return true
}

// Detect runs one tracer window, filters and upserts the results into
// the persisted table, and returns the byte-descending, PID-deduplicated,
// MaxCandidates-capped merge of the current window and the table.
func (d *Detector) Detect(ctx context.Context) ([]Candidate, error) {
	raw, err := Trace(ctx, d.TracerCmd, d.Device)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTracerWindow, err)
	}

	now := time.Now()
	seen := make(map[int]bool, len(raw))
	for _, c := range raw {
		if c.WindowBytes < d.TracerByteThreshold {
			continue
		}
		if !d.accepts(c.PID, c.Comm) {
			continue
		}
		c.LastSeen = now
		d.Table.Upsert(c)
		seen[c.PID] = true
	}

	// Smart mode supplements the tracer window with a direct /proc scan,
	// catching heavy writers whose bursts fall outside the tracer's
	// 1-second sampling window.
	if d.SmartMode {
		if fallback, err := FallbackScan(d.FallbackByteThreshold); err == nil {
			for _, c := range fallback {
				if seen[c.PID] || !d.accepts(c.PID, c.Comm) {
					continue
				}
				c.LastSeen = now
				d.Table.Upsert(c)
			}
		}
	}

	d.Table.Prune(now, func(pid int) (string, bool) {
		stat, err := procfs.ReadStat(pid)
		if err != nil {
			return "", false
		}
		return stat.Comm, true
	})

	return d.ranked(), nil
}

func (d *Detector) ranked() []Candidate {
	entries := d.Table.Entries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RankBytes() > entries[j].RankBytes()
	})
	if len(entries) > MaxCandidates {
		entries = entries[:MaxCandidates]
	}
	return entries
}
