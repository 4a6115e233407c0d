package action

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StrikeResetWindow is how long must pass since a (pid, comm)'s previous
// pause before a new pause resets its strike count to 1 instead of
// incrementing it.
const StrikeResetWindow = time.Hour

// PausedRecord tracks one process the watchdog has signaled to stop.
type PausedRecord struct {
	PID      int
	Comm     string
	PausedAt time.Time
	Strikes  int
}

// PausedTable is the persisted "paused_pids" table, keyed by PID.
type PausedTable struct {
	entries map[int]PausedRecord
}

// NewPausedTable returns an empty table.
func NewPausedTable() *PausedTable {
	return &PausedTable{entries: make(map[int]PausedRecord)}
}

// Pause records pid/comm as paused at now, incrementing the strike count
// if the same (pid, comm) was already paused within StrikeResetWindow, or
// starting a fresh count of 1 otherwise.
func (t *PausedTable) Pause(pid int, comm string, now time.Time) PausedRecord {
	strikes := 1
	if prev, ok := t.entries[pid]; ok && prev.Comm == comm && now.Sub(prev.PausedAt) < StrikeResetWindow {
		strikes = prev.Strikes + 1
	}
	rec := PausedRecord{PID: pid, Comm: comm, PausedAt: now, Strikes: strikes}
	t.entries[pid] = rec
	return rec
}

// Remove drops a record, e.g. after a successful resume.
func (t *PausedTable) Remove(pid int) {
	delete(t.entries, pid)
}

// Get returns the record for pid, if any.
func (t *PausedTable) Get(pid int) (PausedRecord, bool) {
	r, ok := t.entries[pid]
	return r, ok
}

// Entries returns all tracked records in unspecified order.
func (t *PausedTable) Entries() []PausedRecord {
	out := make([]PausedRecord, 0, len(t.entries))
	for _, r := range t.entries {
		out = append(out, r)
	}
	return out
}

// Marshal renders the persisted "paused_pids" file body.
func (t *PausedTable) Marshal() string {
	var b strings.Builder
	for _, r := range t.Entries() {
		fmt.Fprintf(&b, "%d\t%s\t%d\t%d\n", r.PID, r.Comm, r.PausedAt.Unix(), r.Strikes)
	}
	return b.String()
}

// Unmarshal replaces the table's contents from a persisted "paused_pids"
// file body, skipping malformed lines.
func (t *PausedTable) Unmarshal(body string) {
	t.entries = make(map[int]PausedRecord)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			continue
		}
		pid, err1 := strconv.Atoi(fields[0])
		pausedSec, err2 := strconv.ParseInt(fields[2], 10, 64)
		strikes, err3 := strconv.Atoi(fields[3])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		t.entries[pid] = PausedRecord{
			PID:      pid,
			Comm:     fields[1],
			PausedAt: time.Unix(pausedSec, 0),
			Strikes:  strikes,
		}
	}
}
