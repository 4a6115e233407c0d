package writer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TTL is how long a table entry survives without being re-observed
// before it is pruned even if the PID still exists under the same comm.
// Not specified numerically by the design this follows beyond "at least
// every 60 seconds" for the prune cadence; five minutes is one
// control-loop iteration at the "ok" level's 300 s sleep interval and
// many iterations at the more severe levels before a writer that is no
// longer re-observed drops off the table.
const TTL = 5 * time.Minute

// Table is the persisted recently-seen-writers table, keyed by PID.
type Table struct {
	entries map[int]Candidate
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[int]Candidate)}
}

// Upsert inserts or updates c, preserving the original FirstSeen for an
// already-tracked PID.
func (t *Table) Upsert(c Candidate) {
	if existing, ok := t.entries[c.PID]; ok && !existing.FirstSeen.IsZero() {
		c.FirstSeen = existing.FirstSeen
	}
	t.entries[c.PID] = c
}

// Prune drops entries whose PID no longer exists, whose comm no longer
// matches (comm returns ""), or that are older than TTL. exists is
// expected to be procfs-backed; it is injected so this stays testable
// without a real /proc.
func (t *Table) Prune(now time.Time, exists func(pid int) (comm string, ok bool)) {
	for pid, c := range t.entries {
		comm, ok := exists(pid)
		if !ok || comm != c.Comm || now.Sub(c.LastSeen) > TTL {
			delete(t.entries, pid)
		}
	}
}

// Entries returns all tracked candidates in unspecified order.
func (t *Table) Entries() []Candidate {
	out := make([]Candidate, 0, len(t.entries))
	for _, c := range t.entries {
		out = append(out, c)
	}
	return out
}

// Marshal renders the table as the persisted "known_writers" file body:
// one TAB-separated "pid\tcomm\tbytes\tfirst_seen\tlast_seen" line per
// entry. bytes is RankBytes(), the single figure the persisted format
// has room for.
func (t *Table) Marshal() string {
	var b strings.Builder
	for _, c := range t.Entries() {
		fmt.Fprintf(&b, "%d\t%s\t%d\t%d\t%d\n", c.PID, c.Comm, c.RankBytes(), c.FirstSeen.Unix(), c.LastSeen.Unix())
	}
	return b.String()
}

// Unmarshal replaces the table's contents by parsing a "known_writers"
// file body. Malformed lines are skipped rather than failing the whole
// load, since a corrupt single line shouldn't lose every other tracked
// writer.
func (t *Table) Unmarshal(body string) {
	t.entries = make(map[int]Candidate)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 5 {
			continue
		}
		pid, err1 := strconv.Atoi(fields[0])
		bytesN, err2 := strconv.ParseInt(fields[2], 10, 64)
		firstSec, err3 := strconv.ParseInt(fields[3], 10, 64)
		lastSec, err4 := strconv.ParseInt(fields[4], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		t.entries[pid] = Candidate{
			PID:         pid,
			Comm:        fields[1],
			WindowBytes: bytesN,
			FirstSeen:   time.Unix(firstSec, 0),
			LastSeen:    time.Unix(lastSec, 0),
		}
	}
}
