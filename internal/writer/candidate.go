package writer

import "time"

// Candidate is one process observed writing to the monitored device.
//
// WindowBytes is what the tracer observed during its own sampling
// window; CumulativeBytes is the running total reported by
// /proc/<pid>/io when the fallback path supplied (or refreshed) this
// entry. The two are never summed or normalized into one figure — a
// window measurement and a lifetime counter answer different questions,
// and conflating them would make the ranking meaningless across a mix of
// tracer and fallback observations.
type Candidate struct {
	PID             int
	Comm            string
	WindowBytes     int64
	CumulativeBytes int64
	FirstSeen       time.Time
	LastSeen        time.Time
}

// RankBytes is the figure used to sort and cap candidates: the tracer
// window reading when present, otherwise the fallback's cumulative
// counter.
func (c Candidate) RankBytes() int64 {
	if c.WindowBytes > 0 {
		return c.WindowBytes
	}
	return c.CumulativeBytes
}
