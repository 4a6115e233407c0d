package writer

import (
	"os"
	"strconv"
	"time"

	"github.com/radrob2/diskwatchdog/internal/procfs"
)

// FallbackScan enumerates every running PID's /proc/<pid>/io and returns
// candidates whose cumulative write_bytes is at least thresholdBytes.
// Detect calls it in smart mode to supplement each tracer window.
func FallbackScan(thresholdBytes int64) ([]Candidate, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var out []Candidate
	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		_, writeBytes, err := procfs.IOCounters(pid)
		if err != nil || int64(writeBytes) < thresholdBytes {
			continue
		}
		stat, err := procfs.ReadStat(pid)
		if err != nil {
			continue
		}
		out = append(out, Candidate{
			PID:             pid,
			Comm:            stat.Comm,
			CumulativeBytes: int64(writeBytes),
			FirstSeen:       now,
			LastSeen:        now,
		})
	}
	return out, nil
}
