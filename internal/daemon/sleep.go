package daemon

import (
	"time"

	"github.com/radrob2/diskwatchdog/internal/level"
)

// SleepFor is the adaptive sleep table: more severe levels are polled far
// more often than "ok". Exported so the "status" subcommand can report
// the daemon's next interval without running the loop itself.
func SleepFor(lvl level.Level) time.Duration {
	switch lvl {
	case level.OK:
		return 300 * time.Second
	case level.Notice:
		return 60 * time.Second
	case level.Warn:
		return 30 * time.Second
	case level.Harsh:
		return 10 * time.Second
	case level.Pause:
		return 3 * time.Second
	case level.Stop:
		return time.Second
	case level.Kill:
		return time.Second
	default:
		return 300 * time.Second
	}
}
