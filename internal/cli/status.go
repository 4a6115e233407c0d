package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/radrob2/diskwatchdog/internal/action"
	"github.com/radrob2/diskwatchdog/internal/daemon"
	"github.com/radrob2/diskwatchdog/internal/level"
	"github.com/radrob2/diskwatchdog/internal/rate"
	"github.com/radrob2/diskwatchdog/internal/state"
	"github.com/radrob2/diskwatchdog/internal/writer"
	"github.com/radrob2/diskwatchdog/pkg/types"
)

func newStatusCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print current free space, level, thresholds, and tracked processes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(*g)
		},
	}
}

func runStatus(g globals) error {
	l, err := g.load()
	if err != nil {
		return err
	}

	freeGB := l.sample.FreeGB()
	freePct := 100 * float64(l.sample.FreeBytes) / float64(l.sample.TotalBytes)

	var estimator rate.Estimator
	if body, ok, _ := l.stateDir.Read(state.FileRate); ok {
		_ = estimator.UnmarshalPrev(body)
	}
	rateGBMin := estimator.Update(l.sample.FreeBytes, time.Now(), l.cfg.RateWarnGBPerMin)
	current := level.Classify(freeGB, rateGBMin, l.rt, l.cfg.RateEscalateMinutes)

	saved := level.OK
	if body, ok, _ := l.stateDir.Read(state.FileLevel); ok {
		if parsed, ok := level.Parse(body); ok {
			saved = parsed
		}
	}

	fmt.Printf("mount:          %s (%s)\n", l.cfg.Mount, l.sample.Device)
	fmt.Printf("disk size:      %s\n", types.Bytes(l.sample.TotalBytes).Humanized())
	fmt.Printf("free:           %s (%d GB, %.1f%%)\n", types.Bytes(l.sample.FreeBytes).Humanized(), freeGB, freePct)
	fmt.Printf("current level:  %s\n", current)
	fmt.Printf("saved level:    %s\n", saved)
	fmt.Printf("next interval:  %s\n", daemon.SleepFor(current))
	fmt.Printf("thresholds:     notice=%d warn=%d harsh=%d pause=%d stop=%d kill=%d resume=%d\n",
		l.rt.Notice, l.rt.Warn, l.rt.Harsh, l.rt.Pause, l.rt.Stop, l.rt.Kill, l.rt.Resume)

	paused := action.NewPausedTable()
	if body, ok, _ := l.stateDir.Read(state.FilePausedPIDs); ok {
		paused.Unmarshal(body)
	}
	fmt.Println("paused processes:")
	entries := paused.Entries()
	if len(entries) == 0 {
		fmt.Println("  (none)")
	}
	for _, p := range entries {
		fmt.Printf("  pid=%d comm=%s paused_at=%s strikes=%d\n", p.PID, p.Comm, p.PausedAt.Format("2006-01-02 15:04:05"), p.Strikes)
	}

	table := writer.NewTable()
	if body, ok, _ := l.stateDir.Read(state.FileKnownWriters); ok {
		table.Unmarshal(body)
	}
	writers := table.Entries()
	sort.Slice(writers, func(i, j int) bool { return writers[i].RankBytes() > writers[j].RankBytes() })
	if len(writers) > 5 {
		writers = writers[:5]
	}
	fmt.Println("top writers:")
	if len(writers) == 0 {
		fmt.Println("  (none observed)")
	}
	for _, w := range writers {
		fmt.Printf("  pid=%d comm=%s bytes=%s\n", w.PID, w.Comm, types.Bytes(uint64(w.RankBytes())).FormatWriter())
	}

	return nil
}
