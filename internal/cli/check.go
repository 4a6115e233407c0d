package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/radrob2/diskwatchdog/internal/level"
	"github.com/radrob2/diskwatchdog/internal/rate"
	"github.com/radrob2/diskwatchdog/internal/state"
)

func newCheckCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compute the current level once; exit 1 if it's harsh or worse",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(*g)
		},
	}
}

func runCheck(g globals) error {
	l, err := g.load()
	if err != nil {
		return err
	}

	var estimator rate.Estimator
	if body, ok, _ := l.stateDir.Read(state.FileRate); ok {
		_ = estimator.UnmarshalPrev(body)
	}
	rateGBMin := estimator.Update(l.sample.FreeBytes, time.Now(), l.cfg.RateWarnGBPerMin)
	lvl := level.Classify(l.sample.FreeGB(), rateGBMin, l.rt, l.cfg.RateEscalateMinutes)

	fmt.Println(lvl)
	switch lvl {
	case level.OK, level.Notice, level.Warn:
		return nil
	default:
		os.Exit(1)
		return nil
	}
}
