package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radrob2/diskwatchdog/internal/action"
	"github.com/radrob2/diskwatchdog/internal/resume"
	"github.com/radrob2/diskwatchdog/internal/state"
)

func newResumeCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Manually resume all tracked paused processes still stopped",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResume(*g)
		},
	}
}

func runResume(g globals) error {
	l, err := g.load()
	if err != nil {
		return err
	}

	paused := action.NewPausedTable()
	if body, ok, _ := l.stateDir.Read(state.FilePausedPIDs); ok {
		paused.Unmarshal(body)
	}

	outcomes := resume.ManualResumeAll(paused)
	if err := l.stateDir.Write(state.FilePausedPIDs, paused.Marshal()); err != nil {
		return fmt.Errorf("[FATAL] %w", err)
	}

	for _, o := range outcomes {
		switch o.Disposition {
		case resume.Resumed:
			fmt.Printf("resumed pid=%d comm=%s\n", o.Record.PID, o.Record.Comm)
		case resume.ResumeFailed:
			fmt.Printf("failed to resume pid=%d comm=%s: %v\n", o.Record.PID, o.Record.Comm, o.Err)
		default:
			fmt.Printf("dropped stale record pid=%d comm=%s\n", o.Record.PID, o.Record.Comm)
		}
	}
	if len(outcomes) == 0 {
		fmt.Println("no paused processes tracked")
	}
	return nil
}
