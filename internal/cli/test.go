package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/radrob2/diskwatchdog/internal/level"
	"github.com/radrob2/diskwatchdog/internal/notify"
)

func newTestCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "test [level]",
		Short: "Drive the notification channels for a given level without acting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(*g, args[0])
		},
	}
}

func runTest(g globals, levelName string) error {
	lvl, ok := level.Parse(levelName)
	if !ok {
		return fmt.Errorf("[FATAL] unknown level %q", levelName)
	}

	l, err := g.load()
	if err != nil {
		return err
	}

	ev := notify.Event{
		Level:   lvl.String(),
		Message: fmt.Sprintf("test notification for level %s", lvl),
		Mount:   l.cfg.Mount,
		FreeGB:  l.sample.FreeGB(),
		At:      time.Now(),
	}

	channels := notify.BuildChannels(l.cfg)
	var failures int
	for _, ch := range channels {
		if err := ch.Send(ev); err != nil {
			fmt.Printf("%s: FAILED: %v\n", ch.Name(), err)
			failures++
			continue
		}
		fmt.Printf("%s: sent\n", ch.Name())
	}
	if len(channels) == 0 {
		fmt.Println("no notification channels enabled")
	} else if failures == len(channels) {
		return fmt.Errorf("all notification channels failed")
	}
	return nil
}
