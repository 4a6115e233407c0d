package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/radrob2/diskwatchdog/internal/daemon"
	"github.com/radrob2/diskwatchdog/internal/logx"
	"github.com/radrob2/diskwatchdog/internal/procfs"
	"github.com/radrob2/diskwatchdog/internal/state"
)

func newRunCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the control loop (default when no subcommand is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, *g)
		},
	}
}

func runRun(cmd *cobra.Command, g globals) error {
	l, err := g.load()
	if err != nil {
		return err
	}

	pidFile, err := state.AcquirePIDFile(DefaultPIDFile)
	if err != nil {
		return fmt.Errorf("[FATAL] %w", err)
	}

	selfComm := "diskwatchdog"
	if stat, err := procfs.ReadStat(os.Getpid()); err == nil {
		selfComm = stat.Comm
	}

	d, err := daemon.New(l.cfg, g.configPath, l.rt, l.logger, l.stateDir, pidFile, selfComm)
	if err != nil {
		_ = pidFile.Release()
		l.logger.Error(err.Error(), logx.Tag("FATAL"))
		return fmt.Errorf("[FATAL] %w", err)
	}

	l.logger.Info("daemon started", logx.Tag("INFO"), "mount", l.cfg.Mount, "dry_run", l.cfg.DryRun)
	return d.Run(context.Background())
}
