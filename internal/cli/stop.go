package cli

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/radrob2/diskwatchdog/internal/procfs"
	"github.com/radrob2/diskwatchdog/internal/state"
)

func newStopCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Signal the running daemon to shut down",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStop()
		},
	}
}

func runStop() error {
	pid, err := state.ReadPID(DefaultPIDFile)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("not running (no PID file)")
			return nil
		}
		return fmt.Errorf("[FATAL] %w", err)
	}

	if !procfs.Exists(pid) {
		fmt.Println("removing stale PID file")
		return os.Remove(DefaultPIDFile)
	}

	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		return fmt.Errorf("[FATAL] signal pid %d: %w", pid, err)
	}
	fmt.Printf("sent SIGTERM to pid %d\n", pid)
	return nil
}
