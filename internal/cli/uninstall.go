package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func newUninstallCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Stop and disable the supervisor unit, then remove the binary and unit file",
		Long: `uninstall stops and disables the systemd unit and removes the binary
and unit file. Config, logs, and persisted state are left in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUninstall()
		},
	}
}

func runUninstall() error {
	if path, err := exec.LookPath("systemctl"); err == nil {
		_ = exec.Command(path, "stop", unitName).Run()
		_ = exec.Command(path, "disable", unitName).Run()
	}

	if err := os.Remove(unitPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("[FATAL] remove unit file: %w", err)
	}

	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("[FATAL] locate own binary: %w", err)
	}
	if err := os.Remove(self); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("[FATAL] remove binary: %w", err)
	}

	fmt.Println("uninstalled: unit stopped/disabled, binary and unit file removed")
	fmt.Println("config, logs, and state preserved")
	return nil
}
