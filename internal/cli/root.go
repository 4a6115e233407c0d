package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/radrob2/diskwatchdog/internal/buildinfo"
)

// NewRoot builds the diskwatchdog command tree.
func NewRoot() *cobra.Command {
	var g globals
	var showVersion bool

	root := &cobra.Command{
		Use:   "diskwatchdog",
		Short: "Adaptive disk-space watchdog daemon",
		Long: `diskwatchdog monitors a mount's free space, escalates through graduated
severity levels as space runs low, and signals the heaviest writers to
protect the disk from filling completely. It runs as a single
long-running daemon ("run") plus a handful of subcommands that inspect
or act on its persisted state.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Println(buildinfo.Version())
				return nil
			}
			return runRun(cmd, g)
		},
	}

	root.PersistentFlags().StringVar(&g.configPath, "config", DefaultConfigFile, "path to the config file")
	root.PersistentFlags().StringVar(&g.mount, "mount", "", "override the configured mount point")
	root.PersistentFlags().StringVar(&g.user, "user", "", "override the configured user filter")
	root.PersistentFlags().BoolVar(&g.dryRun, "dry-run", false, "log actions instead of signaling processes")
	root.Flags().BoolVar(&showVersion, "version", false, "print the version and exit")
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\nRun '%s --help' for usage", err, c.CommandPath())
	})

	root.AddCommand(
		newRunCmd(&g),
		newStopCmd(&g),
		newStatusCmd(&g),
		newCheckCmd(&g),
		newWritersCmd(&g),
		newResumeCmd(&g),
		newTestCmd(&g),
		newUninstallCmd(&g),
	)

	return root
}

// Execute runs the root command and maps failures to the documented
// exit codes: 0 success, 1 any error (including an unknown flag, which
// cobra already reports as an error before RunE ever runs).
func Execute() {
	root := NewRoot()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
