package cli

import (
	"fmt"
	"log/slog"

	"github.com/radrob2/diskwatchdog/internal/config"
	"github.com/radrob2/diskwatchdog/internal/logx"
	"github.com/radrob2/diskwatchdog/internal/sample"
	"github.com/radrob2/diskwatchdog/internal/state"
)

// globals holds the persistent flag values shared by every subcommand.
type globals struct {
	configPath string
	mount      string
	user       string
	dryRun     bool
}

// loaded bundles everything a subcommand needs after config load,
// threshold resolution, and state-dir setup.
type loaded struct {
	cfg      config.Config
	rt       config.ResolvedThresholds
	stateDir *state.Dir
	sample   sample.Sample
	logger   *slog.Logger
}

// load reads and resolves the full configuration, applying the global
// flag overrides, and opens the state directory and logger. Every
// subcommand except "stop", "uninstall", "help" and "--version" goes
// through this.
func (g globals) load() (loaded, error) {
	cfg, warning, err := config.Load(g.configPath)
	if err != nil {
		return loaded{}, fmt.Errorf("[FATAL] %w", err)
	}
	if g.mount != "" {
		cfg.Mount = g.mount
	}
	if g.user != "" {
		cfg.User = g.user
	}
	if g.dryRun {
		cfg.DryRun = true
	}

	logger, err := logx.New(DefaultLogFile, cfg.MaxLogSizeBytes, slog.LevelInfo)
	if err != nil {
		return loaded{}, fmt.Errorf("[FATAL] open log file: %w", err)
	}
	if warning != "" {
		logger.Warn(warning)
	}

	s, err := sample.Read(cfg.Mount)
	if err != nil {
		return loaded{}, fmt.Errorf("[FATAL] %w", err)
	}

	rt, err := config.Resolve(cfg, int(s.TotalBytes>>30))
	if err != nil {
		return loaded{}, fmt.Errorf("[FATAL] %w", err)
	}

	stateDir, err := state.Open(DefaultStateDir)
	if err != nil {
		return loaded{}, fmt.Errorf("[FATAL] %w", err)
	}

	return loaded{cfg: cfg, rt: rt, stateDir: stateDir, sample: s, logger: logger}, nil
}
