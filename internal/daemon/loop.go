//go:build linux

package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/radrob2/diskwatchdog/internal/action"
	"github.com/radrob2/diskwatchdog/internal/config"
	"github.com/radrob2/diskwatchdog/internal/level"
	"github.com/radrob2/diskwatchdog/internal/logx"
	"github.com/radrob2/diskwatchdog/internal/notify"
	"github.com/radrob2/diskwatchdog/internal/procfs"
	"github.com/radrob2/diskwatchdog/internal/rate"
	"github.com/radrob2/diskwatchdog/internal/resume"
	"github.com/radrob2/diskwatchdog/internal/sample"
	"github.com/radrob2/diskwatchdog/internal/state"
	"github.com/radrob2/diskwatchdog/internal/writer"
)

// pruneEvery is the minimum cadence the writers table is pruned at,
// regardless of how short the adaptive sleep interval gets.
const pruneEvery = 60 * time.Second

// Daemon runs the control loop described in package daemon's doc comment.
type Daemon struct {
	ConfigPath string
	Cfg        config.Config
	RT         config.ResolvedThresholds

	Logger    *slog.Logger
	StateDir  *state.Dir
	PIDFile   *state.PIDFile
	Heartbeat *Heartbeat

	Estimator    *rate.Estimator
	Detector     *writer.Detector
	Executor     *action.Executor
	PausedTable  *action.PausedTable
	Dispatcher   *notify.Dispatcher

	currentLevel level.Level
	lastPrune    time.Time

	reloadCh chan os.Signal
	stopCh   chan os.Signal
}

// New wires every component from cfg and the already-resolved thresholds
// rt. It fails fast if the tracer command can't be found.
func New(cfg config.Config, configPath string, rt config.ResolvedThresholds, logger *slog.Logger, stateDir *state.Dir, pidFile *state.PIDFile, selfComm string) (*Daemon, error) {
	if !writer.CheckAvailable(cfg.TracerCmd) {
		return nil, fmt.Errorf("%w: %s", ErrTracerUnavailable, cfg.TracerCmd)
	}

	protected, err := writer.CompileProtected(selfComm, cfg.ProtectedPatterns)
	if err != nil {
		return nil, fmt.Errorf("daemon: compile protected pattern: %w", err)
	}
	targets, err := writer.CompileTargets(cfg.TargetPatterns)
	if err != nil {
		return nil, fmt.Errorf("daemon: compile target pattern: %w", err)
	}

	s, err := sample.Read(cfg.Mount)
	if err != nil {
		return nil, fmt.Errorf("daemon: initial sample: %w", err)
	}

	writersTable := writer.NewTable()
	if body, ok, err := stateDir.Read(state.FileKnownWriters); err == nil && ok {
		writersTable.Unmarshal(body)
	}

	detector, err := writer.NewDetector(s.Device, cfg.TracerCmd, cfg.TracerByteThreshold, cfg.FallbackByteThreshold, protected, targets, cfg.SmartMode, cfg.User, writersTable)
	if err != nil {
		return nil, err
	}

	pausedTable := action.NewPausedTable()
	if body, ok, err := stateDir.Read(state.FilePausedPIDs); err == nil && ok {
		pausedTable.Unmarshal(body)
	}

	estimator := rate.New()
	if body, ok, err := stateDir.Read(state.FileRate); err == nil && ok {
		_ = estimator.UnmarshalPrev(body)
	}

	currentLevel := level.OK
	if body, ok, err := stateDir.Read(state.FileLevel); err == nil && ok {
		if l, ok := level.Parse(body); ok {
			currentLevel = l
		}
	}

	channels := notify.BuildChannels(cfg)
	dispatcher := &notify.Dispatcher{
		Channels:    channels,
		Logger:      logger,
		StateDir:    stateDir,
		CooldownSec: cfg.NotifyCooldownSec,
	}

	d := &Daemon{
		ConfigPath:   configPath,
		Cfg:          cfg,
		RT:           rt,
		Logger:       logger,
		StateDir:     stateDir,
		PIDFile:      pidFile,
		Heartbeat:    NewHeartbeat(cfg.HeartbeatInterval),
		Estimator:    estimator,
		Detector:     detector,
		Executor:     &action.Executor{Logger: logger, DryRun: cfg.DryRun, Paused: pausedTable},
		PausedTable:  pausedTable,
		Dispatcher:   dispatcher,
		currentLevel: currentLevel,
		reloadCh:     make(chan os.Signal, 1),
		stopCh:       make(chan os.Signal, 1),
	}
	return d, nil
}

// Run executes the control loop until ctx is canceled or a termination
// signal arrives. It releases the PID file before returning.
func (d *Daemon) Run(ctx context.Context) error {
	signal.Notify(d.reloadCh, syscall.SIGHUP)
	signal.Notify(d.stopCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(d.reloadCh)
	defer signal.Stop(d.stopCh)
	defer d.PIDFile.Release()

	for {
		interval := d.iterate()

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-d.stopCh:
			timer.Stop()
			d.Logger.Info("shutdown requested", logx.Tag("INFO"))
			return nil
		case <-d.reloadCh:
			timer.Stop()
			d.reload()
		case <-timer.C:
		}
	}
}

func (d *Daemon) reload() {
	cfg, warning, err := config.Load(d.ConfigPath)
	if err != nil {
		d.Logger.Error("reload: config load failed, keeping previous config", logx.Tag("FATAL"), "err", err)
		return
	}
	if warning != "" {
		d.Logger.Warn(warning)
	}

	s, err := sample.Read(cfg.Mount)
	if err != nil {
		d.Logger.Error("reload: sample failed, keeping previous thresholds", "err", err)
		return
	}
	rt, err := config.Resolve(cfg, int(s.TotalBytes>>30))
	if err != nil {
		d.Logger.Error("reload: threshold validation failed, keeping previous thresholds", "err", err)
		return
	}

	d.Cfg = cfg
	d.RT = rt
	d.Logger.Info("config reloaded", logx.Tag("INFO"))
}

// iterate runs one sample -> rate -> classify -> resume-check ->
// possibly-act -> notify -> persist-state pass and returns how long to
// sleep before the next one. A sampling failure is iteration-transient:
// it logs and backs off 60s rather than acting on stale data.
func (d *Daemon) iterate() time.Duration {
	now := time.Now()

	s, err := sample.Read(d.Cfg.Mount)
	if err != nil {
		d.Logger.Error("sample failed", "err", err)
		return 60 * time.Second
	}

	rateGBMin := d.Estimator.Update(s.FreeBytes, now, d.Cfg.RateWarnGBPerMin)
	newLevel := level.Classify(s.FreeGB(), rateGBMin, d.RT, d.Cfg.RateEscalateMinutes)

	if resume.ShouldAttempt(d.Cfg.AutoResume, s.FreeGB(), d.RT.Resume) {
		outcomes := resume.Attempt(d.PausedTable, now, time.Duration(d.Cfg.ResumeCooldown)*time.Second, d.Cfg.ResumeMaxStrikes)
		if resumedAny(outcomes) {
			d.Dispatcher.Dispatch(notify.Event{Level: "resume", Message: "auto-resumed previously paused processes", Mount: d.Cfg.Mount, FreeGB: s.FreeGB(), At: now})
		}
	}

	prevLevel := d.currentLevel
	if newLevel != prevLevel {
		d.transition(prevLevel, newLevel, s, rateGBMin, now)
		d.currentLevel = newLevel
	}

	if now.Sub(d.lastPrune) >= pruneEvery {
		resume.CleanStale(d.PausedTable, now)
		d.Detector.Table.Prune(now, func(pid int) (string, bool) {
			stat, err := procfs.ReadStat(pid)
			if err != nil {
				return "", false
			}
			return stat.Comm, true
		})
		d.lastPrune = now
	}

	d.persist(s, now)
	return SleepFor(d.currentLevel)
}

func resumedAny(outcomes []resume.Outcome) bool {
	for _, o := range outcomes {
		if o.Disposition == resume.Resumed {
			return true
		}
	}
	return false
}

func (d *Daemon) transition(prev, next level.Level, s sample.Sample, rateGBMin int, now time.Time) {
	if next < prev {
		if next == level.OK {
			d.Logger.Info("recovered to ok", logx.Tag("INFO"), "free_gb", s.FreeGB())
			_ = d.StateDir.ClearNotifyCooldowns([]string{"warn", "harsh", "pause", "stop", "kill"})
			d.Dispatcher.Dispatch(notify.Event{Level: "ok", Message: "disk space recovered", Mount: d.Cfg.Mount, FreeGB: s.FreeGB(), At: now})
		}
		return
	}

	ctx := context.Background()
	switch next {
	case level.Kill:
		candidates, _ := d.Detector.Detect(ctx)
		d.Executor.Execute(level.Kill, candidates, now)
		d.Dispatcher.Dispatch(notify.Event{Level: "kill", Message: "free space critical, killing top writers", Mount: d.Cfg.Mount, FreeGB: s.FreeGB(), RateGBMin: rateGBMin, TopWriters: snippet(candidates), At: now})
	case level.Stop:
		candidates, _ := d.Detector.Detect(ctx)
		d.Executor.Execute(level.Stop, candidates, now)
		d.Dispatcher.Dispatch(notify.Event{Level: "stop", Message: "free space very low, terminating top writers", Mount: d.Cfg.Mount, FreeGB: s.FreeGB(), RateGBMin: rateGBMin, TopWriters: snippet(candidates), At: now})
	case level.Pause:
		candidates, _ := d.Detector.Detect(ctx)
		d.Executor.Execute(level.Pause, candidates, now)
		d.Dispatcher.Dispatch(notify.Event{Level: "pause", Message: "free space low, pausing top writers", Mount: d.Cfg.Mount, FreeGB: s.FreeGB(), RateGBMin: rateGBMin, TopWriters: snippet(candidates), At: now})
	case level.Harsh:
		candidates, _ := d.Detector.Detect(ctx)
		d.Logger.Warn("entering harsh", logx.Tag("CRITICAL"), "free_gb", s.FreeGB())
		d.Dispatcher.Dispatch(notify.Event{Level: "harsh", Message: "free space critically low", Mount: d.Cfg.Mount, FreeGB: s.FreeGB(), RateGBMin: rateGBMin, TopWriters: snippet(candidates), At: now})
	case level.Warn:
		d.Logger.Warn("entering warn", logx.Tag("WARNING"), "free_gb", s.FreeGB())
		d.Dispatcher.Dispatch(notify.Event{Level: "warn", Message: "free space running low", Mount: d.Cfg.Mount, FreeGB: s.FreeGB(), RateGBMin: rateGBMin, At: now})
	case level.Notice:
		d.Logger.Info("entering notice", logx.Tag("NOTICE"), "free_gb", s.FreeGB())
	}
}

func snippet(candidates []writer.Candidate) []string {
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].RankBytes() > candidates[j].RankBytes() })
	n := 5
	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]string, 0, n)
	for _, c := range candidates[:n] {
		out = append(out, fmt.Sprintf("%s (%d)", c.Comm, c.PID))
	}
	return out
}

func (d *Daemon) persist(s sample.Sample, now time.Time) {
	if err := d.StateDir.Write(state.FileLevel, d.currentLevel.String()); err != nil {
		d.Logger.Error("persist level failed", "err", err)
	}
	if body, ok := d.Estimator.MarshalPrev(); ok {
		if err := d.StateDir.Write(state.FileRate, body); err != nil {
			d.Logger.Error("persist rate failed", "err", err)
		}
	}
	if err := d.StateDir.Write(state.FileKnownWriters, d.Detector.Table.Marshal()); err != nil {
		d.Logger.Error("persist known_writers failed", "err", err)
	}
	if err := d.StateDir.Write(state.FilePausedPIDs, d.PausedTable.Marshal()); err != nil {
		d.Logger.Error("persist paused_pids failed", "err", err)
	}
	d.Heartbeat.Send()
}
