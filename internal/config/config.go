package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended (upper-cased key) to look up an override for any
// config key, e.g. DISK_WATCHDOG_MOUNT overrides "mount".
const EnvPrefix = "DISK_WATCHDOG_"

// Threshold is either an explicit GB value or "auto", deferred to the
// resolver once the disk size is known.
type Threshold struct {
	Auto bool
	GB   int
}

func parseThreshold(raw string) (Threshold, error) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "auto") || raw == "" {
		return Threshold{Auto: true}, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return Threshold{}, fmt.Errorf("%w: %q must be \"auto\" or a positive integer", ErrInvalidValue, raw)
	}
	return Threshold{GB: v}, nil
}

// Config is the fully typed, validated (but not yet disk-size-resolved)
// configuration.
type Config struct {
	Mount string
	User  string // empty => all users

	Notice, Warn, Harsh, Pause, Stop, Kill Threshold

	AutoResume       bool
	ResumeThreshold  Threshold
	ResumeCooldown   int // seconds
	ResumeMaxStrikes int

	RateWarnGBPerMin    int
	RateEscalateMinutes int

	SmartMode bool

	TracerCmd             string
	TracerByteThreshold   int64
	FallbackByteThreshold int64

	TargetPatterns    []string
	ProtectedPatterns []string

	NotifyDesktopEnabled   bool
	NotifyBroadcastEnabled bool
	NotifyEmailEnabled     bool
	NotifyEmailTo          string
	NotifyEmailFrom        string
	NotifyEmailSMTPHost    string
	NotifyEmailSMTPPort    int
	NotifyWebhookEnabled   bool
	NotifyWebhookURL       string
	NotifyCooldownSec      int

	DryRun        bool
	MaxLogSizeBytes int64

	// HeartbeatInterval is derived from the supervisor-provided
	// WATCHDOG_USEC env var, not from the config file. Zero means no
	// supervisor heartbeat is expected.
	HeartbeatInterval int // seconds
}

// Defaults returns the built-in defaults, before file/env overrides.
func Defaults() Config {
	return Config{
		Mount:                 "/",
		Notice:                Threshold{Auto: true},
		Warn:                  Threshold{Auto: true},
		Harsh:                 Threshold{Auto: true},
		Pause:                 Threshold{Auto: true},
		Stop:                  Threshold{Auto: true},
		Kill:                  Threshold{Auto: true},
		AutoResume:            true,
		ResumeThreshold:       Threshold{Auto: true},
		ResumeCooldown:        300,
		ResumeMaxStrikes:      3,
		RateWarnGBPerMin:      2,
		RateEscalateMinutes:   10,
		SmartMode:             true,
		TracerCmd:             "biosnoop",
		TracerByteThreshold:   1 << 20,  // 1 MB
		FallbackByteThreshold: 10 << 20, // 10 MB
		NotifyDesktopEnabled:  true,
		NotifyEmailSMTPPort:   25,
		NotifyCooldownSec:     300,
		MaxLogSizeBytes:       10 << 20,
	}
}

// Load reads the key=value config file at path (via godotenv's parser,
// which already understands "# comments" and blank lines), applies
// DISK_WATCHDOG_<KEY> environment overrides, and returns a validated
// Config. A world-writable file produces a non-fatal warning string
// (empty when there is nothing to warn about).
func Load(path string) (Config, string, error) {
	cfg := Defaults()

	raw := map[string]string{}
	var warning string

	if path != "" {
		if fi, err := os.Stat(path); err == nil {
			if fi.Mode().Perm()&0o002 != 0 {
				warning = fmt.Sprintf("config file %s is world-writable", path)
			}
		}
		m, err := godotenv.Read(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, "", fmt.Errorf("config: read %s: %w", path, err)
			}
		} else {
			raw = m
		}
	}

	get := func(key string) (string, bool) {
		if v := os.Getenv(EnvPrefix + strings.ToUpper(key)); v != "" {
			return v, true
		}
		v, ok := raw[key]
		return v, ok
	}

	if v, ok := get("mount"); ok {
		cfg.Mount = v
	}
	if cfg.Mount == "" {
		return Config{}, "", ErrMountRequired
	}
	if v, ok := get("user"); ok {
		cfg.User = v
	}

	thresholds := []struct {
		key string
		dst *Threshold
	}{
		{"notice_threshold_gb", &cfg.Notice},
		{"warn_threshold_gb", &cfg.Warn},
		{"harsh_threshold_gb", &cfg.Harsh},
		{"pause_threshold_gb", &cfg.Pause},
		{"stop_threshold_gb", &cfg.Stop},
		{"kill_threshold_gb", &cfg.Kill},
		{"resume_threshold_gb", &cfg.ResumeThreshold},
	}
	for _, t := range thresholds {
		if v, ok := get(t.key); ok {
			th, err := parseThreshold(v)
			if err != nil {
				return Config{}, "", fmt.Errorf("config: %s: %w", t.key, err)
			}
			*t.dst = th
		}
	}

	boolKeys := []struct {
		key string
		dst *bool
	}{
		{"auto_resume", &cfg.AutoResume},
		{"smart_mode", &cfg.SmartMode},
		{"notify_desktop_enabled", &cfg.NotifyDesktopEnabled},
		{"notify_broadcast_enabled", &cfg.NotifyBroadcastEnabled},
		{"notify_email_enabled", &cfg.NotifyEmailEnabled},
		{"notify_webhook_enabled", &cfg.NotifyWebhookEnabled},
		{"dry_run", &cfg.DryRun},
	}
	for _, b := range boolKeys {
		if v, ok := get(b.key); ok {
			parsed, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return Config{}, "", fmt.Errorf("%w: %s=%q must be a boolean", ErrInvalidValue, b.key, v)
			}
			*b.dst = parsed
		}
	}

	intKeys := []struct {
		key string
		dst *int
	}{
		{"resume_cooldown_sec", &cfg.ResumeCooldown},
		{"resume_max_strikes", &cfg.ResumeMaxStrikes},
		{"rate_warn_gb_per_min", &cfg.RateWarnGBPerMin},
		{"rate_escalate_minutes", &cfg.RateEscalateMinutes},
		{"notify_email_smtp_port", &cfg.NotifyEmailSMTPPort},
		{"notify_cooldown_sec", &cfg.NotifyCooldownSec},
	}
	for _, n := range intKeys {
		if v, ok := get(n.key); ok {
			parsed, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return Config{}, "", fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidValue, n.key, v)
			}
			*n.dst = parsed
		}
	}

	int64Keys := []struct {
		key string
		dst *int64
	}{
		{"tracer_byte_threshold", &cfg.TracerByteThreshold},
		{"fallback_byte_threshold", &cfg.FallbackByteThreshold},
		{"max_log_size_bytes", &cfg.MaxLogSizeBytes},
	}
	for _, n := range int64Keys {
		if v, ok := get(n.key); ok {
			parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return Config{}, "", fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidValue, n.key, v)
			}
			*n.dst = parsed
		}
	}

	strKeys := []struct {
		key string
		dst *string
	}{
		{"tracer_cmd", &cfg.TracerCmd},
		{"notify_email_to", &cfg.NotifyEmailTo},
		{"notify_email_from", &cfg.NotifyEmailFrom},
		{"notify_email_smtp_host", &cfg.NotifyEmailSMTPHost},
		{"notify_webhook_url", &cfg.NotifyWebhookURL},
	}
	for _, s := range strKeys {
		if v, ok := get(s.key); ok {
			*s.dst = v
		}
	}

	if v, ok := get("target_patterns"); ok {
		cfg.TargetPatterns = splitPatterns(v)
	}
	if v, ok := get("protected_patterns"); ok {
		cfg.ProtectedPatterns = splitPatterns(v)
	}

	if v := os.Getenv("WATCHDOG_USEC"); v != "" {
		if usec, err := strconv.ParseInt(v, 10, 64); err == nil && usec > 0 {
			cfg.HeartbeatInterval = int(usec / 1_000_000)
		}
	}

	return cfg, warning, nil
}

func splitPatterns(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
