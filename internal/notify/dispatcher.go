package notify

import (
	"log/slog"
	"time"

	"github.com/radrob2/diskwatchdog/internal/state"
)

// Channel is one notification transport.
type Channel interface {
	Name() string
	Send(Event) error
}

// gatedLevels are the levels whose alerts are subject to the per-level
// cooldown; pause/stop/kill are always emitted regardless of cooldown.
var gatedLevels = map[string]bool{"warn": true, "harsh": true}

// Dispatcher fans an Event out to every enabled channel, independently
// and best-effort.
type Dispatcher struct {
	Channels    []Channel
	Logger      *slog.Logger
	StateDir    *state.Dir
	CooldownSec int
}

// Dispatch sends ev to every channel, skipping entirely (no channel
// calls, no cooldown write) if ev.Level is cooldown-gated and the
// cooldown hasn't elapsed. Each channel failure is logged at WARN and
// does not affect the others.
func (d *Dispatcher) Dispatch(ev Event) error {
	if gatedLevels[ev.Level] {
		last, err := d.StateDir.ReadNotifyCooldown(ev.Level)
		if err != nil {
			return err
		}
		if !last.IsZero() && ev.At.Sub(last) < time.Duration(d.CooldownSec)*time.Second {
			return nil
		}
	}

	for _, ch := range d.Channels {
		if err := ch.Send(ev); err != nil {
			d.Logger.Warn("notification channel failed", "channel", ch.Name(), "level", ev.Level, "err", err)
		}
	}

	if gatedLevels[ev.Level] {
		return d.StateDir.WriteNotifyCooldown(ev.Level, ev.At)
	}
	return nil
}
