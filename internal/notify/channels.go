package notify

import "github.com/radrob2/diskwatchdog/internal/config"

// BuildChannels constructs the enabled channel set from cfg. Shared by
// the daemon (live dispatch) and the "test" subcommand (one-shot
// fan-out) so both stay in lockstep with the config schema.
func BuildChannels(cfg config.Config) []Channel {
	var channels []Channel
	if cfg.NotifyDesktopEnabled {
		channels = append(channels, Desktop{})
	}
	if cfg.NotifyBroadcastEnabled {
		channels = append(channels, Broadcast{})
	}
	if cfg.NotifyEmailEnabled {
		channels = append(channels, Email{To: cfg.NotifyEmailTo, From: cfg.NotifyEmailFrom, Host: cfg.NotifyEmailSMTPHost, Port: cfg.NotifyEmailSMTPPort})
	}
	if cfg.NotifyWebhookEnabled {
		channels = append(channels, NewWebhook(cfg.NotifyWebhookURL))
	}
	return channels
}
