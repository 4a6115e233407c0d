package writer

import (
	"regexp"
	"strings"
)

// defaultProtectedPatterns cover the process families that must never be
// paused/signaled regardless of how much they write: init, supervisors,
// display servers, session/policy daemons, package managers, and the
// audio/bluetooth/print stacks.
var defaultProtectedPatterns = []string{
	`systemd`,
	`init`,
	`kthreadd`,
	`systemd-.*`,
	`Xorg`,
	`Xwayland`,
	`wayland.*`,
	`gnome-shell`,
	`plasmashell`,
	`kwin.*`,
	`sway`,
	`hyprland`,
	`dbus-daemon`,
	`dbus-broker`,
	`polkitd`,
	`accounts-daemon`,
	`udisksd`,
	`upowerd`,
	`NetworkManager`,
	`logind`,
	`apt`,
	`apt-get`,
	`dpkg`,
	`yum`,
	`dnf`,
	`pacman`,
	`rpm`,
	`snapd`,
	`packagekitd`,
	`pulseaudio`,
	`pipewire`,
	`pipewire-pulse`,
	`wireplumber`,
	`bluetoothd`,
	`cupsd`,
	`cups-browsed`,
}

// CompileProtected builds the anchored protected-process regular
// expression: the built-in defaults, the watchdog's own comm (so it can
// never target itself), and any operator-supplied extra patterns.
func CompileProtected(selfComm string, extra []string) (*regexp.Regexp, error) {
	patterns := make([]string, 0, len(defaultProtectedPatterns)+len(extra)+1)
	patterns = append(patterns, defaultProtectedPatterns...)
	if selfComm != "" {
		patterns = append(patterns, regexp.QuoteMeta(selfComm))
	}
	patterns = append(patterns, extra...)

	return regexp.Compile(`^(?:` + strings.Join(patterns, "|") + `)$`)
}
