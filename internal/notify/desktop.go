package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Desktop sends a toast via the session bus's standard
// org.freedesktop.Notifications interface.
type Desktop struct{}

func (Desktop) Name() string { return "desktop" }

func (Desktop) Send(ev Event) error {
	conn, err := dbus.SessionBusPrivate()
	if err != nil {
		return fmt.Errorf("notify/desktop: connect session bus: %w", err)
	}
	defer conn.Close()

	if err := conn.Auth(nil); err != nil {
		return fmt.Errorf("notify/desktop: auth: %w", err)
	}
	if err := conn.Hello(); err != nil {
		return fmt.Errorf("notify/desktop: hello: %w", err)
	}

	obj := conn.Object("org.freedesktop.Notifications", dbus.ObjectPath("/org/freedesktop/Notifications"))
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		"diskwatchdog",         // app_name
		uint32(0),              // replaces_id
		"",                     // app_icon
		summary(ev),            // summary
		ev.Message,             // body
		[]string{},             // actions
		map[string]dbus.Variant{}, // hints
		int32(8000),            // expire_timeout (ms)
	)
	return call.Err
}

func summary(ev Event) string {
	return fmt.Sprintf("disk watchdog: %s", ev.Level)
}
