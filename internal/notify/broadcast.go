package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// Broadcast sends a message to every logged-in session's terminal via
// wall(1). The message is piped over stdin rather than passed as an
// argv entry or shell string, so a process name containing shell
// metacharacters can never be interpreted by anything.
type Broadcast struct{}

func (Broadcast) Name() string { return "broadcast" }

func (Broadcast) Send(ev Event) error {
	cmd := exec.Command("wall")
	cmd.Stdin = strings.NewReader(renderBroadcast(ev))
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("notify/broadcast: wall: %w: %s", err, out)
	}
	return nil
}

func renderBroadcast(ev Event) string {
	return fmt.Sprintf("disk watchdog [%s]: %s (free=%dGB on %s)\n", ev.Level, ev.Message, ev.FreeGB, ev.Mount)
}
