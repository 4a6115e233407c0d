package writer

import (
	"bufio"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Window is the tracer's sampling duration. A single 1-second window is
// how the design keeps the control loop from blocking on tracing for
// longer than any adaptive sleep interval would tolerate at the most
// severe levels.
const Window = time.Second

// CheckAvailable reports whether the configured tracer command can be
// found on PATH. The daemon calls this once at startup and fails fast if
// it returns false.
func CheckAvailable(tracerCmd string) bool {
	_, err := exec.LookPath(tracerCmd)
	return err == nil
}

// Trace runs tracerCmd for one Window, parses its biosnoop-style output,
// and returns the per-PID write totals observed for device, aggregated
// across every line for that PID in the window.
//
// Expected output columns (bcc's biosnoop tool and compatible forks):
// TIME(s) COMM PID DISK T SECTOR BYTES LAT(ms); only rows with T=="W" and
// DISK matching device are counted.
func Trace(ctx context.Context, tracerCmd, device string) ([]Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, Window+2*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, tracerCmd, "-d", device, strconv.Itoa(int(Window.Seconds())))
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	totals := map[int]*Candidate{}
	now := time.Now()

	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 7 {
			continue
		}
		pid, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		disk := fields[3]
		direction := fields[4]
		n, err := strconv.ParseInt(fields[6], 10, 64)
		if err != nil {
			continue
		}
		if disk != device || direction != "W" {
			continue
		}

		c, ok := totals[pid]
		if !ok {
			c = &Candidate{PID: pid, Comm: fields[1], FirstSeen: now}
			totals[pid] = c
		}
		c.WindowBytes += n
		c.LastSeen = now
	}

	_ = cmd.Wait() // exit status doesn't invalidate output already parsed

	out2 := make([]Candidate, 0, len(totals))
	for _, c := range totals {
		out2 = append(out2, *c)
	}
	return out2, nil
}
