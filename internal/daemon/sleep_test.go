//go:build linux

package daemon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/radrob2/diskwatchdog/internal/level"
)

func TestSleepFor(t *testing.T) {
	cases := []struct {
		lvl  level.Level
		want time.Duration
	}{
		{level.OK, 300 * time.Second},
		{level.Notice, 60 * time.Second},
		{level.Warn, 30 * time.Second},
		{level.Harsh, 10 * time.Second},
		{level.Pause, 3 * time.Second},
		{level.Stop, time.Second},
		{level.Kill, time.Second},
	}
	for _, c := range cases {
		t.Run(c.lvl.String(), func(t *testing.T) {
			assert.Equal(t, c.want, SleepFor(c.lvl))
		})
	}
}
