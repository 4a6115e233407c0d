//go:build linux

package resume

import (
	"os"
	"testing"
	"time"

	"github.com/radrob2/diskwatchdog/internal/action"
	"github.com/radrob2/diskwatchdog/internal/procfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldAttempt(t *testing.T) {
	assert.True(t, ShouldAttempt(true, 60, 50))
	assert.True(t, ShouldAttempt(true, 50, 50))
	assert.False(t, ShouldAttempt(true, 49, 50))
	assert.False(t, ShouldAttempt(false, 100, 50))
}

func TestAttempt_PIDGone_Dropped(t *testing.T) {
	paused := action.NewPausedTable()
	paused.Pause(999999999, "dd", time.Now())

	outcomes := Attempt(paused, time.Now(), time.Minute, 3)
	require.Len(t, outcomes, 1)
	assert.Equal(t, Dropped, outcomes[0].Disposition)
	_, ok := paused.Get(999999999)
	assert.False(t, ok)
}

func TestAttempt_RunningProcess_NotStopped_Dropped(t *testing.T) {
	self := os.Getpid()
	stat, err := procfs.ReadStat(self)
	require.NoError(t, err)

	paused := action.NewPausedTable()
	paused.Pause(self, stat.Comm, time.Now())

	outcomes := Attempt(paused, time.Now(), time.Minute, 3)
	require.Len(t, outcomes, 1)
	assert.Equal(t, Dropped, outcomes[0].Disposition)
}

func TestCleanStale_RemovesOldRegardlessOfPID(t *testing.T) {
	paused := action.NewPausedTable()
	old := time.Now().Add(-3 * time.Hour)
	paused.Pause(999999999, "dd", old)

	CleanStale(paused, time.Now())
	assert.Empty(t, paused.Entries())
}

func TestCleanStale_KeepsRecent(t *testing.T) {
	paused := action.NewPausedTable()
	paused.Pause(999999999, "dd", time.Now())

	CleanStale(paused, time.Now())
	assert.Len(t, paused.Entries(), 1)
}
