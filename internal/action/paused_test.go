package action

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPausedTable_Pause_IncrementsStrikeWithinWindow(t *testing.T) {
	tbl := NewPausedTable()
	t0 := time.Now()

	r1 := tbl.Pause(1, "dd", t0)
	assert.Equal(t, 1, r1.Strikes)

	r2 := tbl.Pause(1, "dd", t0.Add(30*time.Minute))
	assert.Equal(t, 2, r2.Strikes)
}

func TestPausedTable_Pause_ResetsStrikeAfterWindow(t *testing.T) {
	tbl := NewPausedTable()
	t0 := time.Now()

	tbl.Pause(1, "dd", t0)
	r2 := tbl.Pause(1, "dd", t0.Add(2*time.Hour))
	assert.Equal(t, 1, r2.Strikes)
}

func TestPausedTable_Pause_CommMismatchDoesNotCarryStrike(t *testing.T) {
	tbl := NewPausedTable()
	t0 := time.Now()

	tbl.Pause(1, "dd", t0)
	r2 := tbl.Pause(1, "curl", t0.Add(time.Minute))
	assert.Equal(t, 1, r2.Strikes)
}

func TestPausedTable_MarshalUnmarshal_RoundTrip(t *testing.T) {
	tbl := NewPausedTable()
	at := time.Now().Truncate(time.Second)
	tbl.Pause(7, "rsync", at)

	body := tbl.Marshal()

	tbl2 := NewPausedTable()
	tbl2.Unmarshal(body)

	rec, ok := tbl2.Get(7)
	require.True(t, ok)
	assert.Equal(t, "rsync", rec.Comm)
	assert.True(t, rec.PausedAt.Equal(at))
	assert.Equal(t, 1, rec.Strikes)
}

func TestPausedTable_Remove(t *testing.T) {
	tbl := NewPausedTable()
	tbl.Pause(1, "dd", time.Now())
	tbl.Remove(1)
	_, ok := tbl.Get(1)
	assert.False(t, ok)
}
