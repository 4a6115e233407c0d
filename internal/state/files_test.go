package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_WriteRead_RoundTrip(t *testing.T) {
	d, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, d.Write(FileLevel, "warn"))

	body, ok, err := d.Read(FileLevel)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "warn", body)
}

func TestDir_Read_MissingFile(t *testing.T) {
	d, err := Open(t.TempDir())
	require.NoError(t, err)

	_, ok, err := d.Read(FileKnownWriters)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDir_NotifyCooldown_RoundTrip(t *testing.T) {
	d, err := Open(t.TempDir())
	require.NoError(t, err)

	at := time.Now().Truncate(time.Second)
	require.NoError(t, d.WriteNotifyCooldown("warn", at))

	got, err := d.ReadNotifyCooldown("warn")
	require.NoError(t, err)
	assert.True(t, got.Equal(at))
}

func TestDir_NotifyCooldown_NeverSent(t *testing.T) {
	d, err := Open(t.TempDir())
	require.NoError(t, err)

	got, err := d.ReadNotifyCooldown("harsh")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestDir_ClearNotifyCooldowns(t *testing.T) {
	d, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, d.WriteNotifyCooldown("warn", time.Now()))
	require.NoError(t, d.WriteNotifyCooldown("harsh", time.Now()))

	require.NoError(t, d.ClearNotifyCooldowns([]string{"warn", "harsh", "pause"}))

	_, ok, err := d.Read(NotifyFile("warn"))
	require.NoError(t, err)
	assert.False(t, ok)
}
