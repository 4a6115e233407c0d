//go:build linux

package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquirePIDFile_WritesPID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diskwatchdog.pid")

	pf, err := AcquirePIDFile(path)
	require.NoError(t, err)
	defer pf.Release()

	gotPID, err := ReadPID(path)
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), gotPID)
}

func TestAcquirePIDFile_SecondInstanceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diskwatchdog.pid")

	pf, err := AcquirePIDFile(path)
	require.NoError(t, err)
	defer pf.Release()

	_, err = AcquirePIDFile(path)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestPIDFile_Release_RemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diskwatchdog.pid")

	pf, err := AcquirePIDFile(path)
	require.NoError(t, err)
	require.NoError(t, pf.Release())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReadPID_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diskwatchdog.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid"), 0o644))

	_, err := ReadPID(path)
	assert.Error(t, err)
}
