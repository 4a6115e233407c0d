package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileProtected_MatchesDefaults(t *testing.T) {
	re, err := CompileProtected("diskwatchdog", nil)
	require.NoError(t, err)

	for _, comm := range []string{"systemd", "Xorg", "NetworkManager", "pulseaudio", "diskwatchdog"} {
		assert.True(t, re.MatchString(comm), comm)
	}
	for _, comm := range []string{"rsync", "dd", "python3"} {
		assert.False(t, re.MatchString(comm), comm)
	}
}

func TestCompileProtected_AnchoredFullMatch(t *testing.T) {
	re, err := CompileProtected("diskwatchdog", nil)
	require.NoError(t, err)
	// Must not match a comm that merely contains a protected substring.
	assert.False(t, re.MatchString("not-systemd-really"))
}

func TestCompileProtected_ExtraPatterns(t *testing.T) {
	re, err := CompileProtected("diskwatchdog", []string{"my-backup-agent"})
	require.NoError(t, err)
	assert.True(t, re.MatchString("my-backup-agent"))
}
