package daemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHeartbeat_DisabledWithoutSocket(t *testing.T) {
	t.Setenv("NOTIFY_SOCKET", "")
	h := NewHeartbeat(5)
	assert.False(t, h.enabled)
}

func TestNewHeartbeat_DisabledWithZeroInterval(t *testing.T) {
	t.Setenv("NOTIFY_SOCKET", "/tmp/does-not-matter.sock")
	h := NewHeartbeat(0)
	assert.False(t, h.enabled)
}

func TestNewHeartbeat_EnabledWithBoth(t *testing.T) {
	t.Setenv("NOTIFY_SOCKET", "/tmp/does-not-matter.sock")
	h := NewHeartbeat(5)
	assert.True(t, h.enabled)
}

func TestHeartbeat_Send_DisabledIsNoop(t *testing.T) {
	h := &Heartbeat{enabled: false}
	h.Send() // must not panic or block
}

func TestHeartbeat_Send_BadSocketIsBestEffort(t *testing.T) {
	h := &Heartbeat{enabled: true, addr: "/nonexistent/path.sock"}
	h.Send() // dial fails, error swallowed
}
