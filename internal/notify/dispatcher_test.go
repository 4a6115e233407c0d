package notify

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/radrob2/diskwatchdog/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	name string
	err  error
	sent []Event
}

func (f *fakeChannel) Name() string { return f.name }
func (f *fakeChannel) Send(ev Event) error {
	f.sent = append(f.sent, ev)
	return f.err
}

func newDispatcher(t *testing.T, channels ...Channel) (*Dispatcher, *state.Dir) {
	dir, err := state.Open(t.TempDir())
	require.NoError(t, err)
	return &Dispatcher{
		Channels:    channels,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		StateDir:    dir,
		CooldownSec: 300,
	}, dir
}

func TestDispatch_AlwaysEmitsForPause(t *testing.T) {
	ch := &fakeChannel{name: "desktop"}
	d, _ := newDispatcher(t, ch)

	now := time.Now()
	require.NoError(t, d.Dispatch(Event{Level: "pause", At: now}))
	require.NoError(t, d.Dispatch(Event{Level: "pause", At: now.Add(time.Second)}))

	assert.Len(t, ch.sent, 2)
}

func TestDispatch_GatedLevel_SuppressedWithinCooldown(t *testing.T) {
	ch := &fakeChannel{name: "desktop"}
	d, _ := newDispatcher(t, ch)

	now := time.Now()
	require.NoError(t, d.Dispatch(Event{Level: "warn", At: now}))
	require.NoError(t, d.Dispatch(Event{Level: "warn", At: now.Add(10 * time.Second)}))

	assert.Len(t, ch.sent, 1)
}

func TestDispatch_GatedLevel_SentAfterCooldownElapses(t *testing.T) {
	ch := &fakeChannel{name: "desktop"}
	d, _ := newDispatcher(t, ch)

	now := time.Now()
	require.NoError(t, d.Dispatch(Event{Level: "warn", At: now}))
	require.NoError(t, d.Dispatch(Event{Level: "warn", At: now.Add(301 * time.Second)}))

	assert.Len(t, ch.sent, 2)
}

func TestDispatch_OneChannelFailureDoesNotAffectOthers(t *testing.T) {
	failing := &fakeChannel{name: "broken", err: errors.New("boom")}
	ok := &fakeChannel{name: "fine"}
	d, _ := newDispatcher(t, failing, ok)

	require.NoError(t, d.Dispatch(Event{Level: "kill", At: time.Now()}))

	assert.Len(t, failing.sent, 1)
	assert.Len(t, ok.sent, 1)
}

func TestRenderBroadcast_NoShellMetacharacterInterpretationRisk(t *testing.T) {
	ev := Event{Level: "pause", Message: "paused `rm -rf /`; $(evil)", FreeGB: 5, Mount: "/"}
	out := renderBroadcast(ev)
	assert.Contains(t, out, "`rm -rf /`")
}
