package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/volctl/internal/dbus"
	"github.com/jmylchreest/volctl/internal/model"
)

type recordingSender struct {
	sent []*dbus.Notification
	err  error
}

func (r *recordingSender) Notify(ctx context.Context, n *dbus.Notification) (uint32, error) {
	r.sent = append(r.sent, n)
	if r.err != nil {
		return 0, r.err
	}
	return n.ReplacesID, nil
}

func TestBuild_DecisionTable(t *testing.T) {
	tests := []struct {
		percent int
		muted   bool
		summary string
		icon    string
	}{
		{0, false, "Volume: 0%", "audio-volume-low"},
		{29, false, "Volume: 29%", "audio-volume-low"},
		{30, false, "Volume: 30%", "audio-volume-medium"},
		{69, false, "Volume: 69%", "audio-volume-medium"},
		{70, false, "Volume: 70%", "audio-volume-high"},
		{100, false, "Volume: 100%", "audio-volume-high"},
		{50, true, "Muted", "audio-volume-muted"},
		{0, true, "Muted", "audio-volume-muted"},
	}

	for _, tt := range tests {
		t.Run(tt.summary+"/"+tt.icon, func(t *testing.T) {
			n := Build(model.VolumeState{Percent: tt.percent, Muted: tt.muted}, DefaultAppName)
			assert.Equal(t, tt.summary, n.Summary)
			assert.Equal(t, tt.icon, n.AppIcon)
		})
	}
}

func TestBuild_FixedFields(t *testing.T) {
	n := Build(model.VolumeState{Percent: 72, Muted: true}, "volctl")

	assert.Equal(t, "volctl", n.AppName)
	assert.Equal(t, uint32(5555), n.ReplacesID)
	assert.Equal(t, int32(1000), n.ExpireTimeout)
	assert.Equal(t, "volume", n.Category())
	assert.Equal(t, 72, n.Progress())
	assert.Empty(t, n.Body)
	assert.Empty(t, n.Actions)
	assert.NotContains(t, n.Hints, "urgency")
}

func TestNotifier_Notify(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "", nil)

	notifier.Notify(context.Background(), model.VolumeState{Percent: 45})
	notifier.Notify(context.Background(), model.VolumeState{Percent: 50})

	require.Len(t, sender.sent, 2)
	assert.Equal(t, DefaultAppName, sender.sent[0].AppName)
	assert.Equal(t, sender.sent[0].ReplacesID, sender.sent[1].ReplacesID)
	assert.Equal(t, "Volume: 50%", sender.sent[1].Summary)
}

func TestNotifier_SwallowsErrors(t *testing.T) {
	sender := &recordingSender{err: errors.New("no notification daemon")}
	notifier := NewNotifier(sender, "volctl", nil)

	assert.NotPanics(t, func() {
		notifier.Notify(context.Background(), model.VolumeState{Percent: 10})
	})
	assert.Len(t, sender.sent, 1)
}

func TestNotifier_NilSender(t *testing.T) {
	notifier := NewNotifier(nil, "volctl", nil)
	assert.NotPanics(t, func() {
		notifier.Notify(context.Background(), model.VolumeState{})
	})
}

func TestNotifier_LogsHints(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	notifier := NewNotifier(&recordingSender{}, "volctl", logger)

	notifier.Notify(context.Background(), model.VolumeState{Percent: 45})

	assert.Contains(t, logs.String(), "category=volume")
	assert.Contains(t, logs.String(), "value=45")
}
