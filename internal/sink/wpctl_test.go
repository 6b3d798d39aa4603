package sink

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/volctl/internal/model"
)

// stubWpctl writes a fake wpctl that records its arguments and runs body.
// It returns the stub path and the path of the argument log.
func stubWpctl(t *testing.T, body string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	logPath := filepath.Join(dir, "args.log")
	script := "#!/bin/sh\nprintf '%s\\n' \"$*\" >> '" + logPath + "'\n" + body + "\n"

	path := filepath.Join(dir, "wpctl")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path, logPath
}

func readArgs(t *testing.T, logPath string) []string {
	t.Helper()

	data, err := os.ReadFile(logPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestStepArg(t *testing.T) {
	tests := []struct {
		step     int
		expected string
	}{
		{7, "7%+"},
		{-5, "5%-"},
		{1, "1%+"},
		{-100, "100%-"},
		{0, "0%-"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, StepArg(tt.step))
		})
	}
}

func TestSetVolumeArgs_AlwaysLimited(t *testing.T) {
	for _, step := range []int{10, -10} {
		args := SetVolumeArgs(step)
		assert.Equal(t, "set-volume", args[0])
		assert.Equal(t, []string{"-l", "1.0"}, args[1:3])
		assert.Equal(t, DefaultSink, args[3])
	}
}

func TestNewWpctl_DefaultBinary(t *testing.T) {
	assert.Equal(t, DefaultBinary, NewWpctl("", nil).binary)
	assert.Equal(t, "/usr/bin/wpctl", NewWpctl("/usr/bin/wpctl", nil).binary)
}

func TestWpctl_Volume(t *testing.T) {
	path, logPath := stubWpctl(t, `echo "Volume: 0.45 [MUTED]"`)
	w := NewWpctl(path, nil)

	state, err := w.Volume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.VolumeState{Percent: 45, Muted: true}, state)
	assert.Equal(t, []string{"get-volume @DEFAULT_AUDIO_SINK@"}, readArgs(t, logPath))
}

func TestWpctl_Volume_NonZeroExitStillParses(t *testing.T) {
	path, _ := stubWpctl(t, "echo 'Volume: 0.30'\nexit 3")
	w := NewWpctl(path, nil)

	state, err := w.Volume(context.Background())
	require.Error(t, err)

	var cerr *CommandError
	require.ErrorAs(t, err, &cerr)
	assert.True(t, cerr.Started)
	assert.Equal(t, 3, cerr.ExitCode)
	assert.Equal(t, model.VolumeState{Percent: 30}, state)
}

func TestWpctl_Volume_SpawnFailure(t *testing.T) {
	var logs bytes.Buffer
	w := NewWpctl(filepath.Join(t.TempDir(), "missing-wpctl"), testLogger(&logs))

	state, err := w.Volume(context.Background())
	require.Error(t, err)

	var cerr *CommandError
	require.ErrorAs(t, err, &cerr)
	assert.False(t, cerr.Started)
	assert.Equal(t, model.VolumeState{}, state)
	assert.Contains(t, logs.String(), "error getting volume")
}

func TestWpctl_Adjust(t *testing.T) {
	path, logPath := stubWpctl(t, "exit 0")
	w := NewWpctl(path, nil)

	require.NoError(t, w.Adjust(context.Background(), 7))
	require.NoError(t, w.Adjust(context.Background(), -5))

	assert.Equal(t, []string{
		"set-volume -l 1.0 @DEFAULT_AUDIO_SINK@ 7%+",
		"set-volume -l 1.0 @DEFAULT_AUDIO_SINK@ 5%-",
	}, readArgs(t, logPath))
}

func TestWpctl_Adjust_NonZeroExit(t *testing.T) {
	var logs bytes.Buffer
	path, _ := stubWpctl(t, "echo 'Sink not found' >&2\nexit 1")
	w := NewWpctl(path, testLogger(&logs))

	err := w.Adjust(context.Background(), 5)
	require.Error(t, err)

	var cerr *CommandError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "set-volume", cerr.Op)
	assert.Equal(t, 1, cerr.ExitCode)
	assert.Equal(t, "Sink not found", cerr.StderrText())
	assert.Equal(t, "wpctl set-volume exited with status 1", cerr.Error())

	// Verbose tracing echoes both the amount and the tool's stderr.
	assert.Contains(t, logs.String(), "amount=5%+")
	assert.Contains(t, logs.String(), "Sink not found")
}

func TestWpctl_ToggleMute(t *testing.T) {
	path, logPath := stubWpctl(t, "exit 0")
	w := NewWpctl(path, nil)

	require.NoError(t, w.ToggleMute(context.Background()))
	assert.Equal(t, []string{"set-mute @DEFAULT_AUDIO_SINK@ toggle"}, readArgs(t, logPath))
}

func TestCommandError_SpawnMessage(t *testing.T) {
	err := &CommandError{Op: "set-mute", Err: os.ErrNotExist}
	assert.Equal(t, "failed to run wpctl set-mute: file does not exist", err.Error())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
