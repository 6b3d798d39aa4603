package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/jmylchreest/volctl/internal/model"
)

const (
	// DefaultBinary is the wpctl executable looked up on PATH.
	DefaultBinary = "wpctl"
	// DefaultSink is wpctl's symbolic name for the default output.
	DefaultSink = "@DEFAULT_AUDIO_SINK@"
	// VolumeLimit caps relative raises at unity gain.
	VolumeLimit = "1.0"
)

// Wpctl drives the default audio sink through the wpctl tool.
type Wpctl struct {
	binary string
	logger *slog.Logger
}

// NewWpctl creates a Wpctl that runs binary (DefaultBinary if empty).
func NewWpctl(binary string, logger *slog.Logger) *Wpctl {
	if binary == "" {
		binary = DefaultBinary
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Wpctl{
		binary: binary,
		logger: logger,
	}
}

// Volume reads the default sink's volume and mute state.
//
// A state is always returned. If wpctl cannot be launched the state is zero
// and the failure is logged. If it exits non-zero, whatever it printed is
// still parsed; the returned error lets callers inspect the failure.
func (w *Wpctl) Volume(ctx context.Context) (model.VolumeState, error) {
	stdout, err := w.run(ctx, "get-volume", "get-volume", DefaultSink)
	w.logger.Debug("wpctl get-volume output", "output", string(stdout))

	if err != nil {
		var cerr *CommandError
		if errors.As(err, &cerr) && !cerr.Started {
			w.logger.Error("error getting volume", "error", err)
			return model.VolumeState{}, err
		}
		w.logger.Debug("get-volume failed, parsing partial output", "error", err)
	}

	return ParseVolume(stdout), err
}

// Adjust changes the default sink's volume by step percentage points.
// Positive steps raise, anything else lowers; raises are clamped to unity.
func (w *Wpctl) Adjust(ctx context.Context, step int) error {
	amount := StepArg(step)
	w.logger.Debug("executing wpctl", "amount", amount)

	_, err := w.run(ctx, "set-volume", SetVolumeArgs(step)...)
	return err
}

// ToggleMute flips the default sink's mute state.
func (w *Wpctl) ToggleMute(ctx context.Context) error {
	_, err := w.run(ctx, "set-mute", "set-mute", DefaultSink, "toggle")
	return err
}

// StepArg encodes a signed step the way wpctl expects a relative change:
// the magnitude, a percent sign, then the direction ("7%+", "5%-").
// Zero is encoded as a decrease, which wpctl treats as a no-op.
func StepArg(step int) string {
	sign := "-"
	if step > 0 {
		sign = "+"
	}
	if step < 0 {
		step = -step
	}
	return fmt.Sprintf("%d%%%s", step, sign)
}

// SetVolumeArgs returns the full wpctl argument list for a relative change.
func SetVolumeArgs(step int) []string {
	return []string{"set-volume", "-l", VolumeLimit, DefaultSink, StepArg(step)}
}

// run executes wpctl and waits for it, returning its standard output.
func (w *Wpctl) run(ctx context.Context, op string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, w.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{
			Op:   op,
			Args: args,
			Err:  err,
		}
	}

	if err := cmd.Wait(); err != nil {
		cerr := &CommandError{
			Op:       op,
			Args:     args,
			Started:  true,
			ExitCode: -1,
			Stderr:   stderr.Bytes(),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cerr.ExitCode = exitErr.ExitCode()
		}
		if len(cerr.Stderr) > 0 {
			w.logger.Debug("wpctl stderr", "op", op, "stderr", cerr.StderrText())
		}
		return stdout.Bytes(), cerr
	}

	return stdout.Bytes(), nil
}
