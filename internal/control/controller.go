// Package control runs one volctl action: change the sink, read it back,
// and announce the resulting state.
package control

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmylchreest/volctl/internal/model"
	"github.com/jmylchreest/volctl/internal/sink"
)

// Sink reads and changes the default audio sink.
type Sink interface {
	Volume(ctx context.Context) (model.VolumeState, error)
	Adjust(ctx context.Context, step int) error
	ToggleMute(ctx context.Context) error
}

// Announcer presents a volume state to the user.
type Announcer interface {
	Notify(ctx context.Context, state model.VolumeState)
}

// SoundPlayer plays a feedback sound.
type SoundPlayer interface {
	Play(ctx context.Context, path string) error
}

// Controller sequences sink commands, readback and notification.
type Controller struct {
	sink      Sink
	announcer Announcer
	logger    *slog.Logger

	player SoundPlayer
	sound  string
}

// Option configures a Controller.
type Option func(*Controller)

// WithFeedbackSound plays path through player after each announced change.
func WithFeedbackSound(player SoundPlayer, path string) Option {
	return func(c *Controller) {
		c.player = player
		c.sound = path
	}
}

// New creates a Controller. A nil announcer disables notifications.
func New(s Sink, announcer Announcer, logger *slog.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		sink:      s,
		announcer: announcer,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Adjust changes the volume by step percentage points and announces the
// new state. On failure nothing is announced and the error is returned
// after being logged.
func (c *Controller) Adjust(ctx context.Context, step int) error {
	if err := c.sink.Adjust(ctx, step); err != nil {
		c.report("failed to set volume", err)
		return err
	}
	c.announce(ctx)
	return nil
}

// ToggleMute flips the mute state and announces the new state.
func (c *Controller) ToggleMute(ctx context.Context) error {
	if err := c.sink.ToggleMute(ctx); err != nil {
		c.report("failed to toggle mute", err)
		return err
	}
	c.announce(ctx)
	return nil
}

// announce reads the post-action state and shows it. Read failures are
// already logged by the sink and degrade to the zero state.
func (c *Controller) announce(ctx context.Context) {
	state, _ := c.sink.Volume(ctx)
	c.logger.Debug("volume state", "percent", state.Percent, "muted", state.Muted)

	if c.announcer != nil {
		c.announcer.Notify(ctx, state)
	}

	if c.player != nil && c.sound != "" {
		if err := c.player.Play(ctx, c.sound); err != nil {
			c.logger.Debug("feedback sound failed", "path", c.sound, "error", err)
		}
	}
}

func (c *Controller) report(msg string, err error) {
	var cerr *sink.CommandError
	if errors.As(err, &cerr) && cerr.Started {
		c.logger.Error("wpctl exited with error", "op", cerr.Op, "status", cerr.ExitCode)
		return
	}
	c.logger.Error(msg, "error", err)
}
