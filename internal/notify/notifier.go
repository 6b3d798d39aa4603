// Package notify turns volume states into desktop notifications.
package notify

import (
	"context"
	"log/slog"

	"github.com/jmylchreest/volctl/internal/dbus"
	"github.com/jmylchreest/volctl/internal/model"
)

const (
	// ReplacesID is shared by every volctl notification so that repeated
	// key presses update one bubble instead of stacking.
	ReplacesID uint32 = 5555
	// Timeout is the display time in milliseconds.
	Timeout int32 = 1000
	// Category is the freedesktop category hint value.
	Category = "volume"
	// DefaultAppName is the application name sent with each notification.
	DefaultAppName = "volctl"
)

// Icon names per level, from the freedesktop icon naming spec.
var levelIcons = map[model.Level]string{
	model.LevelMuted:  "audio-volume-muted",
	model.LevelLow:    "audio-volume-low",
	model.LevelMedium: "audio-volume-medium",
	model.LevelHigh:   "audio-volume-high",
}

// Sender delivers a notification to the desktop.
type Sender interface {
	Notify(ctx context.Context, n *dbus.Notification) (uint32, error)
}

// Notifier shows the current volume state as a desktop notification.
type Notifier struct {
	sender  Sender
	appName string
	logger  *slog.Logger
}

// NewNotifier creates a Notifier that delivers through sender.
func NewNotifier(sender Sender, appName string, logger *slog.Logger) *Notifier {
	if appName == "" {
		appName = DefaultAppName
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		sender:  sender,
		appName: appName,
		logger:  logger,
	}
}

// Icon returns the icon name for a state.
func Icon(state model.VolumeState) string {
	return levelIcons[state.Level()]
}

// Build returns the notification describing state.
func Build(state model.VolumeState, appName string) *dbus.Notification {
	n := &dbus.Notification{
		AppName:       appName,
		ReplacesID:    ReplacesID,
		AppIcon:       Icon(state),
		Summary:       state.Summary(),
		ExpireTimeout: Timeout,
	}
	n.SetHint(dbus.HintCategory, Category)
	n.SetHint(dbus.HintValue, int32(state.Percent))
	return n
}

// Notify shows state. Delivery failures are logged at debug level and
// otherwise ignored: by the time this runs the volume has already changed.
func (n *Notifier) Notify(ctx context.Context, state model.VolumeState) {
	if n.sender == nil {
		n.logger.Debug("notification skipped: no sender", "summary", state.Summary())
		return
	}

	notification := Build(state, n.appName)
	n.logger.Debug("sending notification",
		"summary", notification.Summary,
		"icon", notification.AppIcon,
		"category", notification.Category(),
		"value", notification.Progress(),
	)

	if _, err := n.sender.Notify(ctx, notification); err != nil {
		n.logger.Debug("notification not delivered", "error", err)
	}
}
