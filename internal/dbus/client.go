package dbus

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	// DBusInterface is the notification interface name.
	DBusInterface = "org.freedesktop.Notifications"
	// DBusPath is the notification object path.
	DBusPath = "/org/freedesktop/Notifications"
	// DBusBusName is the well-known name of the notification server.
	DBusBusName = "org.freedesktop.Notifications"
)

// Client submits notifications to the session's notification server.
type Client struct {
	obj dbus.BusObject
}

// NewClient connects to the session bus.
// The connection is shared (SessionBus) and is not closed by the client.
func NewClient() (*Client, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return NewClientWithObject(conn.Object(DBusBusName, DBusPath)), nil
}

// NewClientWithObject creates a client that talks to obj directly.
func NewClientWithObject(obj dbus.BusObject) *Client {
	return &Client{obj: obj}
}

// Notify sends n and returns the id assigned by the server.
// D-Bus method: Notify(susssasa{sv}i) -> u
func (c *Client) Notify(ctx context.Context, n *Notification) (uint32, error) {
	actions := n.Actions
	if actions == nil {
		actions = []string{}
	}
	hints := n.Hints
	if hints == nil {
		hints = map[string]dbus.Variant{}
	}

	call := c.obj.CallWithContext(ctx, DBusInterface+".Notify", 0,
		n.AppName,
		n.ReplacesID,
		n.AppIcon,
		n.Summary,
		n.Body,
		actions,
		hints,
		n.ExpireTimeout,
	)

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("notify failed: %w", err)
	}
	return id, nil
}
