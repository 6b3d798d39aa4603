package dbus

import (
	"github.com/godbus/dbus/v5"
)

// Standard hint names.
const (
	HintCategory = "category"
	HintValue    = "value"
)

// Notification is the parameter set of an org.freedesktop.Notifications.Notify call.
type Notification struct {
	AppName       string
	ReplacesID    uint32
	AppIcon       string
	Summary       string
	Body          string
	Actions       []string // Alternating key, label pairs
	Hints         map[string]dbus.Variant
	ExpireTimeout int32 // -1 = server default, 0 = never expire
}

// SetHint sets a hint, allocating the map if needed.
func (n *Notification) SetHint(name string, value any) {
	if n.Hints == nil {
		n.Hints = make(map[string]dbus.Variant)
	}
	n.Hints[name] = dbus.MakeVariant(value)
}

// Category extracts the category hint from the notification.
// Returns empty string if not specified.
func (n *Notification) Category() string {
	if v, ok := n.Hints[HintCategory]; ok {
		if s, ok := v.Value().(string); ok {
			return s
		}
	}
	return ""
}

// Progress extracts the value hint that drives progress bars.
// Returns -1 if not present.
func (n *Notification) Progress() int {
	if v, ok := n.Hints[HintValue]; ok {
		switch val := v.Value().(type) {
		case int32:
			return int(val)
		case uint32:
			return int(val)
		case int:
			return val
		case byte:
			return int(val)
		}
	}
	return -1
}
