// Package dbus is a client for the org.freedesktop.Notifications D-Bus
// interface. It submits Notify calls on the session bus with the hints,
// timeout and replacement id described by the freedesktop.org notification
// specification.
package dbus
