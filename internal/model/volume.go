// Package model defines the core data structures for volctl.
package model

import "fmt"

// Level buckets a volume state for presentation.
type Level int

const (
	LevelMuted Level = iota
	LevelLow
	LevelMedium
	LevelHigh
)

// Level thresholds in percent. A volume below LowThreshold is low, below
// HighThreshold is medium, anything else is high.
const (
	LowThreshold  = 30
	HighThreshold = 70
)

// LevelNames maps levels to the names used in icons and status classes.
var LevelNames = map[Level]string{
	LevelMuted:  "muted",
	LevelLow:    "low",
	LevelMedium: "medium",
	LevelHigh:   "high",
}

// String returns the level name.
func (l Level) String() string {
	if name, ok := LevelNames[l]; ok {
		return name
	}
	return "unknown"
}

// VolumeState is the observed state of the default sink.
type VolumeState struct {
	Percent int  `json:"percent"` // 0-100
	Muted   bool `json:"muted"`
}

// Level returns the presentation bucket for the state.
// Muted takes precedence over any percent-based level.
func (s VolumeState) Level() Level {
	switch {
	case s.Muted:
		return LevelMuted
	case s.Percent < LowThreshold:
		return LevelLow
	case s.Percent < HighThreshold:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// Summary returns the human-readable one-line description of the state.
func (s VolumeState) Summary() string {
	if s.Muted {
		return "Muted"
	}
	return fmt.Sprintf("Volume: %d%%", s.Percent)
}
