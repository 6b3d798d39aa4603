package sink

import (
	"fmt"
	"strings"
)

// CommandError describes a failed wpctl invocation.
type CommandError struct {
	Op       string   // get-volume, set-volume, set-mute
	Args     []string // arguments passed to the tool
	Started  bool     // false when the process could not be launched
	ExitCode int      // only meaningful when Started is true
	Stderr   []byte   // captured standard error
	Err      error
}

func (e *CommandError) Error() string {
	if !e.Started {
		return fmt.Sprintf("failed to run wpctl %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("wpctl %s exited with status %d", e.Op, e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// StderrText returns the captured standard error, trimmed.
func (e *CommandError) StderrText() string {
	return strings.TrimSpace(string(e.Stderr))
}
