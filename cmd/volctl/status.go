package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/volctl/internal/model"
)

const barWidth = 20

// WaybarStatus represents the Waybar custom module JSON format.
type WaybarStatus struct {
	Text       string `json:"text"`
	Alt        string `json:"alt,omitempty"`
	Tooltip    string `json:"tooltip,omitempty"`
	Class      string `json:"class,omitempty"`
	Percentage int    `json:"percentage"`
}

func newStatusCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the current volume",
		Long: `Print the default sink's volume and mute state without changing it.

Formats:
  json  Waybar custom module JSON
  text  One line with a level bar
  auto  text on a terminal, json otherwise (default)

This is designed to be used with Waybar's custom module:

  "custom/volume": {
    "exec": "volctl status --format json",
    "interval": 1,
    "return-type": "json",
    "on-click": "volctl mute",
    "on-scroll-up": "volctl up",
    "on-scroll-down": "volctl down"
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Read failures are logged by the sink and degrade to the zero state.
			state, _ := a.wpctl().Volume(cmd.Context())

			switch resolveFormat(format, a.stdout) {
			case "json":
				return json.NewEncoder(a.stdout).Encode(waybarStatus(state))
			case "text":
				_, err := fmt.Fprintln(a.stdout, renderText(state, a.stdout))
				return err
			default:
				return fmt.Errorf("unknown format %q (expected auto, json or text)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "Output format (auto, json, text)")
	return cmd
}

// resolveFormat maps "auto" to text or json depending on whether w is a terminal.
func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	if isTerminal(w) {
		return "text"
	}
	return "json"
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// waybarStatus creates a WaybarStatus from a volume state.
func waybarStatus(state model.VolumeState) WaybarStatus {
	level := state.Level().String()

	text := fmt.Sprintf("%d%%", state.Percent)
	if state.Muted {
		text = "Muted"
	}

	return WaybarStatus{
		Text:       text,
		Alt:        level,
		Tooltip:    fmt.Sprintf("Volume: %d%%", state.Percent),
		Class:      level,
		Percentage: state.Percent,
	}
}

// renderText renders the state as "Volume: 45% █████░░░░░", styled for w.
func renderText(state model.VolumeState, w io.Writer) string {
	r := lipgloss.NewRenderer(w)

	color := lipgloss.Color("10")
	switch state.Level() {
	case model.LevelMuted:
		color = lipgloss.Color("8")
	case model.LevelHigh:
		color = lipgloss.Color("11")
	}

	filled := state.Percent * barWidth / 100
	bar := r.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		r.NewStyle().Faint(true).Render(strings.Repeat("░", barWidth-filled))

	label := r.NewStyle().Bold(true).Render(state.Summary())
	return label + " " + bar
}
