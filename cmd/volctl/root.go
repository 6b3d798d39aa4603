// Package main provides the CLI entrypoint for volctl.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/volctl/internal/audio"
	"github.com/jmylchreest/volctl/internal/config"
	"github.com/jmylchreest/volctl/internal/control"
	"github.com/jmylchreest/volctl/internal/dbus"
	"github.com/jmylchreest/volctl/internal/notify"
	"github.com/jmylchreest/volctl/internal/sink"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

const usageLine = "Usage: volctl [up|down|mute] [amount] [--verbose]"

// Exit codes. Failures of wpctl itself still exit 0 so that hot-key
// bindings never surface a shell error.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError is returned for a missing or unknown verb or flag.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	if e.msg == "" {
		return "missing command"
	}
	return e.msg
}

// app holds the state of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	opts struct {
		verbose    bool
		configPath string
		help       bool
	}
	// positional holds the arguments of up/down/mute once flags are removed.
	positional []string

	cfg    *config.Config
	logger *slog.Logger

	// newSender opens the notification bus.
	newSender func() (notify.Sender, error)
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		newSender: sessionSender,
	}
}

func sessionSender() (notify.Sender, error) {
	client, err := dbus.NewClient()
	if err != nil {
		return nil, err
	}
	return client, nil
}

// newRootCmd builds the command tree for a.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "volctl",
		Short: "Adjust the default audio sink volume with desktop notifications",
		Long: `volctl changes the volume of the default PipeWire sink through wpctl,
toggles its mute state, and shows a desktop notification with the result.

It is meant to be bound to keyboard shortcuts:

  bind = , XF86AudioRaiseVolume, exec, volctl up
  bind = , XF86AudioLowerVolume, exec, volctl down
  bind = , XF86AudioMute,        exec, volctl mute

Repeated invocations update a single notification bubble.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{msg: "Unknown command: " + args[0]}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.DisableFlagParsing {
				a.positional = a.parseVerbArgs(args)
			}
			a.setupLogger()

			// A broken config must not disable the volume keys.
			cfg, err := config.LoadConfig(a.opts.configPath)
			if err != nil {
				a.logger.Error("failed to load config, using defaults", "error", err)
				cfg = config.DefaultConfig()
			}
			a.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return &usageError{}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false,
		"Trace wpctl invocations and output on stderr")
	rootCmd.PersistentFlags().StringVar(&a.opts.configPath, "config", "",
		"Path to config file (default: ~/.config/volctl/config.toml)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	rootCmd.AddCommand(
		newUpCmd(a),
		newDownCmd(a),
		newMuteCmd(a),
		newStatusCmd(a),
	)

	return rootCmd
}

// run executes the command line and returns the process exit code.
func run(a *app, args []string) int {
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	err := rootCmd.Execute()
	if err == nil {
		return exitOK
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		if uerr.msg != "" {
			_, _ = fmt.Fprintln(a.stderr, uerr.msg)
		}
		_, _ = fmt.Fprintln(a.stderr, usageLine)
		return exitUsage
	}

	_, _ = fmt.Fprintf(a.stderr, "Error: %v\n", err)
	return exitError
}

// setupLogger configures the invocation's slog logger.
func (a *app) setupLogger() {
	level := slog.LevelWarn
	if a.opts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(a.stderr, opts)
	a.logger = slog.New(handler)
	slog.SetDefault(a.logger)
}

// parseVerbArgs removes the global flags from the arguments of a verb
// command, which accepts them in any position, and returns the rest.
func (a *app) parseVerbArgs(args []string) []string {
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--verbose" || arg == "-v":
			a.opts.verbose = true
		case arg == "--help" || arg == "-h":
			a.opts.help = true
		case arg == "--config":
			if i+1 < len(args) {
				i++
				a.opts.configPath = args[i]
			}
		case strings.HasPrefix(arg, "--config="):
			a.opts.configPath = strings.TrimPrefix(arg, "--config=")
		default:
			rest = append(rest, arg)
		}
	}
	return rest
}

// wpctl returns the sink driver for the configured binary.
func (a *app) wpctl() *sink.Wpctl {
	return sink.NewWpctl(a.cfg.Wpctl.Path, a.logger)
}

// controller wires wpctl, the session bus and the feedback sound.
func (a *app) controller() *control.Controller {
	var announcer control.Announcer
	if a.cfg.Notification.Enabled {
		sender, err := a.newSender()
		if err != nil {
			a.logger.Debug("notifications unavailable", "error", err)
		} else {
			announcer = notify.NewNotifier(sender, a.cfg.Notification.AppName, a.logger)
		}
	}

	var opts []control.Option
	if a.cfg.Feedback.Sound != "" {
		player := audio.NewPlayer(a.cfg.Feedback.Volume, a.logger)
		opts = append(opts, control.WithFeedbackSound(player, a.cfg.Feedback.Sound))
	}

	return control.New(a.wpctl(), announcer, a.logger, opts...)
}
