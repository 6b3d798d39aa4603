package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// Verb commands parse their own flags so that an amount is found even when
// it follows an unknown dash-prefixed argument; see parseVerbArgs.

func newUpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "up [amount] [--verbose]",
		Short: "Raise the volume",
		Long: `Raise the default sink's volume by amount percentage points
(default: 5, or step from the config file). The volume never exceeds 100%.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.help {
				return cmd.Help()
			}
			step := stepFromArgs(a.positional, a.cfg.Step)
			// Failures are logged by the controller; see exitOK.
			_ = a.controller().Adjust(cmd.Context(), step)
			return nil
		},
	}
}

func newDownCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "down [amount] [--verbose]",
		Short: "Lower the volume",
		Long: `Lower the default sink's volume by amount percentage points
(default: 5, or step from the config file).`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.help {
				return cmd.Help()
			}
			step := stepFromArgs(a.positional, a.cfg.Step)
			_ = a.controller().Adjust(cmd.Context(), -step)
			return nil
		},
	}
}

func newMuteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                "mute [--verbose]",
		Short:              "Toggle mute",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.help {
				return cmd.Help()
			}
			_ = a.controller().ToggleMute(cmd.Context())
			return nil
		},
	}
}

// stepFromArgs returns the step given on the command line. Only the first
// argument not starting with "-" is considered; if it is not a 32-bit
// integer, or there is none, def is used.
func stepFromArgs(args []string, def int) int {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		step, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return def
		}
		return int(step)
	}
	return def
}
