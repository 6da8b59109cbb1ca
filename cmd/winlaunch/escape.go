// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winlaunch/winlaunch/internal/issue"
	"github.com/winlaunch/winlaunch/pkg/cmdline"
)

// escapeMode picks strict when the flag is set, otherwise the configured mode.
func (a *App) escapeMode(strict bool) cmdline.Mode {
	if strict {
		return cmdline.ModeStrict
	}
	if m := a.settings().Escape.Mode; m != "" {
		return m
	}
	return cmdline.ModeCompat
}

func newEscapeCommand(app *App) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "escape [--strict] ARG...",
		Short: "Escape each argument for a Windows command line",
		Long: `Escape each argument for a Windows command line, one per output line.

The default "compat" mode quotes arguments containing spaces and doubles
every backslash, matching the historical launcher. "strict" follows the
CommandLineToArgvW rules so every argument survives the round trip.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			escape := app.escapeMode(strict).Escaper()
			for _, arg := range args {
				fmt.Fprintln(app.stdout, escape(arg))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "use CommandLineToArgvW-exact escaping")
	return cmd
}

func newCmdlineCommand(app *App) *cobra.Command {
	var (
		strict bool
		check  bool
	)
	cmd := &cobra.Command{
		Use:   "cmdline [--strict] [--check] -- ARG...",
		Short: "Join arguments into one Windows command line",
		Long: `Join arguments into the single command-line string CreateProcessW expects.

With --check, the line is parsed back with the C runtime rules and every
argument that would reach the child process changed is reported.`,
		RunE: func(_ *cobra.Command, args []string) error {
			mode := app.escapeMode(strict)
			fmt.Fprintln(app.stdout, cmdline.Join(args, mode))
			if !check {
				return nil
			}

			var broken []string
			for i, arg := range args {
				if cmdline.RoundTrips(arg, mode) {
					continue
				}
				app.log.Warn("argument does not round-trip", "index", i, "arg", arg, "mode", mode.String())
				broken = append(broken, arg)
			}
			if len(broken) == 0 {
				return nil
			}
			return failedWith(issue.NewErrorContext().
				WithOperation("preserve arguments").
				WithResource(fmt.Sprintf("%d of %d arguments", len(broken), len(args))).
				WithSuggestion("Use --strict to escape with the CommandLineToArgvW rules").
				WithIssue(issue.ArgumentRoundTripId).
				BuildError())
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "use CommandLineToArgvW-exact escaping")
	cmd.Flags().BoolVar(&check, "check", false, "verify that every argument survives the round trip")
	return cmd
}
