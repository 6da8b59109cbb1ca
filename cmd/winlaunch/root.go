// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/winlaunch/winlaunch/internal/config"
	"github.com/winlaunch/winlaunch/internal/issue"
	"github.com/winlaunch/winlaunch/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the winlaunch command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "winlaunch",
		Short: "Windows launcher helpers: argument escaping, long paths, environment",
		Long: TitleStyle.Render("winlaunch") + SubtitleStyle.Render(" - Windows launcher helpers") + `

winlaunch exposes the routines a process launcher needs on Windows:
rebuilding a command line from arguments, converting paths to the
extended-length \\?\ form, probing and deleting files through it, and
reading environment variables within the Windows limits.

Fatal errors are printed as "LAUNCHER ERROR: <message>" and exit with status 1.

` + SubtitleStyle.Render("Examples:") + `
  winlaunch escape "C:\Program Files\app" --flag
  winlaunch cmdline --strict --check -- a "b c" 'd"e'
  winlaunch abspath ..\bin\tool.exe
  winlaunch explain path-conversion-failed`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app.initRootConfig(cmd.Context())
			return nil
		},
	}
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	root.PersistentFlags().BoolVarP(&app.opts.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&app.opts.configFile, "config", "", "config file (.cue or .toml; default is <config dir>/winlaunch/config.cue)")

	root.AddCommand(
		newEscapeCommand(app),
		newCmdlineCommand(app),
		newAbspathCommand(app),
		newExistsCommand(app),
		newRmCommand(app),
		newShortpathCommand(app),
		newExeCommand(app),
		newEnvCommand(app),
		newRandCommand(app),
		newConfigCommand(app),
		newExplainCommand(app),
	)
	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs winlaunch and exits with the command's status.
func Execute() {
	app := NewApp(Dependencies{})
	app.installLogger = true
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		os.Exit(int(exitStatus(os.Stderr, err)))
	}
}

// exitStatus maps a command error to the process exit status. Codes outside
// 0-255 are reported to w and replaced by ExitFailure.
func exitStatus(w io.Writer, err error) types.ExitCode {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		return types.ExitFailure
	}
	if verr := exitErr.Code.Validate(); verr != nil {
		fmt.Fprintln(w, WarningStyle.Render("Warning: ")+verr.Error())
		return types.ExitFailure
	}
	return exitErr.Code
}

// handleError prints err unless the handler already reported it.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		fmt.Fprintln(w, ErrorStyle.Render("Error: ")+ae.Format(a.opts.verbose))
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// initRootConfig loads the configuration and installs the logger. A broken
// config file is reported as a warning and the defaults are used.
func (a *App) initRootConfig(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.opts.configFile})
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.opts.verbose))
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg
	if !a.opts.verbose {
		a.opts.verbose = cfg.UI.Verbose
	}

	level := log.WarnLevel
	if a.opts.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(a.stderr, log.Options{
		Prefix: "winlaunch",
		Level:  level,
	})
	a.log = slog.New(logger)
	if a.installLogger {
		slog.SetDefault(a.log)
	}
}

// formatErrorForDisplay uses ActionableError.Format when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
