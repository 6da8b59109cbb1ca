// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winlaunch/winlaunch/internal/issue"
	"github.com/winlaunch/winlaunch/pkg/diag"
	"github.com/winlaunch/winlaunch/pkg/platform"
	"github.com/winlaunch/winlaunch/pkg/winpath"
)

func newAbspathCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "abspath PATH...",
		Short: "Print the extended-length absolute form of each path",
		Long: `Print the extended-length absolute form of each path, one per line.

Relative paths resolve against the current directory. Forward slashes become
backslashes and /dev/null becomes NUL. Conversion failures are fatal.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, p := range args {
				abs, err := app.Paths.Absolute(p)
				if err != nil {
					app.reportConversion(p, err)
					return failed()
				}
				fmt.Fprintln(app.stdout, abs.String())
			}
			return nil
		},
	}
}

// reportConversion prints the fatal conversion line and, when verbose, the
// reason and catalog hint.
func (a *App) reportConversion(path string, err error) {
	a.Reporter.PrintError("Couldn't convert %s to absolute Windows path.", path)
	a.log.Debug("path conversion failed", "path", path, "error", err)
	if a.opts.verbose {
		ae := issue.NewErrorContext().
			WithOperation("convert path").
			WithResource(path).
			WithIssue(issue.PathConversionFailedId).
			Wrap(err).
			Build()
		fmt.Fprintln(a.stderr, ae.Format(true))
	}
}

func newExistsCommand(app *App) *cobra.Command {
	var dir bool
	cmd := &cobra.Command{
		Use:   "exists [--dir] PATH",
		Short: "Exit 0 when PATH is an existing file (or directory with --dir)",
		Long: `Exit 0 when PATH names an existing regular file, or with --dir an existing
directory or directory junction. Exit 1 otherwise, silently. A path that
cannot be converted is fatal and reported like abspath does.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			check, kind := app.Paths.FileExists, "file"
			if dir {
				check, kind = app.Paths.DirectoryExists, "directory"
			}
			ok, err := check(args[0])
			if err != nil {
				app.reportConversion(args[0], err)
				return failed()
			}
			app.log.Debug("existence check", "path", args[0], "dir", dir, "exists", ok)
			if ok {
				return nil
			}
			if app.opts.verbose {
				fmt.Fprintln(app.stderr, issue.NewErrorContext().
					WithOperation("find "+kind).
					WithResource(args[0]).
					WithIssue(issue.PathNotFoundId).
					Build().
					Format(false))
			}
			return failed()
		},
	}
	cmd.Flags().BoolVar(&dir, "dir", false, "test for a directory instead of a file")
	return cmd
}

func newRmCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm PATH...",
		Short: "Delete files through their extended-length paths",
		Long: `Delete each file through its extended-length path, so paths longer than
MAX_PATH work. Directories are never removed. Every path is attempted and
the exit status is 1 when any deletion failed. A path that cannot be
converted is fatal and stops before the remaining paths.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var failures int
			for _, p := range args {
				err := app.Paths.DeleteFile(p)
				if err == nil {
					app.log.Debug("deleted", "path", p)
					continue
				}
				var convErr *winpath.PathConversionError
				if errors.As(err, &convErr) {
					app.reportConversion(p, err)
					return failed()
				}
				failures++
				app.log.Debug("delete failed", "path", p, "error", diag.ErrorMessage(err))
				app.Reporter.PrintError("Couldn't delete %s.", p)
			}
			if failures > 0 {
				if app.opts.verbose {
					fmt.Fprintln(app.stderr, issue.NewErrorContext().
						WithOperation("delete files").
						WithResource(fmt.Sprintf("%d of %d paths", failures, len(args))).
						WithIssue(issue.DeleteFailedId).
						Build().
						Format(false))
				}
				return failed()
			}
			return nil
		},
	}
}

func newShortpathCommand(app *App) *cobra.Command {
	var exec bool
	cmd := &cobra.Command{
		Use:   "shortpath [--exec] PATH",
		Short: "Shorten a path to fit MAX_PATH",
		Long: `Shorten an absolute path to its 8.3 form when it does not fit in MAX_PATH.

With --exec the result is quoted and ready to be the first token of a
CreateProcessW command line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			convert, op := app.Paths.ShortPath, "shorten path"
			if exec {
				convert, op = app.Paths.ExecutablePath, "prepare executable path"
			}
			out, err := convert(args[0])
			if err != nil {
				return failedWith(shortPathError(op, args[0], err))
			}
			fmt.Fprintln(app.stdout, out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&exec, "exec", false, "quote the result for CreateProcessW")
	return cmd
}

func shortPathError(op, path string, err error) error {
	ctx := issue.NewErrorContext().
		WithOperation(op).
		WithResource(path).
		WithIssue(issue.ShortPathFailedId).
		Wrap(err)
	var spe *winpath.ShortPathError
	switch {
	case errors.As(err, &spe) && spe.Err != nil && !platform.IsWindows():
		ctx = ctx.WithSuggestion("Short names are only resolved on Windows; run this command there")
	case errors.As(err, &spe) && spe.Err != nil:
		ctx = ctx.WithSuggestion("Check that the path exists; Windows only has short names for existing files")
	default:
		ctx = ctx.WithSuggestion(`Pass a normalized absolute path such as C:\tools\app.exe`)
	}
	return ctx.BuildError()
}
