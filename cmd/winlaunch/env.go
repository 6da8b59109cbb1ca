// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winlaunch/winlaunch/internal/issue"
)

func newEnvCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Read environment variables the way the launcher does",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get NAME",
		Short: "Print a variable; exit 1 when it is unset or empty",
		Long: `Print the value of NAME. Unset, empty and over-long (more than 32767
UTF-16 units) values are all reported as absent with exit status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			value, ok := app.Env.Get(args[0])
			if !ok {
				app.log.Debug("environment variable absent", "name", args[0])
				if app.opts.verbose {
					fmt.Fprintln(app.stderr, issue.NewErrorContext().
						WithOperation("read environment variable").
						WithResource(args[0]).
						WithIssue(issue.EnvVarNotFoundId).
						Build().
						Format(false))
				}
				return failed()
			}
			fmt.Fprintln(app.stdout, value)
			return nil
		},
	})
	return cmd
}
