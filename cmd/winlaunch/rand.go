// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winlaunch/winlaunch/internal/issue"
	"github.com/winlaunch/winlaunch/pkg/types"
)

func newRandCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rand [N]",
		Short: "Print a random alphanumeric token",
		Long: `Print a random token of N characters drawn from A-Z, a-z and 0-9.
Without N the configured random.length is used. Tokens are meant for
temporary file names, not secrets.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			length := app.settings().Random.Length
			if len(args) == 1 {
				n, err := types.ParseTokenLength(args[0])
				if err != nil {
					return err
				}
				length = n
			}
			token, err := app.Tokens.Token(length.Int())
			if err != nil {
				return failedWith(issue.WrapWithContext(err, "generate token", length.String()+" characters"))
			}
			fmt.Fprintln(app.stdout, token)
			return nil
		},
	}
}
