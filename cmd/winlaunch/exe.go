// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winlaunch/winlaunch/pkg/winpath"
)

func newExeCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exe",
		Short: "Add or strip the " + winpath.ExeExtension + " suffix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME...",
		Short: "Append " + winpath.ExeExtension + " unless already present",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintln(app.stdout, winpath.AddExeExtension(name))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "strip NAME...",
		Short: "Remove a trailing " + winpath.ExeExtension,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintln(app.stdout, winpath.StripExeExtension(name))
			}
			return nil
		},
	})
	return cmd
}
