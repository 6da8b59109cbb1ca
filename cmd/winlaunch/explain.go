// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winlaunch/winlaunch/internal/issue"
)

func newExplainCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [ISSUE]",
		Short: "Explain an error and how to fix it",
		Long: `Render the guide for ISSUE. Without an argument, list the known issues.

Error messages that end in "Run 'winlaunch explain <name>'" point here.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return issue.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(app.stdout, TitleStyle.Render("Known issues"))
				for _, i := range issue.Values() {
					fmt.Fprintf(app.stdout, "  %s\n", KeyStyle.Render(i.Name()))
				}
				return nil
			}

			entry, ok := issue.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown issue %q (known: %s)", args[0], strings.Join(issue.Names(), ", "))
			}
			out, err := entry.Render(app.settings().UI.ColorScheme.GlamourStyle())
			if err != nil {
				return fmt.Errorf("rendering %s: %w", entry.Name(), err)
			}
			fmt.Fprint(app.stdout, out)
			return nil
		},
	}
}
