// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/winlaunch/winlaunch/internal/config"
	"github.com/winlaunch/winlaunch/internal/issue"
)

// newConfigCommand creates the `winlaunch config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage winlaunch configuration",
		Long: `Manage winlaunch configuration.

Configuration is read from config.cue (or config.toml) in:
  - Windows: %APPDATA%\winlaunch
  - macOS: ~/Library/Application Support/winlaunch
  - Linux: $XDG_CONFIG_HOME/winlaunch (default ~/.config/winlaunch)

WINLAUNCH_ESCAPE_MODE, WINLAUNCH_RANDOM_LENGTH, WINLAUNCH_UI_VERBOSE and
WINLAUNCH_UI_COLOR_SCHEME override file values.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show which configuration file is used",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return showConfigPath(app)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config.cue",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, created, err := config.CreateDefaultConfig(config.LoadOptions{}, force)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(app.stdout, "%s %s\n", SubtitleStyle.Render("Config already exists:"), path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created"), path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config.cue")
	cfgCmd.AddCommand(initCmd)

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration as CUE or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadStrict(cmd.Context(), app)
			if err != nil {
				return err
			}
			switch format {
			case config.CUEExt:
				fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			case config.TOMLExt:
				out, err := config.GenerateTOML(cfg)
				if err != nil {
					return err
				}
				fmt.Fprint(app.stdout, string(out))
			default:
				return fmt.Errorf("unknown format %q (valid: cue, toml)", format)
			}
			return nil
		},
	}
	dumpCmd.Flags().StringVar(&format, "format", config.CUEExt, "output format: cue or toml")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

// loadStrict reloads the configuration and returns load errors instead of
// falling back to the defaults.
func loadStrict(ctx context.Context, app *App) (*config.Config, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: app.opts.configFile})
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := loadStrict(ctx, app)
	if err != nil {
		return failedWith(err)
	}

	out := app.stdout
	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	source, err := app.Config.Source(config.LoadOptions{ConfigFilePath: app.opts.configFile})
	switch {
	case err != nil || source == "":
		fmt.Fprintf(out, "%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	default:
		fmt.Fprintf(out, "%s: %s\n", KeyStyle.Render("Config file"), source)
	}
	fmt.Fprintln(out)

	rows := []struct{ key, value string }{
		{"escape.mode", cfg.Escape.Mode.String()},
		{"random.length", cfg.Random.Length.String()},
		{"ui.verbose", fmt.Sprint(cfg.UI.Verbose)},
		{"ui.color_scheme", cfg.UI.ColorScheme.String()},
	}
	for _, r := range rows {
		fmt.Fprintf(out, "%s: %s\n", KeyStyle.Render(r.key), SuccessStyle.Render(r.value))
	}
	return nil
}

func showConfigPath(app *App) error {
	source, err := app.Config.Source(config.LoadOptions{ConfigFilePath: app.opts.configFile})
	if err != nil {
		return failedWith(err)
	}
	if source != "" {
		fmt.Fprintln(app.stdout, source)
		return nil
	}
	dir, err := config.ConfigDir()
	if err != nil {
		return issue.WrapWithOperation(err, "locate config directory")
	}
	fmt.Fprintf(app.stdout, "%s %s\n",
		filepath.Join(dir, config.ConfigFileName+"."+config.CUEExt),
		SubtitleStyle.Render("(not present, using defaults)"))
	return nil
}
