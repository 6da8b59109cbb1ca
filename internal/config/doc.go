// SPDX-License-Identifier: MPL-2.0

// Package config loads winlaunch settings with Viper.
//
// Settings live in config.cue or config.toml inside the platform config
// directory (%APPDATA%\winlaunch on Windows, ~/Library/Application
// Support/winlaunch on macOS, $XDG_CONFIG_HOME/winlaunch elsewhere). Both
// formats are validated against the embedded CUE schema (config_schema.cue).
// WINLAUNCH_* environment variables override file values.
package config
