// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/winlaunch/winlaunch/internal/issue"
	"github.com/winlaunch/winlaunch/pkg/cmdline"
	"github.com/winlaunch/winlaunch/pkg/platform"
)

const (
	// AppName names the config directory and the environment prefix.
	AppName = "winlaunch"
	// EnvPrefix prefixes environment overrides, e.g. WINLAUNCH_ESCAPE_MODE.
	EnvPrefix = "WINLAUNCH"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// CUEExt is the extension of the preferred config format.
	CUEExt = "cue"
	// TOMLExt is the extension of the alternative config format.
	TOMLExt = "toml"
)

// ErrConfigNotFound is returned when an explicitly requested config file is missing.
var ErrConfigNotFound = errors.New("config file not found")

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the winlaunch configuration directory: %APPDATA% on
// Windows, ~/Library/Application Support on macOS, and $XDG_CONFIG_HOME
// (default ~/.config) elsewhere.
//
//nolint:revive // ConfigDir reads better than Dir at call sites
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var base string
	switch runtime.GOOS {
	case platform.Windows:
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, AppName), nil
}

// loadWithOptions loads defaults, then the config file, then environment
// overrides. It returns the file used, or "" when none was found.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("escape.mode", string(defaults.Escape.Mode))
	v.SetDefault("random.length", int(defaults.Random.Length))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", string(defaults.UI.ColorScheme))

	if !opts.IgnoreEnv {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	path, explicit, err := findConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := mergeConfigFile(v, path); err != nil {
			suggestions := []string{
				"Verify the values match the schema shown by 'winlaunch config show'",
			}
			if explicit {
				suggestions = append(suggestions, "Check the path passed with --config")
			}
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestions(suggestions...).
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		id := issue.ConfigLoadFailedId
		if cfg.Escape.Mode.Validate() != nil {
			id = issue.InvalidEscapeModeId
		}
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Check WINLAUNCH_* environment variables, they override the file").
			WithIssue(id).
			Wrap(err).
			BuildError()
	}
	return &cfg, path, nil
}

// findConfigFile resolves the file to load. explicit reports whether the
// path came from LoadOptions.ConfigFilePath.
func findConfigFile(opts LoadOptions) (path string, explicit bool, err error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", true, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Run 'winlaunch config init' to create a default file").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(ErrConfigNotFound).
				BuildError()
		}
		return opts.ConfigFilePath, true, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		if dir, err = ConfigDir(); err != nil {
			return "", false, err
		}
	}
	for _, ext := range []string{CUEExt, TOMLExt} {
		candidate := filepath.Join(dir, ConfigFileName+"."+ext)
		if fileExists(candidate) {
			return candidate, false, nil
		}
	}
	return "", false, nil
}

// mergeConfigFile validates path against the #Config schema and merges it
// into v, keeping defaults for omitted keys.
func mergeConfigFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := checkFileSize(data, path); err != nil {
		return err
	}

	var values map[string]any
	if strings.EqualFold(filepath.Ext(path), "."+TOMLExt) {
		values, err = decodeTOML(data, path)
	} else {
		values, err = decodeCUE(data, path)
	}
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(values); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func compileSchema(ctx *cue.Context) (cue.Value, error) {
	schema := ctx.CompileString(configSchema)
	if schema.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile config schema: %w", schema.Err())
	}
	return schema.LookupPath(cue.ParsePath("#Config")), nil
}

// decodeCUE compiles a CUE config, unifies it with #Config and decodes the
// result. Fields are optional, so validation does not require concreteness.
func decodeCUE(data []byte, path string) (map[string]any, error) {
	ctx := cuecontext.New()
	schema, err := compileSchema(ctx)
	if err != nil {
		return nil, err
	}

	user := ctx.CompileBytes(data, cue.Filename(path))
	if user.Err() != nil {
		return nil, formatCUEError(user.Err(), path)
	}
	unified := schema.Unify(user)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return nil, formatCUEError(err, path)
	}

	var values map[string]any
	if err := unified.Decode(&values); err != nil {
		return nil, formatCUEError(err, path)
	}
	return values, nil
}

// decodeTOML decodes a TOML config and checks it against the same #Config
// schema the CUE format uses.
func decodeTOML(data []byte, path string) (map[string]any, error) {
	var values map[string]any
	if err := toml.Unmarshal(data, &values); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %w", path, row, col, err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	ctx := cuecontext.New()
	schema, err := compileSchema(ctx)
	if err != nil {
		return nil, err
	}
	encoded := ctx.Encode(values)
	if encoded.Err() != nil {
		return nil, formatCUEError(encoded.Err(), path)
	}
	if err := schema.Unify(encoded).Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err, path)
	}
	return values, nil
}

// fileExists reports whether path names a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes config.cue with the defaults into the config
// directory. An existing file is kept unless force is set. It returns the
// file path and whether it was written.
func CreateDefaultConfig(opts LoadOptions, force bool) (string, bool, error) {
	dir, err := targetDir(opts)
	if err != nil {
		return "", false, err
	}
	path := filepath.Join(dir, ConfigFileName+"."+CUEExt)
	if !force && fileExists(path) {
		return path, false, nil
	}
	if err := writeConfigFile(dir, path, GenerateCUE(DefaultConfig())); err != nil {
		return "", false, err
	}
	return path, true, nil
}

// Save writes cfg as config.cue into the config directory.
func Save(cfg *Config, opts LoadOptions) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	dir, err := targetDir(opts)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ConfigFileName+"."+CUEExt)
	if err := writeConfigFile(dir, path, GenerateCUE(cfg)); err != nil {
		return "", err
	}
	return path, nil
}

func targetDir(opts LoadOptions) (string, error) {
	if opts.ConfigDirPath != "" {
		return opts.ConfigDirPath, nil
	}
	return ConfigDir()
}

func writeConfigFile(dir, path, content string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateCUE renders cfg in the config.cue format.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder
	sb.WriteString("// winlaunch configuration\n")
	sb.WriteString("// Environment variables WINLAUNCH_<SECTION>_<KEY> override these values.\n\n")

	mode := cfg.Escape.Mode
	if mode == "" {
		mode = cmdline.ModeCompat
	}
	sb.WriteString("escape: {\n")
	fmt.Fprintf(&sb, "\tmode: %q\n", mode.String())
	sb.WriteString("}\n\n")

	sb.WriteString("random: {\n")
	fmt.Fprintf(&sb, "\tlength: %d\n", cfg.Random.Length.Int())
	sb.WriteString("}\n\n")

	sb.WriteString("ui: {\n")
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	sb.WriteString("}\n")
	return sb.String()
}

// GenerateTOML renders cfg in the config.toml format.
func GenerateTOML(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return out, nil
}
