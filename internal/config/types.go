// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/winlaunch/winlaunch/pkg/cmdline"
	"github.com/winlaunch/winlaunch/pkg/types"
)

const (
	// ColorSchemeAuto detects the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark styles.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light styles.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is wrapped by every validation failure of a loaded Config.
	ErrInvalidConfig = errors.New("invalid configuration")
)

type (
	// ColorScheme selects light or dark terminal styles.
	ColorScheme string

	// InvalidColorSchemeError is returned for an unknown ColorScheme.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError collects the field errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the winlaunch configuration.
	Config struct {
		Escape EscapeConfig `json:"escape" mapstructure:"escape" toml:"escape"`
		Random RandomConfig `json:"random" mapstructure:"random" toml:"random"`
		UI     UIConfig     `json:"ui" mapstructure:"ui" toml:"ui"`
	}

	// EscapeConfig controls argument escaping.
	EscapeConfig struct {
		Mode cmdline.Mode `json:"mode" mapstructure:"mode" toml:"mode"`
	}

	// RandomConfig controls random token generation.
	RandomConfig struct {
		Length types.TokenLength `json:"length" mapstructure:"length" toml:"length"`
	}

	// UIConfig controls terminal output.
	UIConfig struct {
		Verbose     bool        `json:"verbose" mapstructure:"verbose" toml:"verbose"`
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
	}
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Escape: EscapeConfig{Mode: cmdline.ModeCompat},
		Random: RandomConfig{Length: types.DefaultTokenLength},
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Validate checks every field. File values are already checked by the CUE
// schema; this catches environment overrides and programmatic values.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Escape.Mode.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("escape.mode: %w", err))
	}
	if ok, fieldErrs := c.Random.Length.IsValid(); !ok {
		for _, e := range fieldErrs {
			errs = append(errs, fmt.Errorf("random.length: %w", e))
		}
	}
	if ok, fieldErrs := c.UI.ColorScheme.IsValid(); !ok {
		for _, e := range fieldErrs {
			errs = append(errs, fmt.Errorf("ui.color_scheme: %w", e))
		}
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// String returns the string form of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid reports whether cs is a known scheme.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// GlamourStyle returns the glamour standard style name for cs.
func (cs ColorScheme) GlamourStyle() string {
	switch cs {
	case ColorSchemeDark:
		return "dark"
	case ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidConfig, errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig followed by the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
