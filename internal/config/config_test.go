// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/winlaunch/winlaunch/internal/issue"
	"github.com/winlaunch/winlaunch/pkg/cmdline"
	"github.com/winlaunch/winlaunch/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func load(t *testing.T, opts LoadOptions) (*Config, string, error) {
	t.Helper()
	opts.IgnoreEnv = true
	return loadWithOptions(context.Background(), opts)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Escape.Mode != cmdline.ModeCompat {
		t.Errorf("Escape.Mode = %q, want compat", cfg.Escape.Mode)
	}
	if cfg.Random.Length != types.DefaultTokenLength {
		t.Errorf("Random.Length = %d, want %d", cfg.Random.Length, types.DefaultTokenLength)
	}
	if cfg.UI.Verbose {
		t.Error("UI.Verbose should default to false")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want auto", cfg.UI.ColorScheme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := load(t, LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty", path)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_CUEFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := writeFile(t, dir, "config.cue", `
escape: mode: "strict"
ui: color_scheme: "dark"
`)
	cfg, path, err := load(t, LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if path != want {
		t.Errorf("resolved path = %q, want %q", path, want)
	}
	if cfg.Escape.Mode != cmdline.ModeStrict {
		t.Errorf("Escape.Mode = %q, want strict", cfg.Escape.Mode)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("UI.ColorScheme = %q, want dark", cfg.UI.ColorScheme)
	}
	if cfg.Random.Length != types.DefaultTokenLength {
		t.Errorf("omitted random.length = %d, want default", cfg.Random.Length)
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "config.toml", `
[random]
length = 24

[ui]
verbose = true
`)
	cfg, path, err := load(t, LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("resolved path = %q", path)
	}
	if cfg.Random.Length != 24 {
		t.Errorf("Random.Length = %d, want 24", cfg.Random.Length)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
	if cfg.Escape.Mode != cmdline.ModeCompat {
		t.Errorf("Escape.Mode = %q, want compat", cfg.Escape.Mode)
	}
}

func TestLoad_CUEPreferredOverTOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "config.toml", "[random]\nlength = 30\n")
	writeFile(t, dir, "config.cue", "random: length: 12\n")

	cfg, path, err := load(t, LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if filepath.Base(path) != "config.cue" || cfg.Random.Length != 12 {
		t.Errorf("loaded %q with length %d, want config.cue with 12", path, cfg.Random.Length)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"bad mode", "config.cue", `escape: mode: "posix"`, "escape.mode"},
		{"length too large", "config.cue", `random: length: 5000`, "random.length"},
		{"unknown field", "config.cue", `shell: "bash"`, "shell"},
		{"cue syntax", "config.cue", `escape: {`, "config.cue"},
		{"toml bad scheme", "config.toml", "[ui]\ncolor_scheme = \"blue\"\n", "ui.color_scheme"},
		{"toml wrong type", "config.toml", "[random]\nlength = \"long\"\n", "random.length"},
		{"toml syntax", "config.toml", "[random\n", "config.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)
			_, _, err := load(t, LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) || ae.Issue != issue.ConfigLoadFailedId {
				t.Errorf("error is not a config-load ActionableError: %#v", err)
			}
		})
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", "[escape]\nmode = \"strict\"\n")
	cfg, got, err := load(t, LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if got != path || cfg.Escape.Mode != cmdline.ModeStrict {
		t.Errorf("load() = %+v from %q", cfg, got)
	}

	_, _, err = load(t, LoadOptions{ConfigFilePath: filepath.Join(dir, "missing.cue")})
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("missing explicit file error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := loadWithOptions(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.cue", "random: length: 12\n")
	t.Setenv("WINLAUNCH_RANDOM_LENGTH", "40")
	t.Setenv("WINLAUNCH_ESCAPE_MODE", "strict")
	t.Setenv("WINLAUNCH_UI_VERBOSE", "true")

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.Random.Length != 40 {
		t.Errorf("Random.Length = %d, want 40", cfg.Random.Length)
	}
	if cfg.Escape.Mode != cmdline.ModeStrict {
		t.Errorf("Escape.Mode = %q, want strict", cfg.Escape.Mode)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}

	cfg, _, err = loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir, IgnoreEnv: true})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.Random.Length != 12 {
		t.Errorf("IgnoreEnv: Random.Length = %d, want 12", cfg.Random.Length)
	}
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	t.Setenv("WINLAUNCH_ESCAPE_MODE", "posix")

	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("error = %v, want ErrInvalidConfig", err)
	}
	if !errors.Is(err, cmdline.ErrInvalidMode) {
		t.Errorf("error = %v, want ErrInvalidMode in chain", err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Issue != issue.InvalidEscapeModeId {
		t.Errorf("error does not link invalid-escape-mode: %#v", err)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Escape: EscapeConfig{Mode: cmdline.ModeStrict},
		Random: RandomConfig{Length: 16},
		UI:     UIConfig{Verbose: true, ColorScheme: ColorSchemeLight},
	}
	dir := t.TempDir()
	writeFile(t, dir, "config.cue", GenerateCUE(cfg))

	got, _, err := load(t, LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("load() error = %v\n%s", err, GenerateCUE(cfg))
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestGenerateTOML_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Random.Length = 99
	data, err := GenerateTOML(cfg)
	if err != nil {
		t.Fatalf("GenerateTOML() error = %v", err)
	}
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", string(data))

	got, _, err := load(t, LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("load() error = %v\n%s", err, data)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	opts := LoadOptions{ConfigDirPath: dir}

	path, created, err := CreateDefaultConfig(opts, false)
	if err != nil || !created {
		t.Fatalf("CreateDefaultConfig() = %q, %v, %v", path, created, err)
	}
	if err := os.WriteFile(path, []byte("random: length: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, created, err = CreateDefaultConfig(opts, false); err != nil || created {
		t.Errorf("second CreateDefaultConfig() created = %v, err = %v", created, err)
	}
	cfg, _, err := load(t, opts)
	if err != nil || cfg.Random.Length != 3 {
		t.Errorf("existing file was overwritten: %+v, %v", cfg, err)
	}

	if _, created, err = CreateDefaultConfig(opts, true); err != nil || !created {
		t.Errorf("forced CreateDefaultConfig() created = %v, err = %v", created, err)
	}
	cfg, _, _ = load(t, opts)
	if cfg.Random.Length != types.DefaultTokenLength {
		t.Errorf("forced write kept length %d", cfg.Random.Length)
	}
}

func TestSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.UI.ColorScheme = ColorSchemeDark
	if _, err := Save(cfg, LoadOptions{ConfigDirPath: dir}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, _, err := load(t, LoadOptions{ConfigDirPath: dir})
	if err != nil || got.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("after Save: %+v, %v", got, err)
	}

	cfg.Random.Length = 0
	if _, err := Save(cfg, LoadOptions{ConfigDirPath: dir}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Save(invalid) error = %v, want ErrInvalidConfig", err)
	}
}

func TestConfigDir_Override(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	got, err := ConfigDir()
	if err != nil || got != dir {
		t.Errorf("ConfigDir() = %q, %v, want %q", got, err, dir)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	if isWindowsOrDarwin() {
		t.Skip("XDG_CONFIG_HOME applies to Linux and other Unix hosts")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	got, err := ConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(base, AppName); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestFormatCUEError_NonCUE(t *testing.T) {
	t.Parallel()

	if formatCUEError(nil, "x") != nil {
		t.Error("formatCUEError(nil) != nil")
	}
	err := formatCUEError(errors.New("boom"), "config.cue")
	if err.Error() != "config.cue: boom" {
		t.Errorf("formatCUEError() = %q", err)
	}
}

func TestJoinFieldPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"#Config", "ui", "color_scheme"}, "ui.color_scheme"},
		{[]string{"random", "length"}, "random.length"},
	}
	for _, tt := range tests {
		if got := joinFieldPath(tt.in); got != tt.want {
			t.Errorf("joinFieldPath(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := checkFileSize(make([]byte, maxConfigFileSize), "a"); err != nil {
		t.Errorf("at limit: %v", err)
	}
	if err := checkFileSize(make([]byte, maxConfigFileSize+1), "a"); err == nil {
		t.Error("over limit accepted")
	}
}
