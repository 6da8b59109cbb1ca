// SPDX-License-Identifier: MPL-2.0

package winpath

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	const cwd = `C:\work\repo`

	tests := []struct {
		name string
		path string
		cwd  string
		want AbsolutePath
	}{
		{"drive absolute", `C:\tools\launcher.exe`, cwd, `\\?\C:\tools\launcher.exe`},
		{"forward slashes", `c:/tools/bin`, cwd, `\\?\C:\tools\bin`},
		{"drive root", `D:\`, cwd, `\\?\D:\`},
		{"relative", `bazel-bin\app`, cwd, `\\?\C:\work\repo\bazel-bin\app`},
		{"relative with slashes", "a/b", cwd, `\\?\C:\work\repo\a\b`},
		{"dot segments", `.\a\.\b\..\c`, cwd, `\\?\C:\work\repo\a\c`},
		{"dotdot above root", `..\..\..\x`, cwd, `\\?\C:\x`},
		{"current dir", ".", cwd, `\\?\C:\work\repo`},
		{"rooted", `\temp\x`, cwd, `\\?\C:\temp\x`},
		{"drive relative same drive", `C:sub`, cwd, `\\?\C:\work\repo\sub`},
		{"duplicate separators", `C:\\a\\\b`, cwd, `\\?\C:\a\b`},
		{"unc", `\\srv\share\dir\f.txt`, cwd, `\\?\UNC\srv\share\dir\f.txt`},
		{"unc share root", `//srv/share`, cwd, `\\?\UNC\srv\share`},
		{"relative to unc cwd", `x\y`, `\\srv\share\base`, `\\?\UNC\srv\share\base\x\y`},
		{"extended cwd", `x`, `\\?\C:\long\cwd`, `\\?\C:\long\cwd\x`},
		{"already extended", `\\?\C:\a\..\b`, cwd, `\\?\C:\a\..\b`},
		{"extended with slashes", `//?/C:/a`, cwd, `\\?\C:\a`},
		{"device namespace", `\\.\pipe\name`, cwd, `\\.\pipe\name`},
		{"dev null", "/dev/null", cwd, "NUL"},
		{"nul", "nul", cwd, "NUL"},
		{"device in directory", `C:\dir\con.txt`, cwd, "CON"},
		{"no cwd needed for absolute", `C:\x`, "", `\\?\C:\x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tt.path, tt.cwd)
			if err != nil {
				t.Fatalf("Normalize(%q, %q) error = %v", tt.path, tt.cwd, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.path, tt.cwd, got, tt.want)
			}
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		cwd  string
	}{
		{"empty", "", `C:\`},
		{"nul byte", "a\x00b", `C:\`},
		{"relative without cwd", `a\b`, ""},
		{"relative with relative cwd", `a\b`, `work`},
		{"rooted without cwd", `\a`, ""},
		{"drive relative other drive", `D:x`, `C:\work`},
		{"drive relative without cwd", `D:x`, ""},
		{"bad unc", `\\srv`, `C:\`},
		{"empty unc server", `\\\share`, `C:\`},
		{"invalid character", `C:\a\b?c`, `C:\`},
		{"pipe character", `C:\a|b`, `C:\`},
		{"control character", "C:\\a\tb", `C:\`},
		{"stray colon", `C:\a:b`, `C:\`},
		{"component too long", `C:\` + strings.Repeat("x", 256), `C:\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tt.path, tt.cwd)
			if err == nil {
				t.Fatalf("Normalize(%q, %q) = %q, want error", tt.path, tt.cwd, got)
			}
			if !errors.Is(err, ErrPathConversion) {
				t.Errorf("error %v does not wrap ErrPathConversion", err)
			}
			var convErr *PathConversionError
			if !errors.As(err, &convErr) {
				t.Fatalf("error %T is not *PathConversionError", err)
			}
			if convErr.Path != tt.path {
				t.Errorf("PathConversionError.Path = %q, want %q", convErr.Path, tt.path)
			}
		})
	}
}

func TestNormalize_LongPathsAllowed(t *testing.T) {
	t.Parallel()

	seg := strings.Repeat("d", 200)
	long := `C:\` + seg + `\` + seg + `\` + seg
	got, err := Normalize(long, "")
	if err != nil {
		t.Fatalf("Normalize(long) error = %v", err)
	}
	if want := AbsolutePath(ExtendedPrefix + long); got != want {
		t.Errorf("Normalize(long) = %q, want %q", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`a\b`, `C:\x\..\y`, `\\srv\share\z`, `\root`} {
		first, err := Normalize(in, `C:\cwd`)
		if err != nil {
			t.Fatalf("Normalize(%q) error = %v", in, err)
		}
		second, err := Normalize(first.String(), `E:\elsewhere`)
		if err != nil {
			t.Fatalf("Normalize(%q) error = %v", first, err)
		}
		if first != second {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, first, second)
		}
	}
}

func TestAbsolutePath_Native(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       AbsolutePath
		want     string
		extended bool
	}{
		{`\\?\C:\a\b`, `C:\a\b`, true},
		{`\\?\UNC\srv\share\x`, `\\srv\share\x`, true},
		{"NUL", "NUL", false},
		{"/home/user", "/home/user", false},
	}

	for _, tt := range tests {
		if got := tt.in.Native(); got != tt.want {
			t.Errorf("AbsolutePath(%q).Native() = %q, want %q", tt.in, got, tt.want)
		}
		if got := tt.in.IsExtended(); got != tt.extended {
			t.Errorf("AbsolutePath(%q).IsExtended() = %v, want %v", tt.in, got, tt.extended)
		}
	}
}

func TestPathConversionError_Message(t *testing.T) {
	t.Parallel()

	cause := errors.New("access denied")
	err := &PathConversionError{Path: `C:\x`, Reason: "GetFullPathNameW failed", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if !errors.Is(err, ErrPathConversion) {
		t.Error("errors.Is(err, ErrPathConversion) = false, want true")
	}
	want := `cannot convert "C:\\x" to an absolute Windows path: GetFullPathNameW failed: access denied`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
