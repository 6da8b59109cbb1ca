// SPDX-License-Identifier: MPL-2.0

package winpath

import "testing"

func TestStripExeExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"foo/bar/bin.exe", "foo/bar/bin"},
		{"foo/bar/bin", "foo/bar/bin"},
		{"bin.EXE", "bin.EXE"},
		{".exe", ""},
		{"exe", "exe"},
		{"", ""},
		{"a", "a"},
		{"app.exe.exe", "app.exe"},
	}

	for _, tt := range tests {
		if got := StripExeExtension(tt.in); got != tt.want {
			t.Errorf("StripExeExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddExeExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"foo/bar", "foo/bar.exe"},
		{"foo/bar.exe", "foo/bar.exe"},
		{"", ".exe"},
		{"tool.EXE", "tool.EXE.exe"},
	}

	for _, tt := range tests {
		if got := AddExeExtension(tt.in); got != tt.want {
			t.Errorf("AddExeExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExeExtension_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"", "x", "a/b", "a/b.exe", "c.exe.exe", `C:\bin\tool`} {
		if got, want := StripExeExtension(AddExeExtension(p)), StripExeExtension(p); got != want {
			t.Errorf("Strip(Add(%q)) = %q, want %q", p, got, want)
		}
	}
}
