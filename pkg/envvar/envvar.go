// SPDX-License-Identifier: MPL-2.0

// Package envvar reads and writes single process environment variables with
// the Windows size limit applied on every host.
//
// The environment is process-wide and unsynchronized; callers that mutate it
// from several goroutines must coordinate themselves.
package envvar

import (
	"log/slog"
	"os"
	"strings"
	"unicode/utf16"
)

// MaxValueLength is the largest environment variable value Windows
// supports, in UTF-16 code units.
const MaxValueLength = 32767

// Get returns the value of the named variable. It reports false when the
// variable is unset, set to the empty string, has an invalid name, or holds
// a value longer than MaxValueLength.
func Get(name string) (string, bool) {
	if !validName(name) {
		return "", false
	}
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", false
	}
	if utf16Len(value) > MaxValueLength {
		slog.Debug("environment value exceeds the Windows limit", "name", name, "limit", MaxValueLength)
		return "", false
	}
	return value, true
}

// Set assigns value to the named variable for the current process and
// reports whether it succeeded.
func Set(name, value string) bool {
	if !validName(name) || strings.IndexByte(value, 0) >= 0 {
		return false
	}
	if utf16Len(value) > MaxValueLength {
		return false
	}
	if err := os.Setenv(name, value); err != nil {
		slog.Debug("setenv failed", "name", name, "error", err)
		return false
	}
	return true
}

// Unset removes the named variable and reports whether it succeeded.
// Removing a variable that is not set succeeds.
func Unset(name string) bool {
	if !validName(name) {
		return false
	}
	return os.Unsetenv(name) == nil
}

// validName rejects names Windows cannot store: empty, containing '=' after
// the first character, or containing NUL. A leading '=' is allowed because
// Windows keeps per-drive directories under names like "=C:".
func validName(name string) bool {
	if name == "" || strings.IndexByte(name, 0) >= 0 {
		return false
	}
	return !strings.Contains(name[1:], "=")
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
