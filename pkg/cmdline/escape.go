// SPDX-License-Identifier: MPL-2.0

package cmdline

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ModeCompat doubles every backslash and escapes every quote. Arguments
	// containing backslashes that are not followed by a quote do not survive
	// a round trip through the C runtime unchanged.
	ModeCompat Mode = "compat"
	// ModeStrict follows the CommandLineToArgvW rules exactly.
	ModeStrict Mode = "strict"
)

// ErrInvalidMode is the sentinel error wrapped by InvalidModeError.
var ErrInvalidMode = errors.New("invalid escape mode")

type (
	// Mode selects the argument escaping algorithm.
	Mode string

	// InvalidModeError is returned when a Mode value is not recognized.
	InvalidModeError struct {
		Value Mode
	}

	// EscapeFunc escapes a single argument.
	EscapeFunc func(string) string
)

// Error implements the error interface.
func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid escape mode %q (valid: compat, strict)", e.Value)
}

// Unwrap returns ErrInvalidMode for errors.Is() compatibility.
func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }

// String returns the string representation of the Mode.
func (m Mode) String() string { return string(m) }

// Validate returns an error if the Mode is not one of the defined modes.
// The zero value is accepted and means ModeCompat.
func (m Mode) Validate() error {
	switch m {
	case "", ModeCompat, ModeStrict:
		return nil
	default:
		return &InvalidModeError{Value: m}
	}
}

// Escaper returns the escaping function for the mode.
func (m Mode) Escaper() EscapeFunc {
	if m == ModeStrict {
		return EscapeStrict
	}
	return Escape
}

// Escape escapes an argument the way the launcher always has: the whole
// argument is quoted when it contains a space, every '"' becomes '\"' and
// every '\' becomes '\\'.
func Escape(arg string) string {
	hasSpace := strings.IndexByte(arg, ' ') >= 0

	var b strings.Builder
	b.Grow(len(arg) + 2)
	if hasSpace {
		b.WriteByte('"')
	}
	for i := 0; i < len(arg); i++ {
		switch c := arg[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
	}
	if hasSpace {
		b.WriteByte('"')
	}
	return b.String()
}

// EscapeStrict escapes an argument so that Split returns it unchanged:
//
//   - a run of backslashes is doubled only when it precedes a '"' or the
//     closing quote;
//   - every '"' is preceded by a backslash;
//   - the argument is quoted when it is empty or contains a space or a tab.
func EscapeStrict(arg string) string {
	if arg == "" {
		return `""`
	}

	needsBackslash, hasSpace := scanArg(arg)
	if !needsBackslash && !hasSpace {
		return arg
	}
	if !needsBackslash {
		return `"` + arg + `"`
	}

	b := make([]byte, 0, len(arg)+8)
	if hasSpace {
		b = append(b, '"')
	}
	slashes := 0
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch c {
		case '\\':
			slashes++
		case '"':
			for ; slashes > 0; slashes-- {
				b = append(b, '\\')
			}
			b = append(b, '\\')
		default:
			slashes = 0
		}
		b = append(b, c)
	}
	if hasSpace {
		for ; slashes > 0; slashes-- {
			b = append(b, '\\')
		}
		b = append(b, '"')
	}
	return string(b)
}

// scanArg reports whether s holds a character that needs a backslash escape
// and whether it holds whitespace that requires quoting.
func scanArg(s string) (needsBackslash, hasSpace bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			needsBackslash = true
		case ' ', '\t':
			hasSpace = true
		}
	}
	return needsBackslash, hasSpace
}

// Join escapes every argument with the mode's escaper and joins them with
// single spaces.
func Join(args []string, mode Mode) string {
	escape := mode.Escaper()
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = escape(arg)
	}
	return strings.Join(parts, " ")
}

// RoundTrips reports whether arg survives being escaped with mode and split
// back by the C runtime.
func RoundTrips(arg string, mode Mode) bool {
	got := Split(mode.Escaper()(arg))
	return len(got) == 1 && got[0] == arg
}
