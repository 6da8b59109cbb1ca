// SPDX-License-Identifier: MPL-2.0

package cmdline

import "strings"

// Split breaks a command-line body into arguments using the Microsoft C
// runtime rules:
//
//   - spaces and tabs outside quotes separate arguments;
//   - '"' toggles quoting, and '""' inside quotes yields a literal '"';
//   - 2N backslashes before '"' yield N backslashes and the quote is special;
//   - 2N+1 backslashes before '"' yield N backslashes and a literal '"';
//   - backslashes not followed by '"' are literal.
//
// The program name is not special-cased; pass only the argument portion.
func Split(cmdline string) []string {
	var (
		args     []string
		cur      strings.Builder
		inQuotes bool
		inArg    bool
	)

	for i := 0; i < len(cmdline); {
		c := cmdline[i]
		switch {
		case (c == ' ' || c == '\t') && !inQuotes:
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
			i++
		case c == '\\':
			n := 0
			for i < len(cmdline) && cmdline[i] == '\\' {
				n++
				i++
			}
			inArg = true
			if i < len(cmdline) && cmdline[i] == '"' {
				cur.WriteString(strings.Repeat(`\`, n/2))
				if n%2 == 1 {
					cur.WriteByte('"')
					i++
				}
				continue
			}
			cur.WriteString(strings.Repeat(`\`, n))
		case c == '"':
			inArg = true
			i++
			if inQuotes && i < len(cmdline) && cmdline[i] == '"' {
				cur.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		default:
			inArg = true
			cur.WriteByte(c)
			i++
		}
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args
}
