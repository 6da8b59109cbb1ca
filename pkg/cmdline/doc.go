// SPDX-License-Identifier: MPL-2.0

// Package cmdline builds Windows command lines from argument vectors.
//
// Windows hands a child process a single command-line string; the child's C
// runtime splits it back into argv. Escape produces the launcher's historical
// encoding, which always doubles backslashes. EscapeStrict produces the
// encoding that CommandLineToArgvW reverses exactly. Split implements the
// runtime's splitting rules so callers can check what a child will see.
//
// This package does not do POSIX shell quoting.
package cmdline
