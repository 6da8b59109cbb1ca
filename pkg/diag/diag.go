// SPDX-License-Identifier: MPL-2.0

// Package diag reports launcher failures in the fixed format callers parse:
// a "LAUNCHER ERROR: " prefixed line on stderr, and exit status 1 for fatal
// errors.
package diag

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
)

// Prefix starts every reported error line.
const Prefix = "LAUNCHER ERROR: "

// FatalExitCode is the process status used by Die.
const FatalExitCode = 1

// Reporter writes diagnostics to Out and terminates through Exit.
type Reporter struct {
	Out  io.Writer
	Exit func(int)
}

// NewReporter returns a Reporter writing to stderr and exiting the process.
func NewReporter() *Reporter {
	return &Reporter{Out: os.Stderr, Exit: os.Exit}
}

// PrintError writes one prefixed line. A trailing newline in the formatted
// message is not duplicated.
func (r *Reporter) PrintError(format string, args ...any) {
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	_, _ = fmt.Fprintf(r.out(), "%s%s\n", Prefix, msg)
}

// Die reports the message and exits with FatalExitCode.
func (r *Reporter) Die(format string, args ...any) {
	r.PrintError(format, args...)
	if r.Exit != nil {
		r.Exit(FatalExitCode)
		return
	}
	os.Exit(FatalExitCode)
}

func (r *Reporter) out() io.Writer {
	if r.Out == nil {
		return os.Stderr
	}
	return r.Out
}

// ErrorMessage renders err for a diagnostic line. OS error numbers are shown
// as "(error: N): <system message>"; nil yields "".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == 0 {
			return ""
		}
		return fmt.Sprintf("(error: %d): %s", uintptr(errno), systemMessage(errno))
	}
	return err.Error()
}

// WithCause prefixes ErrorMessage(err) with cause. It returns "" when err is
// nil.
func WithCause(cause string, err error) string {
	msg := ErrorMessage(err)
	if msg == "" {
		return ""
	}
	return cause + ": " + msg
}
