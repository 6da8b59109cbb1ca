// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the launcher helpers and
// the winlaunch CLI. It imports only the standard library.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Process exit statuses used by winlaunch.
const (
	ExitSuccess ExitCode = 0
	// ExitFailure is returned for fatal launcher errors and for negative
	// answers from predicate commands such as "exists".
	ExitFailure ExitCode = 1
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode is a process exit status. Windows accepts any 32-bit value,
	// but winlaunch only emits codes in 0-255 so scripts on every host can
	// read them.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside 0-255.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode for errors.Is compatibility.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside 0-255.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess reports whether c is ExitSuccess.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the decimal form of c.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
