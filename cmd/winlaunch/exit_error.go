// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/winlaunch/winlaunch/pkg/types"
)

// ExitError carries a non-zero exit code out of a RunE handler. A nil Err
// means the handler already reported the failure.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// failed is the common "already reported, exit 1" result.
func failed() error {
	return &ExitError{Code: types.ExitFailure}
}

// failedWith exits 1 and lets the error handler print err.
func failedWith(err error) error {
	return &ExitError{Code: types.ExitFailure, Err: err}
}
