// SPDX-License-Identifier: MPL-2.0

package winpath

import (
	"errors"
	"fmt"
)

var (
	// ErrPathConversion is the sentinel error wrapped by PathConversionError.
	ErrPathConversion = errors.New("path conversion failed")
	// ErrShortPath is the sentinel error wrapped by ShortPathError.
	ErrShortPath = errors.New("short path conversion failed")
	// ErrDelete is the sentinel error wrapped by DeleteError.
	ErrDelete = errors.New("delete failed")
)

type (
	// PathConversionError is returned when a path cannot be turned into an
	// absolute path. Err carries the OS error when one was involved.
	PathConversionError struct {
		Path   string
		Reason string
		Err    error
	}

	// ShortPathError is returned when a path cannot be expressed in a form
	// short enough for CreateProcess.
	ShortPathError struct {
		Path   string
		Reason string
		Err    error
	}

	// DeleteError is returned when a converted path could not be deleted.
	// Err carries the OS error when one was involved.
	DeleteError struct {
		Path   string
		Reason string
		Err    error
	}
)

func conversionError(path, reason string) *PathConversionError {
	return &PathConversionError{Path: path, Reason: reason}
}

// Error implements the error interface.
func (e *PathConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %q to an absolute Windows path: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrPathConversion and the OS error, if any.
func (e *PathConversionError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrPathConversion, e.Err}
	}
	return []error{ErrPathConversion}
}

// Error implements the error interface.
func (e *ShortPathError) Error() string {
	msg := fmt.Sprintf("path=%q %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrShortPath and the OS error, if any.
func (e *ShortPathError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrShortPath, e.Err}
	}
	return []error{ErrShortPath}
}

// Error implements the error interface.
func (e *DeleteError) Error() string {
	msg := fmt.Sprintf("cannot delete %q", e.Path)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrDelete and the OS error, if any.
func (e *DeleteError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDelete, e.Err}
	}
	return []error{ErrDelete}
}

// Reasons reported inside PathConversionError.
var (
	errNotAbsolute      = errors.New("path is not absolute")
	errBadUNC           = errors.New("UNC path must name a server and a share")
	errComponentTooLong = errors.New("path component is longer than 255 characters")
	errInvalidChar      = errors.New(`path component contains one of <>:"|?* or a control character`)
)
