// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Bounds for TokenLength.
const (
	MinTokenLength TokenLength = 1
	MaxTokenLength TokenLength = 4096
	// DefaultTokenLength matches the length the launcher uses for its
	// temporary directory names.
	DefaultTokenLength TokenLength = 8
)

// ErrInvalidTokenLength is the sentinel error wrapped by InvalidTokenLengthError.
var ErrInvalidTokenLength = errors.New("invalid token length")

type (
	// TokenLength is the number of characters in a generated random token.
	TokenLength int

	// InvalidTokenLengthError is returned when a TokenLength is outside
	// MinTokenLength..MaxTokenLength.
	InvalidTokenLengthError struct {
		Value TokenLength
	}
)

// ParseTokenLength parses a decimal token length and validates its range.
func ParseTokenLength(s string) (TokenLength, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidTokenLength, s)
	}
	l := TokenLength(n)
	if ok, errs := l.IsValid(); !ok {
		return 0, errs[0]
	}
	return l, nil
}

// IsValid reports whether l is within MinTokenLength..MaxTokenLength.
func (l TokenLength) IsValid() (bool, []error) {
	if l < MinTokenLength || l > MaxTokenLength {
		return false, []error{&InvalidTokenLengthError{Value: l}}
	}
	return true, nil
}

// Int returns l as an int.
func (l TokenLength) Int() int { return int(l) }

// String returns the decimal form of l.
func (l TokenLength) String() string { return strconv.Itoa(int(l)) }

// Error implements the error interface.
func (e *InvalidTokenLengthError) Error() string {
	return fmt.Sprintf("invalid token length %d (must be in range %d-%d)", e.Value, MinTokenLength, MaxTokenLength)
}

// Unwrap returns ErrInvalidTokenLength for errors.Is compatibility.
func (e *InvalidTokenLengthError) Unwrap() error { return ErrInvalidTokenLength }
