// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package winpath

import "errors"

// shortPathName fails on hosts without 8.3 file names.
func shortPathName(path string) (string, error) {
	return "", &ShortPathError{Path: path, Reason: "cannot be shortened on this platform", Err: errors.ErrUnsupported}
}
