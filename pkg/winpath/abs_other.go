// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package winpath

import (
	"path/filepath"
	"strings"
)

// absolute returns the cleaned absolute native path. The extended-length
// form only exists on Windows.
func absolute(path string) (AbsolutePath, error) {
	if path == "" {
		return "", conversionError(path, "path is empty")
	}
	if strings.IndexByte(path, 0) >= 0 {
		return "", conversionError(path, "path contains a NUL character")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &PathConversionError{Path: path, Reason: "cannot resolve working directory", Err: err}
	}
	return AbsolutePath(abs), nil
}
