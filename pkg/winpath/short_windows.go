// SPDX-License-Identifier: MPL-2.0

//go:build windows

package winpath

import (
	"strings"

	"golang.org/x/sys/windows"
)

// shortPathName asks GetShortPathNameW for the 8.3 form of an absolute,
// normalized path that is at least MAX_PATH long.
func shortPathName(path string) (string, error) {
	long, err := windows.UTF16PtrFromString(ExtendedPrefix + path)
	if err != nil {
		return "", &ShortPathError{Path: path, Reason: "cannot be encoded as UTF-16", Err: err}
	}

	size, err := windows.GetShortPathName(long, nil, 0)
	if size == 0 {
		return "", &ShortPathError{Path: path, Reason: "GetShortPathName failed", Err: err}
	}
	if size >= maxShortPath {
		return "", &ShortPathError{Path: path, Reason: "GetShortPathName would not shorten the path enough"}
	}

	buf := make([]uint16, maxShortPath)
	n, err := windows.GetShortPathName(long, &buf[0], uint32(len(buf)))
	if n == 0 {
		return "", &ShortPathError{Path: path, Reason: "GetShortPathName failed", Err: err}
	}
	// The result keeps the `\\?\` prefix because the input had it.
	return strings.TrimPrefix(windows.UTF16ToString(buf[:n]), ExtendedPrefix), nil
}
