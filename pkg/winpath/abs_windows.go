// SPDX-License-Identifier: MPL-2.0

//go:build windows

package winpath

import (
	"errors"
	"strings"

	"golang.org/x/sys/windows"

	"github.com/winlaunch/winlaunch/pkg/platform"
)

// absolute lets GetFullPathNameW resolve the path against the process state
// (including per-drive working directories) and then normalizes the result.
func absolute(path string) (AbsolutePath, error) {
	if path == "" || path == devNull || strings.IndexByte(path, 0) >= 0 {
		return Normalize(path, "")
	}
	p := strings.ReplaceAll(path, "/", `\`)
	if strings.HasPrefix(p, ExtendedPrefix) || strings.HasPrefix(p, DevicePrefix) {
		return Normalize(p, "")
	}
	if _, ok := platform.DeviceName(lastComponent(p)); ok {
		return Normalize(p, "")
	}

	full, err := fullPathName(p)
	if err != nil {
		return "", &PathConversionError{Path: path, Reason: "GetFullPathNameW failed", Err: err}
	}
	abs, err := Normalize(full, "")
	if err != nil {
		var convErr *PathConversionError
		if errors.As(err, &convErr) {
			convErr.Path = path
		}
		return "", err
	}
	return abs, nil
}

func fullPathName(path string) (string, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", err
	}
	buf := make([]uint16, MaxPath)
	for {
		n, err := windows.GetFullPathName(p, uint32(len(buf)), &buf[0], nil)
		if err != nil {
			return "", err
		}
		if n < uint32(len(buf)) {
			return windows.UTF16ToString(buf[:n]), nil
		}
		buf = make([]uint16, n)
	}
}
