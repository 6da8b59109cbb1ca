// SPDX-License-Identifier: MPL-2.0

//go:build windows

package winpath

import (
	"golang.org/x/sys/windows"
)

func probe(abs AbsolutePath) (isDir, found bool) {
	p, err := windows.UTF16PtrFromString(abs.String())
	if err != nil {
		return false, false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil || attrs == windows.INVALID_FILE_ATTRIBUTES {
		return false, false
	}
	return attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0, true
}

func removeFile(path string, abs AbsolutePath) error {
	p, err := windows.UTF16PtrFromString(abs.String())
	if err != nil {
		return &DeleteError{Path: path, Err: err}
	}
	if err := windows.DeleteFile(p); err != nil {
		return &DeleteError{Path: path, Reason: "DeleteFileW failed", Err: err}
	}
	return nil
}
