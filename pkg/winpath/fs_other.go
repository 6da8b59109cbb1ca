// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package winpath

import "os"

func probe(abs AbsolutePath) (isDir, found bool) {
	info, err := os.Stat(abs.String())
	if err != nil {
		return false, false
	}
	return info.IsDir(), true
}

func removeFile(path string, abs AbsolutePath) error {
	info, err := os.Lstat(abs.String())
	if err != nil {
		return &DeleteError{Path: path, Err: err}
	}
	if info.IsDir() {
		return &DeleteError{Path: path, Reason: "is a directory"}
	}
	if err := os.Remove(abs.String()); err != nil {
		return &DeleteError{Path: path, Err: err}
	}
	return nil
}
