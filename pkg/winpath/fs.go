// SPDX-License-Identifier: MPL-2.0

package winpath

import (
	"log/slog"

	"github.com/winlaunch/winlaunch/pkg/diag"
)

// StatFile reports whether path names an existing entry that is not a
// directory. The error is non-nil only when path cannot be converted, and is
// then a *PathConversionError.
func StatFile(path string) (bool, error) {
	abs, err := ToAbsoluteExtendedPath(path)
	if err != nil {
		return false, err
	}
	isDir, found := probe(abs)
	return found && !isDir, nil
}

// StatDirectory reports whether path names an existing directory or
// directory junction. Errors are as for StatFile.
func StatDirectory(path string) (bool, error) {
	abs, err := ToAbsoluteExtendedPath(path)
	if err != nil {
		return false, err
	}
	isDir, found := probe(abs)
	return found && isDir, nil
}

// RemoveFile deletes the file at path through its extended form.
// Directories are never deleted. It returns a *PathConversionError when path
// cannot be converted and a *DeleteError when the deletion fails.
func RemoveFile(path string) error {
	abs, err := ToAbsoluteExtendedPath(path)
	if err != nil {
		return err
	}
	return removeFile(path, abs)
}

// FileExists is StatFile for callers that only need the answer. A path that
// cannot be converted reads as absent; use StatFile to tell the two apart.
func FileExists(path string) bool {
	ok, err := StatFile(path)
	if err != nil {
		slog.Debug("path conversion failed", "path", path, "error", err)
	}
	return ok
}

// DirectoryExists is StatDirectory without the conversion error.
func DirectoryExists(path string) bool {
	ok, err := StatDirectory(path)
	if err != nil {
		slog.Debug("path conversion failed", "path", path, "error", err)
	}
	return ok
}

// DeleteFile reports whether RemoveFile succeeded.
func DeleteFile(path string) bool {
	err := RemoveFile(path)
	if err != nil {
		slog.Debug("delete failed", "path", path, "error", diag.WithCause("delete", err))
	}
	return err == nil
}
