// SPDX-License-Identifier: MPL-2.0

package winpath

import "strings"

// ExeExtension is the Windows executable suffix. Matching is case-sensitive.
const ExeExtension = ".exe"

// StripExeExtension removes a trailing ".exe" from binary:
// "foo/bar/bin.exe" becomes "foo/bar/bin".
func StripExeExtension(binary string) string {
	return strings.TrimSuffix(binary, ExeExtension)
}

// AddExeExtension returns binary with exactly one trailing ".exe":
// both "foo/bar/bin" and "foo/bar/bin.exe" become "foo/bar/bin.exe".
func AddExeExtension(binary string) string {
	return StripExeExtension(binary) + ExeExtension
}
