// SPDX-License-Identifier: MPL-2.0

package winpath

import "strings"

// maxShortPath bounds the GetShortPathNameW result: MAX_PATH-1 characters
// for the executable path CreateProcess accepts, the `\\?\` prefix carried
// over from the input, and the terminator.
const maxShortPath = MaxPath + 4

// AsShortPath returns a form of path that CreateProcess accepts as an
// executable name. path must be either a bare file name shorter than
// MAX_PATH or an absolute, normalized "X:\..." path of any length. Paths
// shorter than MAX_PATH come back with `\` separators; longer ones are
// replaced by their 8.3 short form, which only Windows can compute.
//
// An empty path yields an empty result.
func AsShortPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path[0] == '"' {
		return "", &ShortPathError{Path: path, Reason: "should not be quoted"}
	}
	if isSeparator(path[0]) {
		return "", &ShortPathError{Path: path, Reason: "is absolute"}
	}
	if strings.Contains(path, "/./") || strings.Contains(path, `\.\`) ||
		strings.Contains(path, "/..") || strings.Contains(path, `\..`) {
		return "", &ShortPathError{Path: path, Reason: "is not normalized"}
	}
	sep := hasSeparator(path)
	if len(path) >= MaxPath && !sep {
		return "", &ShortPathError{Path: path, Reason: "is just a file name but too long"}
	}
	if sep && !(len(path) >= 3 && hasDriveLetter(path) && isSeparator(path[2])) {
		return "", &ShortPathError{Path: path, Reason: "is not an absolute path"}
	}

	path = strings.ReplaceAll(path, "/", `\`)
	if len(path) < MaxPath {
		return path, nil
	}
	return shortPathName(path)
}

// AsExecutablePathForCreateProcess converts path with AsShortPath and wraps
// the result in double quotes, so names like `c:\foo\app name.exe` survive.
// Quotes cannot occur inside Windows paths, so none are escaped.
func AsExecutablePathForCreateProcess(path string) (string, error) {
	if path == "" {
		return "", &ShortPathError{Path: path, Reason: "should not be empty"}
	}
	short, err := AsShortPath(path)
	if err != nil {
		return "", err
	}
	return `"` + short + `"`, nil
}

// AddUncPrefixMaybe prepends `\\?\` when path is too long for the classic
// Win32 APIs.
func AddUncPrefixMaybe(path string) string {
	if len(path) >= MaxPath {
		return ExtendedPrefix + path
	}
	return path
}

func isSeparator(c byte) bool { return c == '/' || c == '\\' }

func hasSeparator(s string) bool { return strings.ContainsAny(s, `/\`) }
