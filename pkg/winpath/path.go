// SPDX-License-Identifier: MPL-2.0

package winpath

import (
	"strings"

	"github.com/winlaunch/winlaunch/pkg/platform"
)

const (
	// ExtendedPrefix marks a Win32 path that bypasses MAX_PATH parsing.
	ExtendedPrefix = `\\?\`
	// ExtendedUNCPrefix is the extended form of a `\\server\share` path.
	ExtendedUNCPrefix = `\\?\UNC\`
	// DevicePrefix marks a Win32 device namespace path.
	DevicePrefix = `\\.\`

	// MaxPath is the classic Win32 path length limit, terminator included.
	MaxPath = 260
	// maxComponent is the longest file name NTFS accepts.
	maxComponent = 255

	devNull = "/dev/null"
)

// AbsolutePath is a path produced by Normalize or ToAbsoluteExtendedPath.
type AbsolutePath string

// String returns the path as a string.
func (p AbsolutePath) String() string { return string(p) }

// IsExtended reports whether the path carries the `\\?\` prefix.
func (p AbsolutePath) IsExtended() bool {
	return strings.HasPrefix(string(p), ExtendedPrefix)
}

// Native strips the extended-length prefix, turning `\\?\C:\x` into `C:\x`
// and `\\?\UNC\srv\share` into `\\srv\share`.
func (p AbsolutePath) Native() string {
	s := string(p)
	switch {
	case strings.HasPrefix(s, ExtendedUNCPrefix):
		return `\\` + s[len(ExtendedUNCPrefix):]
	case strings.HasPrefix(s, ExtendedPrefix):
		return s[len(ExtendedPrefix):]
	default:
		return s
	}
}

// ToAbsoluteExtendedPath resolves path against the running process and
// returns its absolute form: `\\?\`-prefixed on Windows, native elsewhere.
func ToAbsoluteExtendedPath(path string) (AbsolutePath, error) {
	return absolute(path)
}

// Normalize converts path into an absolute extended-length Windows path,
// resolving relative and rooted inputs against cwd. It does not touch the
// file system and gives the same answer on every host.
//
//   - `/` separators become `\`.
//   - `\\?\` inputs are returned as they are.
//   - `\\.\` device namespace inputs are returned as they are.
//   - "/dev/null" and reserved device names (NUL, CON, COM1...) in the last
//     component resolve to the bare device name.
//   - `\\server\share\x` becomes `\\?\UNC\server\share\x`.
//   - "." and ".." segments are resolved; ".." never climbs above the volume.
//   - "C:x" resolves only when cwd is on drive C:.
//
// Components containing <>:"|?* or control characters, or longer than 255
// characters, are rejected.
func Normalize(path, cwd string) (AbsolutePath, error) {
	if path == "" {
		return "", conversionError(path, "path is empty")
	}
	if strings.IndexByte(path, 0) >= 0 {
		return "", conversionError(path, "path contains a NUL character")
	}
	if path == devNull {
		return platform.NullDevice, nil
	}

	p := strings.ReplaceAll(path, "/", `\`)
	if strings.HasPrefix(p, ExtendedPrefix) || strings.HasPrefix(p, DevicePrefix) {
		return AbsolutePath(p), nil
	}
	if dev, ok := platform.DeviceName(lastComponent(p)); ok {
		return AbsolutePath(dev), nil
	}

	vol, rest, err := splitVolume(p)
	if err != nil {
		return "", conversionError(path, err.Error())
	}

	switch {
	case vol != "" && isDriveRelative(p):
		base, baseErr := absoluteCwd(cwd)
		if baseErr != nil {
			return "", conversionError(path, "drive-relative path needs the current directory of drive "+vol)
		}
		if !strings.EqualFold(base.vol, vol) {
			return "", conversionError(path, "drive-relative path on "+vol+" but the current directory is on "+base.vol)
		}
		vol, rest = base.vol, base.rest+`\`+rest
	case vol == "":
		base, baseErr := absoluteCwd(cwd)
		if baseErr != nil {
			return "", conversionError(path, "relative path needs an absolute working directory")
		}
		if strings.HasPrefix(p, `\`) {
			vol = base.vol
		} else {
			vol, rest = base.vol, base.rest+`\`+rest
		}
	}

	segments, err := cleanSegments(rest)
	if err != nil {
		return "", conversionError(path, err.Error())
	}
	return buildExtended(vol, segments), nil
}

type volumePath struct {
	vol  string
	rest string
}

// absoluteCwd splits an absolute working directory into volume and rest.
func absoluteCwd(cwd string) (volumePath, error) {
	c := strings.ReplaceAll(cwd, "/", `\`)
	switch {
	case strings.HasPrefix(c, ExtendedUNCPrefix):
		c = `\\` + c[len(ExtendedUNCPrefix):]
	case strings.HasPrefix(c, ExtendedPrefix):
		c = c[len(ExtendedPrefix):]
	}
	vol, rest, err := splitVolume(c)
	if err != nil {
		return volumePath{}, err
	}
	if vol == "" || isDriveRelative(c) {
		return volumePath{}, errNotAbsolute
	}
	return volumePath{vol: vol, rest: rest}, nil
}

// splitVolume separates a drive ("C:") or UNC share (`\\srv\share`) from the
// remainder of p. Relative and rooted paths have no volume.
func splitVolume(p string) (vol, rest string, err error) {
	switch {
	case hasDriveLetter(p):
		return strings.ToUpper(p[:1]) + ":", p[2:], nil
	case strings.HasPrefix(p, `\\`):
		parts := strings.SplitN(p[2:], `\`, 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return "", "", errBadUNC
		}
		vol = `\\` + parts[0] + `\` + parts[1]
		if len(parts) == 3 {
			rest = parts[2]
		}
		return vol, rest, nil
	default:
		return "", p, nil
	}
}

func hasDriveLetter(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isDriveRelative reports "C:foo" style paths.
func isDriveRelative(p string) bool {
	return hasDriveLetter(p) && (len(p) == 2 || p[2] != '\\')
}

func lastComponent(p string) string {
	if idx := strings.LastIndexByte(p, '\\'); idx != -1 {
		return p[idx+1:]
	}
	if hasDriveLetter(p) {
		return p[2:]
	}
	return p
}

// cleanSegments resolves "." and ".." and validates every component.
func cleanSegments(rest string) ([]string, error) {
	var out []string
	for _, seg := range strings.Split(rest, `\`) {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			continue
		}
		if err := validateComponent(seg); err != nil {
			return nil, err
		}
		out = append(out, seg)
	}
	return out, nil
}

func validateComponent(seg string) error {
	if len(seg) > maxComponent {
		return errComponentTooLong
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c < 0x20 || strings.IndexByte(`<>:"|?*`, c) >= 0 {
			return errInvalidChar
		}
	}
	return nil
}

func buildExtended(vol string, segments []string) AbsolutePath {
	var b strings.Builder
	if strings.HasPrefix(vol, `\\`) {
		b.WriteString(ExtendedUNCPrefix)
		b.WriteString(vol[2:])
	} else {
		b.WriteString(ExtendedPrefix)
		b.WriteString(vol)
		if len(segments) == 0 {
			b.WriteByte('\\')
		}
	}
	for _, seg := range segments {
		b.WriteByte('\\')
		b.WriteString(seg)
	}
	return AbsolutePath(b.String())
}
