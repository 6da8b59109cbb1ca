// SPDX-License-Identifier: MPL-2.0

package platform

import "strings"

// NullDevice is the Windows name of the null device.
const NullDevice = "NUL"

// reservedDeviceNames are names Windows resolves to devices in any directory
// and with any extension.
var reservedDeviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {},
	"COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {},
	"LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// DeviceName returns the canonical device name when name (a single path
// component) refers to a reserved Windows device, and false otherwise.
// Extensions and trailing spaces are ignored, so "nul.txt" and "CON " both
// resolve to their devices.
func DeviceName(name string) (string, bool) {
	base := strings.ToUpper(name)
	if idx := strings.IndexByte(base, '.'); idx != -1 {
		base = base[:idx]
	}
	base = strings.TrimRight(base, " ")
	if _, ok := reservedDeviceNames[base]; ok {
		return base, true
	}
	return "", false
}

// IsReservedName reports whether name is a reserved Windows device name.
func IsReservedName(name string) bool {
	_, ok := DeviceName(name)
	return ok
}
