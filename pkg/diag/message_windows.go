// SPDX-License-Identifier: MPL-2.0

//go:build windows

package diag

import (
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// systemMessage asks FormatMessageW for the English text of errno.
func systemMessage(errno syscall.Errno) string {
	const flags = windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS
	buf := make([]uint16, 512)
	n, err := windows.FormatMessage(flags, 0, uint32(errno), 0, buf, nil)
	if err != nil || n == 0 {
		return errno.Error()
	}
	return strings.TrimRight(windows.UTF16ToString(buf[:n]), "\r\n. ")
}
