// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package diag

import "syscall"

func systemMessage(errno syscall.Errno) string {
	return errno.Error()
}
