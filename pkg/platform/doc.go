// SPDX-License-Identifier: MPL-2.0

// Package platform holds host identification constants and the Windows
// reserved device-name table shared by the path helpers.
package platform
