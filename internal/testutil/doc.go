// SPDX-License-Identifier: MPL-2.0

// Package testutil holds helpers for tests that touch process-wide state
// such as environment variables and per-user config directories.
package testutil
