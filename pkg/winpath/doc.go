// SPDX-License-Identifier: MPL-2.0

// Package winpath converts launcher paths into forms the Windows file APIs
// accept without the MAX_PATH limit, and answers existence and deletion
// questions through those forms.
//
// Normalize applies the Windows rules to plain strings and behaves the same
// on every host. ToAbsoluteExtendedPath resolves against the live process:
// on Windows it yields a `\\?\` extended-length path, elsewhere the cleaned
// absolute native path.
//
// Conversion failures are returned as *PathConversionError. Callers that
// cannot continue without a path (the launcher) decide to exit; this package
// never terminates the process.
package winpath
