// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown guidance
// for the failures winlaunch reports.
//
// An ActionableError carries the failed operation, the resource involved and
// remediation hints. When it names a catalog Id, the CLI points users at
// "winlaunch explain <name>", which renders the entry through glamour.
package issue
