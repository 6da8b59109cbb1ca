// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the winlaunch command tree.
//
// Each subcommand exposes one launcher helper for scripting and diagnosis.
// Handlers receive an *App and reach the file system, environment and
// random source only through its services, so tests can swap them.
package cmd
