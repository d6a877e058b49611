// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the rigcon command line entry point.
//
// The root command loads configuration, checks that stdin is a terminal,
// and runs a console over a line-editing reader until stop, Ctrl-C or
// Ctrl-D.
//
// # Flags
//
//   - --config, -c: Config file path
//   - --no-color: Disable colored output
//   - --verbose, -v / --quiet, -q: Diagnostic verbosity
//   - --json, -j: Diagnostics as JSON
//   - --version: Print the version
//
// # Exit Status
//
// The process exits non-zero only when the console cannot start, most
// commonly because stdin is not a terminal.
package cli
