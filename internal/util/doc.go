// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions shared across rigcon.
//
// # Key Functions
//
// String Utilities:
//   - StripANSI: remove escape sequences, keep displayed text
//   - VisibleWidth: terminal cell width ignoring escape sequences
//   - PadRight: pad styled text to a visible width
//   - HasWhitespace: report whether a string contains whitespace
//
// # Usage
//
//	// Measure what the terminal will actually show
//	w := util.VisibleWidth(styled)
package util
