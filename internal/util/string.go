// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions shared across rigcon.
package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// UNICODE: Width is measured in terminal cells, not bytes or runes.
// Escape sequences never count toward the width of a string, so styled and
// unstyled text with the same visible content measure the same.

// StripANSI removes every escape sequence from s, leaving only the text a
// terminal would actually display.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleWidth returns the number of terminal cells s occupies once displayed.
// Double-width characters (CJK) count as 2 columns; escape sequences count as 0.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}

// PadRight pads s with spaces until its visible width reaches width.
// Strings already at or past width are returned unchanged.
func PadRight(s string, width int) string {
	plain := StripANSI(s)
	w := runewidth.StringWidth(plain)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// HasWhitespace reports whether s contains any space, tab or newline.
func HasWhitespace(s string) bool {
	return strings.ContainsAny(s, " \t\n\r")
}
