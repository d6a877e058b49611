// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styler turns plain text into styled text for one output stream.
// It owns a lipgloss renderer pinned to an explicit color profile so the
// decision to emit escape sequences is made once, at construction.
type Styler struct {
	renderer *lipgloss.Renderer
	table    *ColorTable
}

// NewStyler creates a Styler that renders for w using profile.
// A nil table falls back to DefaultColorTable.
func NewStyler(w io.Writer, profile termenv.Profile, table *ColorTable) *Styler {
	if table == nil {
		table = DefaultColorTable()
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Styler{renderer: r, table: table}
}

// Style colors text with colorID. A colorID naming a table keyword
// ("danger", "info", ...) uses that keyword's color; anything else is passed
// to lipgloss as a color literal ("#ff00ff", "8", "212"). An empty colorID
// returns text untouched.
func (s *Styler) Style(text, colorID string) string {
	if colorID == "" {
		return text
	}
	c, ok := s.table.Lookup(colorID)
	if !ok {
		c = lipgloss.Color(colorID)
	}
	return s.Foreground(text, c)
}

// Foreground renders text in color c.
func (s *Styler) Foreground(text string, c lipgloss.TerminalColor) string {
	if text == "" {
		return ""
	}
	return s.renderer.NewStyle().Foreground(c).Render(text)
}

// Bold renders text in bold.
func (s *Styler) Bold(text string) string {
	if text == "" {
		return ""
	}
	return s.renderer.NewStyle().Bold(true).Render(text)
}
