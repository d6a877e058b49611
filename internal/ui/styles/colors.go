// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the color table and styling capability for rigcon.
package styles

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// KEYWORD COLORS
// =============================================================================

// Keyword names recognised by the log path. Declaration order is resolution
// order: when several appear in one call, the first one listed here wins.
const (
	Success   = "success"
	Warning   = "warning"
	Danger    = "danger"
	Info      = "info"
	Primary   = "primary"
	Secondary = "secondary"
	Magenta   = "magenta"
)

// Entry is one keyword → color binding in a ColorTable.
type Entry struct {
	Keyword string
	Hex     string
}

// defaultEntries is the built-in table, in resolution order.
var defaultEntries = []Entry{
	{Success, "#00ff00"},
	{Warning, "#ffff00"},
	{Danger, "#ff0000"},
	{Info, "#00ffff"},
	{Primary, "#0077ff"},
	{Secondary, "#666666"},
	{Magenta, "#ff66ee"},
}

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// =============================================================================
// VALUE CATEGORY COLORS
// =============================================================================

// Timestamp - the [HH:MM:SS] label in front of every log line
var Timestamp = lipgloss.Color("8")

// Number - numeric values, including big integers
var Number = lipgloss.Color("3")

// Boolean - true/false
var Boolean = lipgloss.Color("3")

// Undefined - the undefined label
var Undefined = lipgloss.Color("8")

// Symbol - symbolic tokens
var Symbol = lipgloss.Color("2")

// Date - time values
var Date = lipgloss.Color("5")

// Pattern - regular expressions
var Pattern = lipgloss.Color("1")

// Special - synthetic [class X] / [function X] labels
var Special = lipgloss.Color("6")

// =============================================================================
// COLOR TABLE
// =============================================================================

// ColorTable maps log keywords to display colors. It is built once and never
// mutated afterwards; every accessor returns copies.
type ColorTable struct {
	entries []Entry
	index   map[string]int
}

// DefaultColorTable returns the built-in keyword table.
func DefaultColorTable() *ColorTable {
	t, _ := NewColorTable(nil)
	return t
}

// NewColorTable builds a table from the built-in keywords, replacing the hex
// value of any keyword present in overrides. Overrides cannot add keywords or
// change their order.
func NewColorTable(overrides map[string]string) (*ColorTable, error) {
	t := &ColorTable{
		entries: make([]Entry, len(defaultEntries)),
		index:   make(map[string]int, len(defaultEntries)),
	}
	copy(t.entries, defaultEntries)
	for i, e := range t.entries {
		t.index[e.Keyword] = i
	}

	for keyword, hex := range overrides {
		i, ok := t.index[keyword]
		if !ok {
			return nil, fmt.Errorf("unknown color keyword %q (known: %s)", keyword, strings.Join(Keywords(), ", "))
		}
		if !hexPattern.MatchString(hex) {
			return nil, fmt.Errorf("color %q for %q is not a #rrggbb value", hex, keyword)
		}
		t.entries[i].Hex = strings.ToLower(hex)
	}
	return t, nil
}

// Entries returns the table in resolution order.
func (t *ColorTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns the color bound to keyword.
func (t *ColorTable) Lookup(keyword string) (lipgloss.Color, bool) {
	i, ok := t.index[keyword]
	if !ok {
		return "", false
	}
	return lipgloss.Color(t.entries[i].Hex), true
}

// Keywords returns the built-in keyword names in resolution order.
func Keywords() []string {
	names := make([]string, len(defaultEntries))
	for i, e := range defaultEntries {
		names[i] = e.Keyword
	}
	return names
}
