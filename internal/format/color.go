// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/rigcon/internal/ui/styles"
)

// =============================================================================
// COLOR RESOLVER
// =============================================================================

// Resolver scans a log call's arguments for color keywords.
type Resolver struct {
	table *styles.ColorTable
}

// NewResolver creates a resolver over table. A nil table uses the defaults.
func NewResolver(table *styles.ColorTable) *Resolver {
	if table == nil {
		table = styles.DefaultColorTable()
	}
	return &Resolver{table: table}
}

// matched returns every table keyword present among args, in table order.
// Only string arguments can match.
func (r *Resolver) matched(args []any) []string {
	var keys []string
	for _, e := range r.table.Entries() {
		for _, arg := range args {
			if s, ok := arg.(string); ok && s == e.Keyword {
				keys = append(keys, e.Keyword)
				break
			}
		}
	}
	return keys
}

// Resolve returns the color of the first table keyword found among args.
func (r *Resolver) Resolve(args []any) (lipgloss.Color, bool) {
	keys := r.matched(args)
	if len(keys) == 0 {
		return "", false
	}
	return r.table.Lookup(keys[0])
}

// ExcludeToken returns all matched keywords joined with ",".
//
// Callers drop arguments equal to this token from the rendered message. With a
// single keyword that removes it; with two or more the joined token equals no
// single argument, so every keyword stays visible in the output.
func (r *Resolver) ExcludeToken(args []any) (string, bool) {
	keys := r.matched(args)
	if len(keys) == 0 {
		return "", false
	}
	return strings.Join(keys, ","), true
}

// Exclude returns args without the string arguments equal to token.
func Exclude(args []any, token string) []any {
	out := make([]any, 0, len(args))
	for _, arg := range args {
		if s, ok := arg.(string); ok && s == token {
			continue
		}
		out = append(out, arg)
	}
	return out
}
