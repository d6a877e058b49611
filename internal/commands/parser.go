// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
)

// =============================================================================
// PARSED ARGS
// =============================================================================

// ParsedArgs holds one input line split into flags, key=value pairs and
// bare positional tokens. The command name itself is the first positional.
type ParsedArgs struct {
	// Flags are --name and -name tokens
	Flags map[string]bool

	// Values are --key=value tokens
	Values map[string]string

	// Positionals are the remaining tokens in input order
	Positionals []string
}

// Flag reports whether name was given as a flag.
func (p ParsedArgs) Flag(name string) bool {
	return p.Flags[name]
}

// Value returns the value given for key.
func (p ParsedArgs) Value(key string) (string, bool) {
	v, ok := p.Values[key]
	return v, ok
}

// Positional returns the i-th positional token, or "" when out of range.
func (p ParsedArgs) Positional(i int) string {
	if i < 0 || i >= len(p.Positionals) {
		return ""
	}
	return p.Positionals[i]
}

// =============================================================================
// PARSER
// =============================================================================

// Parse splits line on whitespace and classifies each token left to right:
//
//	--key=value  Values[key] = value (split at the first '=')
//	--name       Flags[name] = true
//	-name        Flags[name] = true
//	other        appended to Positionals
//
// There is no quoting or escaping; a value can never contain a space.
func Parse(line string) ParsedArgs {
	parsed := ParsedArgs{
		Flags:       make(map[string]bool),
		Values:      make(map[string]string),
		Positionals: []string{},
	}

	for _, tok := range strings.Fields(line) {
		switch {
		case strings.HasPrefix(tok, "--"):
			key, value, hasValue := strings.Cut(tok[2:], "=")
			if hasValue {
				parsed.Values[key] = value
			} else {
				parsed.Flags[key] = true
			}
		case strings.HasPrefix(tok, "-"):
			parsed.Flags[tok[1:]] = true
		default:
			parsed.Positionals = append(parsed.Positionals, tok)
		}
	}

	return parsed
}

// CommandName returns the first whitespace-delimited token of line.
// e.g., "help --all" -> "help"
func CommandName(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
