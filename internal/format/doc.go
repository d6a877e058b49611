// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package format turns log call arguments into display lines.
//
// # Key Types
//
//   - Resolver: finds a color keyword among the arguments of a log call
//   - Formatter: renders any value to styled text by Category
//   - Wrapper: breaks a styled message into timestamped, width-bounded lines
//
// # Categories
//
// Values are classified in a fixed priority order, first match wins:
//
//	null, undefined, sequence, datetime, pattern, named-structured,
//	plain-structured, callable, numeric, boolean, symbolic, other
//
// Slices, arrays, maps and anonymous structs are serialized as JSON. Named
// structs and maps are shown as [class Name], functions as [function Name].
//
// # Usage
//
//	color, ok := resolver.Resolve(args)
//	token, _ := resolver.ExcludeToken(args)
//	msg := formatter.RenderAll(format.Exclude(args, token))
//	lines := wrapper.Wrap(timestamp, msg, width)
package format
