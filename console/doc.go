// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console provides an interactive line console for long-running
// processes.
//
// A Console reads one command per line, dispatches it to a registered
// handler, and writes timestamped, colored, word-wrapped log lines. The
// commands clear, stop and help are always registered.
//
// # Key Types
//
//   - Console: The console instance
//   - Options: Output, colors, wrapping, messages and help template
//   - Args: One parsed input line
//   - LineReader: Source of input lines
//
// # Logging
//
// Log renders each argument by type and joins them with spaces. A string
// argument naming a color keyword colors the whole line:
//
//	con.Log("listening on", 8080, "success")
//	con.Log(map[string]int{"a": 1}, time.Now(), nil, console.Undefined)
//
// # Usage
//
//	con, err := console.New(console.Options{Profile: termenv.TrueColor})
//	if err != nil {
//	    return err
//	}
//	defer con.Close()
//
//	con.Register("greet", "Say hello", func(args console.Args) {
//	    con.Log("hello", args.Positional(1), "info")
//	})
//	return con.Run(ctx, reader)
package console
