// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the console's command system.
//
// An input line is split into a command name (its first token) and a
// ParsedArgs of flags, key=value pairs and positionals. The name selects a
// Command from the Registry by exact match.
//
// # Key Types
//
//   - Registry: Named commands in first-registration order
//   - Command: Name, description and handler
//   - ParsedArgs: Flags, values and positionals of one line
//
// # Built-in Commands
//
//   - clear: Clear the screen
//   - stop: Stop the application
//   - help: List available commands
//
// # Usage
//
// Register a command and dispatch a line:
//
//	r := commands.NewRegistry()
//	r.Register("greet", "Say hello", func(args commands.ParsedArgs) {
//	    fmt.Println("hello", args.Positional(1))
//	})
//
//	line := "greet world --loud"
//	err := r.Dispatch(commands.CommandName(line), commands.Parse(line))
package commands
