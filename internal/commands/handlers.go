// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"

	"github.com/jeranaias/rigcon/internal/help"
)

// =============================================================================
// HANDLER HOST
// =============================================================================

// Host is the console the built-in commands act on.
type Host interface {
	// Log writes a timestamped line; see console.Console.Log
	Log(args ...any)

	// Clear homes the cursor and clears the screen, optionally confirming
	Clear(confirm bool)

	// Shutdown announces shutdown and schedules the loop to stop
	Shutdown()

	// HelpTemplate returns the current help template and its labels
	HelpTemplate() (string, help.Labels)
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

// RegisterBuiltins adds clear, stop and help to r, acting on h.
func RegisterBuiltins(r *Registry, h Host) {
	r.Add(Command{
		Name:        "clear",
		Description: "Clear the screen (-q to skip the confirmation)",
		Handler: func(args ParsedArgs) {
			h.Clear(!args.Flag("q") && !args.Flag("quiet"))
		},
	})

	r.Add(Command{
		Name:        "stop",
		Description: "Stop the application",
		Handler: func(ParsedArgs) {
			h.Shutdown()
		},
	})

	r.Add(Command{
		Name:        "help",
		Description: "List available commands (help <name> for one)",
		Handler: func(args ParsedArgs) {
			handleHelp(r, h, args)
		},
	})
}

// handleHelp logs the help template once per registered command, or once
// for the command named by the first argument. Each template line is its
// own log line.
func handleHelp(r *Registry, h Host, args ParsedArgs) {
	only := args.Positional(1)

	var entries []help.Entry
	for _, cmd := range r.All() {
		if only != "" && cmd.Name != only {
			continue
		}
		entries = append(entries, help.Entry{Name: cmd.Name, Description: cmd.Description})
	}
	if only != "" && len(entries) == 0 {
		h.Log((&UnknownCommandError{Name: only}).Error(), "danger")
		return
	}

	tmpl, labels := h.HelpTemplate()
	for _, block := range help.Render(tmpl, labels, entries) {
		for _, line := range strings.Split(block, "\n") {
			h.Log(line)
		}
	}
}
