// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sync"

	"github.com/jeranaias/rigcon/internal/util"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Handler executes a command with the parsed input line.
type Handler func(args ParsedArgs)

// Command is a registered console command. Commands are immutable once
// registered; re-registering a name replaces the whole definition.
type Command struct {
	// Name is the exact first token that selects the command (e.g., "clear")
	Name string

	// Description is shown by help
	Description string

	// Handler is the function that executes the command
	Handler Handler

	// Extras are leftover registration arguments, kept for diagnostics only
	Extras []any
}

// Info carries a description as a record during Register.
type Info struct {
	Description string
}

// UnknownCommandError is returned by Dispatch for unregistered names.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "unknown command: " + e.Name
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds registered commands keyed by name.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
	order    []string
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// Add stores cmd under cmd.Name, replacing any command with the same name.
// A replaced command keeps its original position in Names.
func (r *Registry) Add(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[cmd.Name]; !exists {
		r.order = append(r.order, cmd.Name)
	}
	stored := cmd
	r.commands[cmd.Name] = &stored
}

// Register builds command definitions from a loose argument list.
//
// Arguments are scanned left to right and sorted into an accumulator:
//
//	single-word string             name (first one only)
//	multi-word string, Info,
//	  or map with "description"    description (first one only)
//	Handler, func(ParsedArgs),
//	  or func()                    handler (first one only)
//	anything else                  extras
//
// The moment the accumulator holds both a name and a handler it is committed
// and reset, so one call may register several commands:
//
//	r.Register("a", handleA, "b", "does b", handleB)
//
// A trailing partial definition is discarded. Register returns the committed
// names in order.
func (r *Registry) Register(args ...any) []string {
	var (
		committed []string
		acc       Command
		hasName   bool
		hasDesc   bool
	)

	for _, arg := range args {
		switch {
		case !hasName && isName(arg):
			acc.Name = arg.(string)
			hasName = true
		case !hasDesc && isDescription(arg):
			acc.Description = description(arg)
			hasDesc = true
		case acc.Handler == nil && asHandler(arg) != nil:
			acc.Handler = asHandler(arg)
		default:
			acc.Extras = append(acc.Extras, arg)
		}

		if hasName && acc.Handler != nil {
			r.Add(acc)
			committed = append(committed, acc.Name)
			acc, hasName, hasDesc = Command{}, false, false
		}
	}

	return committed
}

// Lookup returns the command registered under exactly name.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	if !ok {
		return Command{}, false
	}
	return *cmd, true
}

// Names returns registered command names in first-registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// All returns registered commands in first-registration order.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, *r.commands[name])
	}
	return cmds
}

// Dispatch invokes the handler registered under name with args.
// An unregistered name returns *UnknownCommandError.
func (r *Registry) Dispatch(name string, args ParsedArgs) error {
	cmd, ok := r.Lookup(name)
	if !ok {
		return &UnknownCommandError{Name: name}
	}
	cmd.Handler(args)
	return nil
}

// =============================================================================
// ARGUMENT CLASSIFICATION
// =============================================================================

func isName(arg any) bool {
	s, ok := arg.(string)
	return ok && s != "" && !util.HasWhitespace(s)
}

func isDescription(arg any) bool {
	switch v := arg.(type) {
	case string:
		return util.HasWhitespace(v)
	case Info, *Info:
		return true
	case map[string]string:
		_, ok := v["description"]
		return ok
	case map[string]any:
		_, ok := v["description"].(string)
		return ok
	}
	return false
}

func description(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case Info:
		return v.Description
	case *Info:
		if v != nil {
			return v.Description
		}
	case map[string]string:
		return v["description"]
	case map[string]any:
		s, _ := v["description"].(string)
		return s
	}
	return ""
}

func asHandler(arg any) Handler {
	switch fn := arg.(type) {
	case Handler:
		return fn
	case func(ParsedArgs):
		return fn
	case func():
		if fn == nil {
			return nil
		}
		return func(ParsedArgs) { fn() }
	}
	return nil
}
