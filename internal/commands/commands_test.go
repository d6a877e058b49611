// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/rigcon/internal/help"
)

// =============================================================================
// PARSER TESTS
// =============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  ParsedArgs
	}{
		{
			input: "--a=1 --b -c x y",
			want: ParsedArgs{
				Flags:       map[string]bool{"b": true, "c": true},
				Values:      map[string]string{"a": "1"},
				Positionals: []string{"x", "y"},
			},
		},
		{
			input: "",
			want: ParsedArgs{
				Flags:       map[string]bool{},
				Values:      map[string]string{},
				Positionals: []string{},
			},
		},
		{
			input: "  help   clear  ",
			want: ParsedArgs{
				Flags:       map[string]bool{},
				Values:      map[string]string{},
				Positionals: []string{"help", "clear"},
			},
		},
		{
			input: "cmd --url=a=b --empty=",
			want: ParsedArgs{
				Flags:       map[string]bool{},
				Values:      map[string]string{"url": "a=b", "empty": ""},
				Positionals: []string{"cmd"},
			},
		},
		{
			input: "cmd -x=1",
			want: ParsedArgs{
				Flags:       map[string]bool{"x=1": true},
				Values:      map[string]string{},
				Positionals: []string{"cmd"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.input))
		})
	}
}

func TestParse_LastValueWins(t *testing.T) {
	got := Parse("cmd --n=1 --n=2")
	v, ok := got.Value("n")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestParse_FlagAndValueAreSeparate(t *testing.T) {
	got := Parse("--v --v=3")
	assert.True(t, got.Flag("v"))
	v, _ := got.Value("v")
	assert.Equal(t, "3", v)
}

func TestParsedArgs_Positional(t *testing.T) {
	got := Parse("help stop")
	assert.Equal(t, "help", got.Positional(0))
	assert.Equal(t, "stop", got.Positional(1))
	assert.Equal(t, "", got.Positional(2))
	assert.Equal(t, "", got.Positional(-1))
}

func TestCommandName(t *testing.T) {
	assert.Equal(t, "help", CommandName("help --all"))
	assert.Equal(t, "stop", CommandName("   stop"))
	assert.Equal(t, "", CommandName("   "))
}

// =============================================================================
// REGISTRY TESTS
// =============================================================================

func TestRegister_SingleCommand(t *testing.T) {
	r := NewRegistry()
	called := 0
	names := r.Register("ping", "Reply with pong", func() { called++ })

	assert.Equal(t, []string{"ping"}, names)
	cmd, ok := r.Lookup("ping")
	require.True(t, ok)
	assert.Equal(t, "Reply with pong", cmd.Description)

	require.NoError(t, r.Dispatch("ping", Parse("ping")))
	assert.Equal(t, 1, called)
}

func TestRegister_SeveralPerCall(t *testing.T) {
	r := NewRegistry()
	var got []string
	names := r.Register(
		"a", func(ParsedArgs) { got = append(got, "a") },
		"b", "does b", func(ParsedArgs) { got = append(got, "b") },
	)

	assert.Equal(t, []string{"a", "b"}, names)

	a, _ := r.Lookup("a")
	assert.Empty(t, a.Description)
	b, _ := r.Lookup("b")
	assert.Equal(t, "does b", b.Description)

	require.NoError(t, r.Dispatch("b", Parse("b")))
	require.NoError(t, r.Dispatch("a", Parse("a")))
	assert.Equal(t, []string{"b", "a"}, got)
}

func TestRegister_DescriptionForms(t *testing.T) {
	r := NewRegistry()
	noop := func() {}
	r.Register(
		"info", Info{Description: "from info"}, noop,
		"ptr", &Info{Description: "from pointer"}, noop,
		"map", map[string]any{"description": "from map"}, noop,
		"smap", map[string]string{"description": "from string map"}, noop,
	)

	for name, want := range map[string]string{
		"info": "from info",
		"ptr":  "from pointer",
		"map":  "from map",
		"smap": "from string map",
	} {
		cmd, ok := r.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, cmd.Description, name)
	}
}

func TestRegister_OrderDoesNotMatter(t *testing.T) {
	r := NewRegistry()
	names := r.Register("Handler before name", func() {}, "late")

	assert.Equal(t, []string{"late"}, names)
	cmd, _ := r.Lookup("late")
	assert.Equal(t, "Handler before name", cmd.Description)
}

func TestRegister_TrailingPartialDiscarded(t *testing.T) {
	r := NewRegistry()
	names := r.Register("done", func() {}, "orphan", "never gets a handler")

	assert.Equal(t, []string{"done"}, names)
	_, ok := r.Lookup("orphan")
	assert.False(t, ok)
}

func TestRegister_Extras(t *testing.T) {
	r := NewRegistry()
	r.Register("x", 42, true, func() {})

	cmd, ok := r.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, []any{42, true}, cmd.Extras)
}

func TestRegister_NilHandlerIgnored(t *testing.T) {
	r := NewRegistry()
	var fn func()
	names := r.Register("x", fn)

	assert.Empty(t, names)
	_, ok := r.Lookup("x")
	assert.False(t, ok)
}

func TestRegistry_ReplaceKeepsPosition(t *testing.T) {
	r := NewRegistry()
	r.Register("a", func() {}, "b", func() {})
	r.Register("a", "second a", func() {})

	assert.Equal(t, []string{"a", "b"}, r.Names())
	cmd, _ := r.Lookup("a")
	assert.Equal(t, "second a", cmd.Description)
}

func TestRegistry_LookupIsExact(t *testing.T) {
	r := NewRegistry()
	r.Register("help", func() {})

	_, ok := r.Lookup("Help")
	assert.False(t, ok)
	_, ok = r.Lookup("hel")
	assert.False(t, ok)
}

func TestRegistry_DispatchUnknown(t *testing.T) {
	r := NewRegistry()
	err := r.Dispatch("nope", Parse("nope"))

	var unknown *UnknownCommandError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "nope", unknown.Name)
	assert.Equal(t, "unknown command: nope", err.Error())
}

func TestRegistry_HandlerReceivesArgs(t *testing.T) {
	r := NewRegistry()
	var got ParsedArgs
	r.Register("echo", func(args ParsedArgs) { got = args })

	line := "echo hi --loud --times=3"
	require.NoError(t, r.Dispatch(CommandName(line), Parse(line)))
	assert.Equal(t, []string{"echo", "hi"}, got.Positionals)
	assert.True(t, got.Flag("loud"))
	v, _ := got.Value("times")
	assert.Equal(t, "3", v)
}

// =============================================================================
// BUILT-IN TESTS
// =============================================================================

type fakeHost struct {
	template  string
	logged    [][]any
	clears    []bool
	shutdowns int
}

func (h *fakeHost) Log(args ...any)    { h.logged = append(h.logged, args) }
func (h *fakeHost) Clear(confirm bool) { h.clears = append(h.clears, confirm) }
func (h *fakeHost) Shutdown()          { h.shutdowns++ }

func (h *fakeHost) HelpTemplate() (string, help.Labels) {
	tmpl := h.template
	if tmpl == "" {
		tmpl = help.DefaultTemplate
	}
	return tmpl, help.Labels{Name: "Command", Description: "Description", Unknown: "?"}
}

func TestBuiltins_Clear(t *testing.T) {
	r := NewRegistry()
	h := &fakeHost{}
	RegisterBuiltins(r, h)

	require.NoError(t, r.Dispatch("clear", Parse("clear")))
	require.NoError(t, r.Dispatch("clear", Parse("clear -q")))
	assert.Equal(t, []bool{true, false}, h.clears)
}

func TestBuiltins_Stop(t *testing.T) {
	r := NewRegistry()
	h := &fakeHost{}
	RegisterBuiltins(r, h)

	require.NoError(t, r.Dispatch("stop", Parse("stop")))
	assert.Equal(t, 1, h.shutdowns)
}

func TestBuiltins_HelpListsEveryCommand(t *testing.T) {
	r := NewRegistry()
	h := &fakeHost{}
	RegisterBuiltins(r, h)
	r.Register("greet", "Say hello", func() {})

	require.NoError(t, r.Dispatch("help", Parse("help")))
	require.Len(t, h.logged, 4)
	assert.Equal(t, []any{"clear  Clear the screen (-q to skip the confirmation)"}, h.logged[0])
	assert.Equal(t, []any{"greet  Say hello"}, h.logged[3])
}

func TestBuiltins_HelpSingleCommand(t *testing.T) {
	r := NewRegistry()
	h := &fakeHost{}
	RegisterBuiltins(r, h)

	require.NoError(t, r.Dispatch("help", Parse("help stop")))
	require.Len(t, h.logged, 1)
	assert.Equal(t, []any{"stop  Stop the application"}, h.logged[0])
}

func TestBuiltins_HelpUnknownCommand(t *testing.T) {
	r := NewRegistry()
	h := &fakeHost{}
	RegisterBuiltins(r, h)

	require.NoError(t, r.Dispatch("help", Parse("help bogus")))
	require.Len(t, h.logged, 1)
	assert.Equal(t, []any{"unknown command: bogus", "danger"}, h.logged[0])
}

func TestBuiltins_HelpMultiLineTemplate(t *testing.T) {
	r := NewRegistry()
	h := &fakeHost{template: "{info.name}: {cmd.name}\n{info.description}: {cmd.description}"}
	RegisterBuiltins(r, h)

	require.NoError(t, r.Dispatch("help", Parse("help stop")))
	assert.Equal(t, [][]any{
		{"Command: stop"},
		{"Description: Stop the application"},
	}, h.logged)
}
