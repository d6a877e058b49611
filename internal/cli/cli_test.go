// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/rigcon/console"
	"github.com/jeranaias/rigcon/internal/config"
	"github.com/jeranaias/rigcon/internal/help"
	"github.com/jeranaias/rigcon/internal/logging"
)

// resetFlags restores the package flag variables after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configPath, jsonOutput, noColor, verbose, quiet = "", false, false, false, false
		stdinIsTTY = IsTTY
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		_ = rootCmd.Flags().Set("version", "false")
	})
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

func TestRoot_Version(t *testing.T) {
	resetFlags(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--version"})

	require.NoError(t, Execute())
	assert.Equal(t, "rigcon dev\n", out.String())
}

func TestRoot_RequiresTTY(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	stdinIsTTY = func() bool { return false }
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--quiet"})

	err := Execute()
	var ttyErr *TTYRequiredError
	require.True(t, errors.As(err, &ttyErr))
	assert.Equal(t, "read console commands", ttyErr.Operation)
}

func TestRoot_RejectsArguments(t *testing.T) {
	resetFlags(t)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"extra"})

	assert.Error(t, Execute())
}

func TestRoot_Flags(t *testing.T) {
	for _, name := range []string{"config", "json", "no-color", "verbose", "quiet"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.NotNil(t, rootCmd.Flags().Lookup("version"))
}

// =============================================================================
// CONFIG MAPPING
// =============================================================================

func TestLoadConfig_ExplicitPath(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "rigcon.toml")
	require.NoError(t, os.WriteFile(path, []byte("[console]\nprompt = \"$ \"\n"), 0600))
	configPath = path

	ctx, _ := logging.NewTestContext(logging.Flags{})
	cfg := loadConfig(logging.FromContext(ctx))
	assert.Equal(t, "$ ", cfg.Console.Prompt)
}

func TestLoadConfig_BadPathWarnsAndDefaults(t *testing.T) {
	resetFlags(t)
	configPath = filepath.Join(t.TempDir(), "missing.toml")

	ctx, logs := logging.NewTestContext(logging.Flags{})
	cfg := loadConfig(logging.FromContext(ctx))
	assert.Equal(t, config.Default().Wrap, cfg.Wrap)
	assert.Contains(t, logs.String(), "config file unusable")
}

func TestLoadConfig_UnknownColorKeywordFallsBackToDefaults(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "rigcon.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui.colors]\npurple = \"#aa00ff\"\n"), 0600))
	configPath = path

	ctx, logs := logging.NewTestContext(logging.Flags{})
	cfg := loadConfig(logging.FromContext(ctx))
	assert.Empty(t, cfg.UI.Colors)
	assert.Contains(t, logs.String(), "config file unusable")

	src, err := help.NewSource("")
	require.NoError(t, err)
	con, err := console.New(consoleOptions(cfg, src, io.Discard, nil))
	require.NoError(t, err, "fallback config must always build a console")
	con.Close()
}

func TestConsoleOptions(t *testing.T) {
	cfg := config.Default()
	cfg.UI.NoColor = true
	cfg.Console.Prompt = "> "
	cfg.Console.StopDelayMs = 250
	cfg.Wrap.Indent = 4
	cfg.Help.Watch = true
	src, err := help.NewSource("")
	require.NoError(t, err)

	opts := consoleOptions(cfg, src, io.Discard, nil)
	assert.Equal(t, termenv.Ascii, opts.Profile)
	assert.Equal(t, "> ", opts.Prompt)
	assert.Equal(t, 250*time.Millisecond, opts.StopDelay)
	assert.Equal(t, 4, opts.Indent)
	assert.Equal(t, 80, opts.DefaultWidth)
	assert.True(t, opts.ClearOnStart)
	assert.True(t, opts.WatchHelp)
	assert.Equal(t, "Command", opts.HelpLabels.Name)
	assert.Same(t, src, opts.Help)
	assert.NotNil(t, opts.Width)
}

// =============================================================================
// TERMINAL HELPERS
// =============================================================================

func TestColorProfile_NoColor(t *testing.T) {
	assert.Equal(t, termenv.Ascii, ColorProfile(true))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, ColorProfile(false))
}

func TestColorsEnabled_Force(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ColorsEnabled())
	assert.NotEqual(t, termenv.Ascii, ColorProfile(false))
}

func TestTTYRequiredError(t *testing.T) {
	assert.Equal(t, "stdin is not a terminal; cannot run interactively",
		(&TTYRequiredError{Operation: "run"}).Error())
	assert.Equal(t, "stdin is not a terminal; interactive input not available",
		(&TTYRequiredError{}).Error())
}

func TestCRLFWriter(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a\nb\n", "a\r\nb\r\n"},
		{"already\r\n", "already\r\n"},
		{"\x1b[1;1H\x1b[0J", "\x1b[1;1H\x1b[0J"},
	}

	for _, tc := range tests {
		var buf bytes.Buffer
		n, err := crlfWriter{w: &buf}.Write([]byte(tc.in))
		require.NoError(t, err)
		assert.Equal(t, len(tc.in), n)
		assert.Equal(t, tc.want, buf.String())
	}
}

func TestTranslateReadErr(t *testing.T) {
	assert.NoError(t, translateReadErr(nil))
	assert.ErrorIs(t, translateReadErr(io.EOF), io.EOF)

	err := translateReadErr(liner.ErrPromptAborted)
	assert.ErrorIs(t, err, console.ErrAborted)
}
