// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// WIDTH TESTS
// =============================================================================

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"plain", "hello", 5},
		{"sgr wrapped", "\x1b[38;2;255;0;0mhello\x1b[0m", 5},
		{"gray timestamp", "\x1b[90m[12:34:56]\x1b[39m", 10},
		{"cjk", "日本", 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, VisibleWidth(tc.input))
		})
	}
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "hello world", StripANSI("\x1b[1mhello\x1b[0m world"))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))

	styled := "\x1b[31mab\x1b[0m"
	padded := PadRight(styled, 4)
	assert.Equal(t, styled+"  ", padded)
	assert.Equal(t, 4, VisibleWidth(padded))
}

func TestHasWhitespace(t *testing.T) {
	assert.False(t, HasWhitespace("clear"))
	assert.True(t, HasWhitespace("clears the screen"))
	assert.True(t, HasWhitespace("tab\there"))
	assert.False(t, HasWhitespace(""))
}
