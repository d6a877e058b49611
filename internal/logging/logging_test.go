// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestConfigure_Levels(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  log.Level
	}{
		{"default", Flags{}, log.WarnLevel},
		{"verbose", Flags{Verbose: true}, log.DebugLevel},
		{"quiet", Flags{Quiet: true}, log.ErrorLevel},
		{"quiet wins", Flags{Quiet: true, Verbose: true}, log.ErrorLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLogger(&bytes.Buffer{})
			Configure(l, tc.flags)
			assert.Equal(t, tc.want, l.GetLevel())
		})
	}
}

func TestConfigure_JSON(t *testing.T) {
	ctx, buf := NewTestContext(Flags{JSON: true, NoColor: true})
	FromContext(ctx).Warn("template reloaded", "path", "/tmp/help.txt")

	assert.Contains(t, buf.String(), `"msg":"template reloaded"`)
	assert.Contains(t, buf.String(), `"path":"/tmp/help.txt"`)
}

func TestFromContext(t *testing.T) {
	l := NewLogger(&bytes.Buffer{})
	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))

	def := FromContext(context.Background())
	assert.NotNil(t, def)
	assert.Equal(t, log.WarnLevel, def.GetLevel())
}

func TestNewTestContext_DebugCaptured(t *testing.T) {
	ctx, buf := NewTestContext(Flags{Verbose: true, NoColor: true})
	FromContext(ctx).Debug("dispatch", "command", "help")

	assert.Contains(t, buf.String(), "dispatch")
	assert.Contains(t, buf.String(), "command=help")
}
