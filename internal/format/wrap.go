// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/rigcon/internal/util"
)

// =============================================================================
// LINE WRAPPER
// =============================================================================

const (
	// DefaultWidth is used when the terminal width is unknown.
	DefaultWidth = 80

	// DefaultIndentDivisor leaves the hanging indent equal to the timestamp width.
	DefaultIndentDivisor = 1
)

// ErrInvalidWrapOptions is returned by NewWrapper for unusable options.
var ErrInvalidWrapOptions = errors.New("invalid wrap options")

// WrapOptions configures a Wrapper.
type WrapOptions struct {
	// Indent is the fixed hanging indent for continuation lines.
	// Zero derives it from the timestamp's visible width.
	Indent int

	// IndentDivisor divides the timestamp's visible width when Indent is zero.
	IndentDivisor int
}

// Wrapper breaks styled messages into display lines no wider than the
// terminal. All measurement is on visible width: escape sequences are free.
type Wrapper struct {
	indent  int
	divisor int
}

// NewWrapper validates opts and returns a Wrapper.
func NewWrapper(opts WrapOptions) (*Wrapper, error) {
	if opts.Indent < 0 {
		return nil, fmt.Errorf("%w: indent %d is negative", ErrInvalidWrapOptions, opts.Indent)
	}
	if opts.IndentDivisor == 0 {
		opts.IndentDivisor = DefaultIndentDivisor
	}
	if opts.IndentDivisor < 0 {
		return nil, fmt.Errorf("%w: indent divisor %d is negative", ErrInvalidWrapOptions, opts.IndentDivisor)
	}
	return &Wrapper{indent: opts.Indent, divisor: opts.IndentDivisor}, nil
}

// IndentFor returns the hanging indent used under timestamp.
func (w *Wrapper) IndentFor(timestamp string) int {
	if w.indent > 0 {
		return w.indent
	}
	return util.VisibleWidth(timestamp) / w.divisor
}

// Wrap lays message out after timestamp within width columns.
//
// The first line starts with timestamp; continuation lines start with the
// hanging indent. Words are separated on single spaces. A word that does not
// fit even on a fresh indented line is placed alone on its own line without
// indent, and the words after it resume on an indented line. Such a word, or
// a timestamp wider than width, is the only thing that overflows.
func (w *Wrapper) Wrap(timestamp, message string, width int) []string {
	if width <= 0 {
		width = DefaultWidth
	}

	tsWidth := util.VisibleWidth(timestamp)
	if tsWidth+1+util.VisibleWidth(message) <= width {
		return []string{timestamp + " " + message}
	}

	indent := w.IndentFor(timestamp)
	pad := strings.Repeat(" ", indent)

	var lines []string
	var cur strings.Builder
	cur.WriteString(timestamp)
	curWidth := tsWidth
	fresh := false // cur holds only the indent

	for _, word := range strings.Split(message, " ") {
		wordWidth := util.VisibleWidth(word)
		if fresh && curWidth+wordWidth <= width {
			cur.WriteString(word)
			curWidth += wordWidth
			fresh = false
			continue
		}
		if !fresh && curWidth+1+wordWidth <= width {
			cur.WriteByte(' ')
			cur.WriteString(word)
			curWidth += 1 + wordWidth
			continue
		}

		if !fresh {
			lines = append(lines, cur.String())
		}
		cur.Reset()
		cur.WriteString(pad)
		curWidth = indent
		fresh = true

		if indent+wordWidth <= width {
			cur.WriteString(word)
			curWidth += wordWidth
			fresh = false
			continue
		}
		// Hard wrap: too long for an indented line.
		lines = append(lines, word)
	}
	if !fresh {
		lines = append(lines, cur.String())
	}

	return lines
}
