// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"

	"github.com/peterh/liner"

	"github.com/jeranaias/rigcon/console"
)

// LinerReader reads console lines with line editing. Lines are never added
// to history.
type LinerReader struct {
	state *liner.State
}

// NewLinerReader puts the terminal under liner's control. Close restores it.
func NewLinerReader() *LinerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &LinerReader{state: state}
}

// ReadLine shows prompt and returns the entered line. Ctrl-C returns
// console.ErrAborted; Ctrl-D on an empty line returns io.EOF.
func (r *LinerReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	return line, translateReadErr(err)
}

// Close restores the terminal mode.
func (r *LinerReader) Close() error {
	return r.state.Close()
}

func translateReadErr(err error) error {
	if errors.Is(err, liner.ErrPromptAborted) {
		return fmt.Errorf("%w: %v", console.ErrAborted, err)
	}
	return err
}
