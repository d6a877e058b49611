// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package help renders the help listing from a placeholder template.
//
// The template is plain text read from disk (or the built-in default) and is
// only ever consumed through placeholder substitution. It may reference:
//
//	{info.name} {info.description} {info.unknown}
//	{cmd.name}  {cmd.description}
package help

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/jeranaias/rigcon/internal/logging"
	"github.com/jeranaias/rigcon/internal/placeholder"
	"github.com/jeranaias/rigcon/internal/util"
)

// DefaultTemplate is used when no template file is configured.
const DefaultTemplate = "{cmd.name}  {cmd.description}"

// =============================================================================
// RENDERING
// =============================================================================

// Labels are the {info.*} strings available to the template.
type Labels struct {
	Name        string
	Description string
	Unknown     string
}

// Entry is one command as seen by the template.
type Entry struct {
	Name        string
	Description string
}

// Render substitutes tmpl once per entry. Names are padded to the widest
// name so descriptions line up in column templates.
func Render(tmpl string, labels Labels, entries []Entry) []string {
	width := 0
	for _, e := range entries {
		if w := util.VisibleWidth(e.Name); w > width {
			width = w
		}
	}

	info := map[string]any{
		"name":        labels.Name,
		"description": labels.Description,
		"unknown":     labels.Unknown,
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, placeholder.Substitute(tmpl, map[string]any{
			"info": info,
			"cmd": map[string]any{
				"name":        util.PadRight(e.Name, width),
				"description": e.Description,
			},
		}))
	}
	return out
}

// =============================================================================
// TEMPLATE SOURCE
// =============================================================================

// Source holds the current help template and can reload it from disk.
type Source struct {
	path string

	mu   sync.RWMutex
	text string
}

// NewSource loads the template at path. An empty path uses DefaultTemplate.
func NewSource(path string) (*Source, error) {
	s := &Source{path: path, text: DefaultTemplate}
	if path == "" {
		return s, nil
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the template file path, or "" for the built-in template.
func (s *Source) Path() string { return s.path }

// Template returns the current template text.
func (s *Source) Template() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}

// Reload re-reads the template file. The previous template is kept on error.
func (s *Source) Reload() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read help template: %w", err)
	}
	text := strings.TrimRight(string(data), "\n")

	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
	return nil
}

// Watch reloads the template whenever its file changes, until ctx is done.
// The parent directory is watched so editors that save by rename are seen.
func (s *Source) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}
	logger := logging.FromContext(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(s.path)
	if err != nil {
		return fmt.Errorf("resolve help template: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&fsnotify.Write != fsnotify.Write && ev.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if err := s.Reload(); err != nil {
				logger.Warn("help template reload failed", "path", s.path, "err", err)
				continue
			}
			logger.Debug("help template reloaded", "path", s.path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("help template watcher error", "err", err)
		}
	}
}
