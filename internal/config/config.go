// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/rigcon/internal/ui/styles"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete rigcon configuration.
type Config struct {
	// Console behaviour and messages
	Console ConsoleConfig `toml:"console" json:"console"`

	// Output wrapping
	Wrap WrapConfig `toml:"wrap" json:"wrap"`

	// Help listing
	Help HelpConfig `toml:"help" json:"help"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// ConsoleConfig contains REPL settings and the fixed console messages.
type ConsoleConfig struct {
	// Prompt shown before each input line (empty for none)
	Prompt string `toml:"prompt" json:"prompt"`

	// StopDelayMs is how long stop waits before ending the loop
	StopDelayMs int `toml:"stop_delay_ms" json:"stop_delay_ms"`

	// ClearMessage is logged by the clear command
	ClearMessage string `toml:"clear_message" json:"clear_message"`

	// ShutdownMessage is logged by the stop command
	ShutdownMessage string `toml:"shutdown_message" json:"shutdown_message"`

	// UnknownMessage prefixes the unknown command report
	UnknownMessage string `toml:"unknown_message" json:"unknown_message"`

	// ClearOnStart clears the screen before the first prompt.
	// A pointer so an explicit false in a file survives fillDefaults.
	ClearOnStart *bool `toml:"clear_on_start" json:"clear_on_start"`
}

// WrapConfig contains line wrapping settings.
type WrapConfig struct {
	// Indent is the continuation indent; 0 derives it from the timestamp
	Indent int `toml:"indent" json:"indent"`

	// IndentDivisor divides the visible timestamp width when Indent is 0
	IndentDivisor int `toml:"indent_divisor" json:"indent_divisor"`

	// DefaultWidth is used when the terminal width is unavailable
	DefaultWidth int `toml:"default_width" json:"default_width"`

	// TimestampFormat is a Go time layout for the bracketed timestamp
	TimestampFormat string `toml:"timestamp_format" json:"timestamp_format"`
}

// HelpConfig contains help template settings.
type HelpConfig struct {
	// TemplatePath is the help template file; empty uses the built-in one
	TemplatePath string `toml:"template_path" json:"template_path"`

	// Watch reloads the template when the file changes
	Watch bool `toml:"watch" json:"watch"`

	// Labels exposed to the template as {info.*}
	NameLabel        string `toml:"name_label" json:"name_label"`
	DescriptionLabel string `toml:"description_label" json:"description_label"`
	UnknownLabel     string `toml:"unknown_label" json:"unknown_label"`
}

// UIConfig contains color settings.
type UIConfig struct {
	// NoColor disables all styling
	NoColor bool `toml:"no_color" json:"no_color"`

	// Colors overrides keyword colors, e.g. danger = "#ff5555"
	Colors map[string]string `toml:"colors" json:"colors,omitempty"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with all default values.
func Default() *Config {
	clearOnStart := true
	return &Config{
		Console: ConsoleConfig{
			Prompt:          "",
			StopDelayMs:     100,
			ClearMessage:    "Console cleared",
			ShutdownMessage: "Shutting down...",
			UnknownMessage:  "Unknown command:",
			ClearOnStart:    &clearOnStart,
		},
		Wrap: WrapConfig{
			Indent:          0,
			IndentDivisor:   1,
			DefaultWidth:    80,
			TimestampFormat: "15:04:05",
		},
		Help: HelpConfig{
			NameLabel:        "Command",
			DescriptionLabel: "Description",
			UnknownLabel:     "No description",
		},
		UI: UIConfig{
			Colors: map[string]string{},
		},
	}
}

// StopDelay returns Console.StopDelayMs as a duration.
func (c *Config) StopDelay() time.Duration {
	return time.Duration(c.Console.StopDelayMs) * time.Millisecond
}

// ClearsOnStart reports whether the screen is cleared before the first prompt.
func (c *Config) ClearsOnStart() bool {
	return c.Console.ClearOnStart == nil || *c.Console.ClearOnStart
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the rigcon configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".rigcon"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from ~/.rigcon, trying TOML first and then JSON,
// and falls back to defaults. Environment overrides are applied last.
//
// A file that fails to decode is reported alongside the default config so
// callers can warn and continue.
func Load() (*Config, error) {
	var loadErr error

	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := LoadFromPath(path)
		if err != nil {
			loadErr = err
			continue
		}
		return cfg, nil
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, loadErr
}

// LoadFromPath loads configuration from a specific file. Files ending in
// .json are decoded as JSON; anything else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file into cfg and fills missing values.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadJSON decodes a JSON file into cfg and fills missing values.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// fillDefaults fills in any missing values with defaults. Zero is treated
// as missing except for Wrap.Indent, where zero means "derive".
func fillDefaults(cfg *Config) {
	defaults := Default()

	// Console
	if cfg.Console.StopDelayMs == 0 {
		cfg.Console.StopDelayMs = defaults.Console.StopDelayMs
	}
	if cfg.Console.ClearMessage == "" {
		cfg.Console.ClearMessage = defaults.Console.ClearMessage
	}
	if cfg.Console.ShutdownMessage == "" {
		cfg.Console.ShutdownMessage = defaults.Console.ShutdownMessage
	}
	if cfg.Console.UnknownMessage == "" {
		cfg.Console.UnknownMessage = defaults.Console.UnknownMessage
	}
	if cfg.Console.ClearOnStart == nil {
		cfg.Console.ClearOnStart = defaults.Console.ClearOnStart
	}

	// Wrap
	if cfg.Wrap.IndentDivisor == 0 {
		cfg.Wrap.IndentDivisor = defaults.Wrap.IndentDivisor
	}
	if cfg.Wrap.DefaultWidth == 0 {
		cfg.Wrap.DefaultWidth = defaults.Wrap.DefaultWidth
	}
	if cfg.Wrap.TimestampFormat == "" {
		cfg.Wrap.TimestampFormat = defaults.Wrap.TimestampFormat
	}

	// Help
	if cfg.Help.NameLabel == "" {
		cfg.Help.NameLabel = defaults.Help.NameLabel
	}
	if cfg.Help.DescriptionLabel == "" {
		cfg.Help.DescriptionLabel = defaults.Help.DescriptionLabel
	}
	if cfg.Help.UnknownLabel == "" {
		cfg.Help.UnknownLabel = defaults.Help.UnknownLabel
	}

	// UI
	if cfg.UI.Colors == nil {
		cfg.UI.Colors = map[string]string{}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks value ranges and returns ValidateErrors when any fail.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Console.StopDelayMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "console.stop_delay_ms",
			Message: fmt.Sprintf("must be >= 0, got %d", c.Console.StopDelayMs),
		})
	}
	if c.Wrap.Indent < 0 {
		errs = append(errs, ValidationError{
			Field:   "wrap.indent",
			Message: fmt.Sprintf("must be >= 0, got %d", c.Wrap.Indent),
		})
	}
	if c.Wrap.IndentDivisor < 1 {
		errs = append(errs, ValidationError{
			Field:   "wrap.indent_divisor",
			Message: fmt.Sprintf("must be >= 1, got %d", c.Wrap.IndentDivisor),
		})
	}
	if c.Wrap.DefaultWidth < 20 {
		errs = append(errs, ValidationError{
			Field:   "wrap.default_width",
			Message: fmt.Sprintf("must be >= 20, got %d", c.Wrap.DefaultWidth),
		})
	}

	keys := make([]string, 0, len(c.UI.Colors))
	for k := range c.UI.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !slices.Contains(styles.Keywords(), k) {
			errs = append(errs, ValidationError{
				Field:   "ui.colors." + k,
				Message: fmt.Sprintf("unknown color keyword, want one of %s", strings.Join(styles.Keywords(), ", ")),
			})
			continue
		}
		if !hexColor.MatchString(c.UI.Colors[k]) {
			errs = append(errs, ValidationError{
				Field:   "ui.colors." + k,
				Message: fmt.Sprintf("must be #rrggbb, got %q", c.UI.Colors[k]),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - RIGCON_PROMPT: overrides console.prompt
//   - RIGCON_STOP_DELAY_MS: overrides console.stop_delay_ms
//   - RIGCON_HELP_TEMPLATE: overrides help.template_path
//   - RIGCON_INDENT: overrides wrap.indent
//   - RIGCON_TIMESTAMP_FORMAT: overrides wrap.timestamp_format
//   - RIGCON_NO_COLOR / NO_COLOR: any non-empty value disables color
func (c *Config) ApplyEnvOverrides() {
	if prompt, ok := os.LookupEnv("RIGCON_PROMPT"); ok {
		c.Console.Prompt = prompt
	}

	if delay := os.Getenv("RIGCON_STOP_DELAY_MS"); delay != "" {
		if n, err := strconv.Atoi(delay); err == nil {
			c.Console.StopDelayMs = n
		}
	}

	if path := os.Getenv("RIGCON_HELP_TEMPLATE"); path != "" {
		c.Help.TemplatePath = path
	}

	if indent := os.Getenv("RIGCON_INDENT"); indent != "" {
		if n, err := strconv.Atoi(indent); err == nil {
			c.Wrap.Indent = n
		}
	}

	if layout := os.Getenv("RIGCON_TIMESTAMP_FORMAT"); layout != "" {
		c.Wrap.TimestampFormat = layout
	}

	if os.Getenv("RIGCON_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
		c.UI.NoColor = true
	}
}
