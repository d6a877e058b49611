// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for rigcon.
//
// Supports both TOML and JSON configuration formats, with defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ConsoleConfig: Prompt, stop delay and console messages
//   - WrapConfig: Continuation indent and fallback width
//   - HelpConfig: Help template path and labels
//   - UIConfig: Color overrides
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (RIGCON_*, NO_COLOR)
//   - ~/.rigcon/config.toml
//   - ~/.rigcon/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Warn("using defaults", "err", err)
//	}
//	delay := cfg.StopDelay()
package config
