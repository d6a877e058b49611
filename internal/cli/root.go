// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jeranaias/rigcon/console"
	"github.com/jeranaias/rigcon/internal/config"
	"github.com/jeranaias/rigcon/internal/help"
	"github.com/jeranaias/rigcon/internal/logging"
)

// version is injected at build time via -ldflags.
var version = "dev"

var (
	configPath string
	jsonOutput bool
	noColor    bool
	verbose    bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:          "rigcon",
	Short:        "Interactive line console",
	Long:         "Reads one command per line and writes timestamped, colored, wrapped output. Type help for the command list.",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose && quiet {
			verbose = false
		}
		l := newConfiguredLogger(cmd.ErrOrStderr())
		cmd.SetContext(logging.WithLogger(cmd.Context(), l))
	},
	RunE: runConsole,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.rigcon/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Write diagnostics as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only show error diagnostics")
	rootCmd.Flags().Bool("version", false, "Show version and exit")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// newConfiguredLogger creates a diagnostics logger configured from flags.
func newConfiguredLogger(w io.Writer) *log.Logger {
	l := logging.NewLogger(w)
	logging.Configure(l, logging.Flags{
		Verbose: verbose,
		Quiet:   quiet,
		NoColor: noColor,
		JSON:    jsonOutput,
	})
	return l
}

// =============================================================================
// CONSOLE COMMAND
// =============================================================================

func runConsole(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		fmt.Fprintf(cmd.OutOrStdout(), "rigcon %s\n", version)
		return nil
	}

	ctx := cmd.Context()
	l := logging.FromContext(ctx)

	cfg := loadConfig(l)
	if noColor {
		cfg.UI.NoColor = true
	}

	if err := RequiresTTY("read console commands"); err != nil {
		return err
	}

	src, err := help.NewSource(cfg.Help.TemplatePath)
	if err != nil {
		l.Warn("help template unavailable, using built-in", "path", cfg.Help.TemplatePath, "err", err)
		src, _ = help.NewSource("")
	}

	con, err := console.New(consoleOptions(cfg, src, crlfWriter{w: os.Stdout}, l))
	if err != nil {
		return fmt.Errorf("create console: %w", err)
	}
	defer con.Close()

	reader := NewLinerReader()
	defer reader.Close()

	return con.Run(ctx, reader)
}

// loadConfig loads --config or the default locations. Load problems are
// warnings; the defaults are used instead.
func loadConfig(l *log.Logger) *config.Config {
	if configPath != "" {
		cfg, err := config.LoadFromPath(configPath)
		if err == nil {
			return cfg
		}
		l.Warn("config file unusable, using defaults", "path", configPath, "err", err)
		cfg = config.Default()
		cfg.ApplyEnvOverrides()
		return cfg
	}

	cfg, err := config.Load()
	if err != nil {
		l.Warn("config file is malformed, using defaults", "err", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg
}

// consoleOptions maps configuration onto console options.
func consoleOptions(cfg *config.Config, src *help.Source, out io.Writer, l *log.Logger) console.Options {
	return console.Options{
		Out:             out,
		Profile:         ColorProfile(cfg.UI.NoColor),
		Colors:          cfg.UI.Colors,
		Width:           TerminalWidth,
		DefaultWidth:    cfg.Wrap.DefaultWidth,
		Indent:          cfg.Wrap.Indent,
		IndentDivisor:   cfg.Wrap.IndentDivisor,
		TimestampFormat: cfg.Wrap.TimestampFormat,
		Prompt:          cfg.Console.Prompt,
		StopDelay:       cfg.StopDelay(),
		ClearOnStart:    cfg.ClearsOnStart(),
		ClearMessage:    cfg.Console.ClearMessage,
		ShutdownMessage: cfg.Console.ShutdownMessage,
		UnknownMessage:  cfg.Console.UnknownMessage,
		Help:            src,
		WatchHelp:       cfg.Help.Watch,
		HelpLabels: help.Labels{
			Name:        cfg.Help.NameLabel,
			Description: cfg.Help.DescriptionLabel,
			Unknown:     cfg.Help.UnknownLabel,
		},
		Logger: l,
	}
}
