// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/jeranaias/rigcon/internal/commands"
	"github.com/jeranaias/rigcon/internal/format"
	"github.com/jeranaias/rigcon/internal/help"
	"github.com/jeranaias/rigcon/internal/logging"
	"github.com/jeranaias/rigcon/internal/ui/styles"
)

// =============================================================================
// EXPORTED TYPES
// =============================================================================

type (
	// Args is one parsed input line: flags, key=value pairs and positionals.
	// Positional 0 is the command name.
	Args = commands.ParsedArgs

	// Handler runs a command.
	Handler = commands.Handler

	// Command is a registered command.
	Command = commands.Command

	// Info carries a command description during Register.
	Info = commands.Info

	// Symbol renders as Symbol(name) in the symbol color.
	Symbol = format.Symbol
)

// Undefined renders as the "undefined" label, distinct from nil ("null").
var Undefined = format.Undefined

// clearScreen homes the cursor and erases everything below it.
var clearScreen = termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, 1, 1) +
	termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 0)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a Console. The zero value is usable: output goes to
// stdout in TrueColor and every message uses its default.
type Options struct {
	// Out receives console output (default os.Stdout)
	Out io.Writer

	// Profile is the color profile output is rendered for; termenv.Ascii
	// disables styling
	Profile termenv.Profile

	// Colors overrides keyword colors, e.g. {"danger": "#ff5555"}
	Colors map[string]string

	// Width reports the current terminal width; <= 0 means unknown
	Width func() int

	// DefaultWidth is used when Width is nil or reports unknown (default 80)
	DefaultWidth int

	// Indent is the continuation indent; 0 derives it from the timestamp
	Indent int

	// IndentDivisor divides the timestamp width when Indent is 0 (default 1)
	IndentDivisor int

	// TimestampFormat is a time layout for the bracketed timestamp
	TimestampFormat string

	// Prompt is shown before each input line
	Prompt string

	// StopDelay is how long stop waits before the loop ends (default 100ms)
	StopDelay time.Duration

	// ClearOnStart clears the screen, without confirmation, when Run starts
	ClearOnStart bool

	// Messages
	ClearMessage    string
	ShutdownMessage string
	UnknownMessage  string

	// Help is the help template source (default: built-in template)
	Help *help.Source

	// WatchHelp reloads the help template while Run is active
	WatchHelp bool

	// HelpLabels fill the template's {info.*} placeholders
	HelpLabels help.Labels

	// Logger receives diagnostics (default: discarded)
	Logger *log.Logger

	// Exit, when set, is called once the stop delay has elapsed
	Exit func()

	// Now returns the time used for timestamps (default time.Now)
	Now func() time.Time
}

func (o *Options) applyDefaults() {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.DefaultWidth <= 0 {
		o.DefaultWidth = format.DefaultWidth
	}
	if o.TimestampFormat == "" {
		o.TimestampFormat = "15:04:05"
	}
	if o.StopDelay == 0 {
		o.StopDelay = 100 * time.Millisecond
	}
	if o.ClearMessage == "" {
		o.ClearMessage = "Console cleared"
	}
	if o.ShutdownMessage == "" {
		o.ShutdownMessage = "Shutting down..."
	}
	if o.UnknownMessage == "" {
		o.UnknownMessage = "Unknown command:"
	}
	if o.HelpLabels == (help.Labels{}) {
		o.HelpLabels = help.Labels{Name: "Command", Description: "Description", Unknown: "No description"}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// =============================================================================
// CONSOLE
// =============================================================================

// Console is an interactive line console: it reads one command per line,
// dispatches it to a registered handler, and writes timestamped, colored,
// wrapped log lines.
//
// Log, Style and the registry methods are safe to call from any goroutine.
// Handlers run one at a time on the goroutine that called Run.
type Console struct {
	id   uuid.UUID
	opts Options

	registry  *commands.Registry
	styler    *styles.Styler
	resolver  *format.Resolver
	formatter *format.Formatter
	help      *help.Source
	out       *outputQueue
	logger    *log.Logger

	loadWrapper func() (*format.Wrapper, error)
	wrapOnce    sync.Once
	wrapper     *format.Wrapper

	running  atomic.Bool
	stopOnce sync.Once
	stopped  chan struct{}
	unknown  atomic.Int64
}

// New creates a console with the built-in clear, stop and help commands
// registered.
func New(opts Options) (*Console, error) {
	opts.applyDefaults()

	table, err := styles.NewColorTable(opts.Colors)
	if err != nil {
		return nil, fmt.Errorf("color table: %w", err)
	}

	src := opts.Help
	if src == nil {
		src, _ = help.NewSource("")
	}

	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger(io.Discard)
	}
	logger = logger.With("console", id.String())

	styler := styles.NewStyler(opts.Out, opts.Profile, table)
	c := &Console{
		id:        id,
		opts:      opts,
		registry:  commands.NewRegistry(),
		styler:    styler,
		resolver:  format.NewResolver(table),
		formatter: format.NewFormatter(styler),
		help:      src,
		out:       newOutputQueue(opts.Out),
		logger:    logger,
		stopped:   make(chan struct{}),
	}
	c.loadWrapper = func() (*format.Wrapper, error) {
		return format.NewWrapper(format.WrapOptions{
			Indent:        opts.Indent,
			IndentDivisor: opts.IndentDivisor,
		})
	}

	commands.RegisterBuiltins(c.registry, c)
	return c, nil
}

// ID returns the instance id that tags this console's diagnostics.
func (c *Console) ID() uuid.UUID { return c.id }

// =============================================================================
// OUTPUT
// =============================================================================

// Log writes one timestamped line built from args.
//
// Each argument is rendered by type and the results are joined with spaces.
// A string argument equal to a color keyword (success, warning, danger,
// info, primary, secondary, magenta) colors the whole message and is left
// out of it; see format.Resolver.ExcludeToken for calls with several
// keywords. The line is wrapped to the terminal width with a hanging indent.
func (c *Console) Log(args ...any) {
	color, colored := c.resolver.Resolve(args)
	if token, ok := c.resolver.ExcludeToken(args); ok {
		args = format.Exclude(args, token)
	}

	var message string
	if colored {
		message = c.formatter.RenderTinted(args, color)
	} else {
		message = c.formatter.RenderAll(args)
	}
	timestamp := c.styler.Foreground("["+c.opts.Now().Format(c.opts.TimestampFormat)+"]", styles.Timestamp)

	var lines []string
	if w := c.lineWrapper(); w != nil {
		lines = w.Wrap(timestamp, message, c.width())
	} else {
		lines = []string{timestamp + " " + message}
	}
	c.out.Write(strings.Join(lines, "\n") + "\n")
}

// Clear homes the cursor and clears the screen. With confirm set, a
// confirmation line is logged afterwards.
func (c *Console) Clear(confirm bool) {
	c.out.Write(clearScreen)
	if confirm {
		c.Log(c.opts.ClearMessage)
	}
}

// Style colors text with colorID: a color keyword or any lipgloss color
// literal ("#ff00ff", "212").
func (c *Console) Style(text, colorID string) string {
	return c.styler.Style(text, colorID)
}

// Flush blocks until all output logged so far has been written.
func (c *Console) Flush() {
	c.out.Flush()
}

// Close flushes pending output and stops the output writer. Output logged
// after Close is dropped.
func (c *Console) Close() {
	c.out.Close()
}

// lineWrapper loads the wrapper on first use. A failed load is logged once
// and output continues unwrapped.
func (c *Console) lineWrapper() *format.Wrapper {
	c.wrapOnce.Do(func() {
		w, err := c.loadWrapper()
		if err != nil {
			c.logger.Warn("line wrapper unavailable, writing unwrapped output", "err", err)
			return
		}
		c.wrapper = w
	})
	return c.wrapper
}

func (c *Console) width() int {
	if c.opts.Width != nil {
		if w := c.opts.Width(); w > 0 {
			return w
		}
	}
	return c.opts.DefaultWidth
}

// =============================================================================
// COMMANDS
// =============================================================================

// Register adds commands from a loose argument list and returns the names
// committed. See commands.Registry.Register for how arguments are sorted.
//
//	con.Register("greet", "Say hello", func(args console.Args) {
//	    con.Log("hello", args.Positional(1), "success")
//	})
func (c *Console) Register(args ...any) []string {
	return c.registry.Register(args...)
}

// Add registers a single command, replacing any command of the same name.
func (c *Console) Add(name, description string, handler Handler) {
	c.registry.Add(commands.Command{Name: name, Description: description, Handler: handler})
}

// Lookup returns the command registered under exactly name.
func (c *Console) Lookup(name string) (Command, bool) {
	return c.registry.Lookup(name)
}

// List returns registered command names in registration order.
func (c *Console) List() []string {
	return c.registry.Names()
}

// Dispatch runs one input line. An unknown command name is reported on the
// console in the danger color. It reports whether a handler ran.
func (c *Console) Dispatch(line string) bool {
	name := commands.CommandName(line)
	if name == "" {
		return false
	}

	err := c.registry.Dispatch(name, commands.Parse(line))
	var unknown *commands.UnknownCommandError
	if errors.As(err, &unknown) {
		n := c.unknown.Add(1)
		c.logger.Debug("unknown command", "name", unknown.Name, "count", n)
		c.Log(c.opts.UnknownMessage+" "+unknown.Name, "danger")
		return false
	}
	return err == nil
}

// HelpTemplate returns the current help template and its labels.
func (c *Console) HelpTemplate() (string, help.Labels) {
	return c.help.Template(), c.opts.HelpLabels
}
