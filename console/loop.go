// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"context"
	"errors"
	"io"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jeranaias/rigcon/internal/logging"
)

// =============================================================================
// LINE INPUT
// =============================================================================

// LineReader supplies input lines. ReadLine blocks until a line is entered.
// It returns io.EOF at end of input and ErrAborted when the user interrupts
// the prompt; both stop the console.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

var (
	// ErrAborted is returned by a LineReader when the prompt is interrupted.
	ErrAborted = errors.New("console: input aborted")

	// ErrStopped is returned by Run on a console that has already stopped.
	ErrStopped = errors.New("console: stopped")

	// ErrRunning is returned by Run while another Run is active.
	ErrRunning = errors.New("console: already running")
)

type readResult struct {
	line string
	err  error
}

// =============================================================================
// READ-DISPATCH LOOP
// =============================================================================

// Run reads lines from r and dispatches them until the console stops or ctx
// is done. It returns nil after stop (or end of input) and ctx.Err() on
// cancellation.
//
// Reading runs on its own goroutine, so the next line is already being read
// while a handler runs. Handlers themselves run one at a time on the
// goroutine that called Run.
func (c *Console) Run(ctx context.Context, r LineReader) error {
	select {
	case <-c.stopped:
		return ErrStopped
	default:
	}
	if !c.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer c.running.Store(false)

	ctx, cancel := context.WithCancel(logging.WithLogger(ctx, c.logger))
	defer cancel()

	if c.opts.WatchHelp {
		go func() {
			if err := c.help.Watch(ctx); err != nil {
				c.logger.Warn("help template watch stopped", "err", err)
			}
		}()
	}

	if c.opts.ClearOnStart {
		c.Clear(false)
	}

	lines := make(chan readResult)
	go c.readLines(ctx, r, lines)

	c.logger.Debug("console started")
	for {
		select {
		case <-ctx.Done():
			c.out.Flush()
			return ctx.Err()

		case <-c.stopped:
			return nil

		case res := <-lines:
			select {
			case <-c.stopped:
				return nil
			default:
			}
			if res.err != nil {
				if !errors.Is(res.err, io.EOF) && !errors.Is(res.err, ErrAborted) {
					c.logger.Error("reading input failed", "err", res.err)
				}
				c.Shutdown()
				continue
			}
			c.Dispatch(norm.NFC.String(res.line))
		}
	}
}

// readLines feeds lines to out until a read fails or the loop goes away.
func (c *Console) readLines(ctx context.Context, r LineReader, out chan<- readResult) {
	for {
		line, err := r.ReadLine(c.opts.Prompt)
		select {
		case out <- readResult{line: line, err: err}:
		case <-ctx.Done():
			return
		case <-c.stopped:
			return
		}
		if err != nil {
			return
		}
	}
}

// =============================================================================
// SHUTDOWN
// =============================================================================

// Shutdown logs the shutdown message and stops the console after the stop
// delay. Pending output is flushed before Run returns and before Exit is
// called. Calls after the first do nothing.
func (c *Console) Shutdown() {
	c.stopOnce.Do(func() {
		c.Log(c.opts.ShutdownMessage)
		c.logger.Debug("shutdown scheduled", "delay", c.opts.StopDelay)

		time.AfterFunc(c.opts.StopDelay, func() {
			c.out.Flush()
			close(c.stopped)
			if c.opts.Exit != nil {
				c.opts.Exit()
			}
		})
	})
}

// Done returns a channel that is closed once the console has stopped.
func (c *Console) Done() <-chan struct{} {
	return c.stopped
}
