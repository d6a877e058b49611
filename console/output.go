// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"io"
	"sync"
)

// =============================================================================
// OUTPUT QUEUE
// =============================================================================

// outputQueueSize bounds how far Log can run ahead of the terminal.
const outputQueueSize = 256

type outputItem struct {
	text string
	ack  chan struct{}
}

// outputQueue is the only writer to the console output. Items are written
// in the order they were sent.
type outputQueue struct {
	w io.Writer

	mu     sync.Mutex
	closed bool
	ch     chan outputItem
	done   chan struct{}
}

func newOutputQueue(w io.Writer) *outputQueue {
	q := &outputQueue{
		w:    w,
		ch:   make(chan outputItem, outputQueueSize),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *outputQueue) run() {
	defer close(q.done)
	for item := range q.ch {
		if item.text != "" {
			_, _ = io.WriteString(q.w, item.text)
		}
		if item.ack != nil {
			close(item.ack)
		}
	}
}

// send enqueues item. It reports false once the queue is closed.
func (q *outputQueue) send(item outputItem) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.ch <- item
	return true
}

// Write enqueues text for output.
func (q *outputQueue) Write(text string) {
	q.send(outputItem{text: text})
}

// Flush blocks until everything enqueued before it has been written.
func (q *outputQueue) Flush() {
	ack := make(chan struct{})
	if q.send(outputItem{ack: ack}) {
		<-ack
	}
}

// Close drains the queue and stops the writer. Later writes are dropped.
func (q *outputQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()
	<-q.done
}
