// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

/*
Package search provides the debounced trigger that sits between a rapidly
changing search input and the query planner.

Keystrokes arrive faster than queries should be issued. The [Debouncer]
coalesces a burst of term updates into a single trailing-edge execution,
fires immediately when the term empties (clearing a filter must feel
instant), and hands every execution a monotonically increasing sequence
number so that out-of-order responses from slow queries can be discarded
instead of overwriting fresher results.
*/
package search

import (
	"context"
	"sync"
	"time"
)

// DefaultQuietInterval is the trailing-edge quiet period after the last
// update before a query fires.
const DefaultQuietInterval = 300 * time.Millisecond

// Executor runs the actual search. The sequence number identifies this
// execution; the executor (or whoever consumes its response) must pass it
// back through [Debouncer.Accept] before applying results.
type Executor func(ctx context.Context, term string, seq uint64)

// Debouncer coalesces term updates into trailing-edge executions.
//
// All methods are safe for concurrent use. After [Debouncer.Close] no
// further executions fire.
type Debouncer struct {
	interval time.Duration
	execute  Executor

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	timer   *time.Timer
	term    string
	seq     uint64
	applied uint64
	closed  bool
}

// NewDebouncer constructs a debouncer firing execute after interval of
// quiet. A non-positive interval falls back to [DefaultQuietInterval].
func NewDebouncer(interval time.Duration, execute Executor) *Debouncer {
	if interval <= 0 {
		interval = DefaultQuietInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Debouncer{
		interval: interval,
		execute:  execute,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Update records a new input term and (re)schedules the trailing-edge
// execution. An empty term cancels any pending timer and fires
// immediately: the user cleared the search box and expects the unfiltered
// view without the debounce delay.
func (debouncer *Debouncer) Update(term string) {
	debouncer.mu.Lock()
	defer debouncer.mu.Unlock()

	if debouncer.closed {
		return
	}
	debouncer.term = term
	if debouncer.timer != nil {
		debouncer.timer.Stop()
		debouncer.timer = nil
	}

	if term == "" {
		debouncer.fireLocked()
		return
	}

	debouncer.timer = time.AfterFunc(debouncer.interval, func() {
		debouncer.mu.Lock()
		defer debouncer.mu.Unlock()
		if debouncer.closed {
			return
		}
		debouncer.fireLocked()
	})
}

// Flush fires any pending execution immediately (submit on Enter).
func (debouncer *Debouncer) Flush() {
	debouncer.mu.Lock()
	defer debouncer.mu.Unlock()

	if debouncer.closed || debouncer.timer == nil {
		return
	}
	debouncer.timer.Stop()
	debouncer.timer = nil
	debouncer.fireLocked()
}

// fireLocked issues the execution for the current term with the next
// sequence number. Caller holds the mutex; the executor runs outside it.
func (debouncer *Debouncer) fireLocked() {
	debouncer.seq++
	seq := debouncer.seq
	term := debouncer.term

	go debouncer.execute(debouncer.ctx, term, seq)
}

/*
Accept reports whether a response with the given sequence number may be
applied, and records it as applied when so.

Description: Executions fire in order but their responses need not return
in order — a slow seq-3 query must not overwrite the already-applied
seq-4 results. Accept admits a response only when it is newer than every
previously applied one.

Returns:
  - bool: true when the response is fresh and now recorded as applied
*/
func (debouncer *Debouncer) Accept(seq uint64) bool {
	debouncer.mu.Lock()
	defer debouncer.mu.Unlock()

	if seq <= debouncer.applied {
		return false
	}
	debouncer.applied = seq
	return true
}

// Close cancels the pending timer and the context handed to executors.
func (debouncer *Debouncer) Close() {
	debouncer.mu.Lock()
	if debouncer.timer != nil {
		debouncer.timer.Stop()
		debouncer.timer = nil
	}
	debouncer.closed = true
	debouncer.mu.Unlock()

	debouncer.cancel()
}
