// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package search_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmonteiro/meliponario/internal/search"
)

// recorder collects executions from a debouncer.
type recorder struct {
	mu    sync.Mutex
	terms []string
	seqs  []uint64
}

func (rec *recorder) execute(_ context.Context, term string, seq uint64) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.terms = append(rec.terms, term)
	rec.seqs = append(rec.seqs, seq)
}

func (rec *recorder) snapshot() ([]string, []uint64) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]string(nil), rec.terms...), append([]uint64(nil), rec.seqs...)
}

/*
TestDebouncer_CoalescesBursts verifies the trailing-edge contract: a burst
of updates inside the quiet interval yields exactly one execution, carrying
the final term.
*/
func TestDebouncer_CoalescesBursts(t *testing.T) {
	rec := &recorder{}
	debouncer := search.NewDebouncer(40*time.Millisecond, rec.execute)
	defer debouncer.Close()

	for _, term := range []string{"j", "ja", "jat", "jata", "jataí"} {
		debouncer.Update(term)
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(120 * time.Millisecond)

	terms, seqs := rec.snapshot()
	require.Len(t, terms, 1)
	assert.Equal(t, "jataí", terms[0])
	assert.Equal(t, uint64(1), seqs[0])
}

/*
TestDebouncer_EmptyTermFiresImmediately verifies that clearing the term
skips the quiet interval and cancels the pending burst.
*/
func TestDebouncer_EmptyTermFiresImmediately(t *testing.T) {
	rec := &recorder{}
	debouncer := search.NewDebouncer(80*time.Millisecond, rec.execute)
	defer debouncer.Close()

	debouncer.Update("uruçu")
	debouncer.Update("")

	// Well inside the quiet interval the empty-term execution is already out.
	time.Sleep(30 * time.Millisecond)
	terms, _ := rec.snapshot()
	require.Len(t, terms, 1)
	assert.Equal(t, "", terms[0])

	// And the burst's own timer never fires afterwards.
	time.Sleep(120 * time.Millisecond)
	terms, _ = rec.snapshot()
	assert.Len(t, terms, 1)
}

/*
TestDebouncer_SequenceNumbersIncrease verifies that consecutive
executions carry strictly increasing sequence numbers.
*/
func TestDebouncer_SequenceNumbersIncrease(t *testing.T) {
	rec := &recorder{}
	debouncer := search.NewDebouncer(20*time.Millisecond, rec.execute)
	defer debouncer.Close()

	debouncer.Update("mandaçaia")
	time.Sleep(60 * time.Millisecond)
	debouncer.Update("tiúba")
	time.Sleep(60 * time.Millisecond)

	_, seqs := rec.snapshot()
	require.Len(t, seqs, 2)
	assert.Equal(t, uint64(1), seqs[0])
	assert.Equal(t, uint64(2), seqs[1])
}

/*
TestDebouncer_DiscardsStaleResponses verifies the out-of-order guard: once
a newer response is applied, an older in-flight response is rejected.
*/
func TestDebouncer_DiscardsStaleResponses(t *testing.T) {
	debouncer := search.NewDebouncer(20*time.Millisecond, func(context.Context, string, uint64) {})
	defer debouncer.Close()

	// Response for seq 2 lands first.
	assert.True(t, debouncer.Accept(2))
	// The slow seq-1 response must not overwrite it.
	assert.False(t, debouncer.Accept(1))
	// Replays of the applied response are also rejected.
	assert.False(t, debouncer.Accept(2))
	// Fresher responses keep flowing.
	assert.True(t, debouncer.Accept(3))
}

/*
TestDebouncer_Flush verifies that an explicit submit fires the pending
execution without waiting out the quiet interval.
*/
func TestDebouncer_Flush(t *testing.T) {
	rec := &recorder{}
	debouncer := search.NewDebouncer(500*time.Millisecond, rec.execute)
	defer debouncer.Close()

	debouncer.Update("guaraipo")
	debouncer.Flush()

	time.Sleep(30 * time.Millisecond)
	terms, _ := rec.snapshot()
	require.Len(t, terms, 1)
	assert.Equal(t, "guaraipo", terms[0])
}

/*
TestDebouncer_CloseCancelsPending verifies that Close suppresses the
pending execution and cancels the executor context.
*/
func TestDebouncer_CloseCancelsPending(t *testing.T) {
	rec := &recorder{}
	var executorContext context.Context
	var contextMu sync.Mutex

	debouncer := search.NewDebouncer(30*time.Millisecond, func(ctx context.Context, term string, seq uint64) {
		contextMu.Lock()
		executorContext = ctx
		contextMu.Unlock()
		rec.execute(ctx, term, seq)
	})

	// Capture a context from a completed execution first.
	debouncer.Update("")
	time.Sleep(20 * time.Millisecond)

	// A pending burst is cancelled by Close.
	debouncer.Update("borá")
	debouncer.Close()
	time.Sleep(80 * time.Millisecond)

	terms, _ := rec.snapshot()
	assert.Len(t, terms, 1)

	contextMu.Lock()
	defer contextMu.Unlock()
	require.NotNil(t, executorContext)
	assert.ErrorIs(t, executorContext.Err(), context.Canceled)
}
