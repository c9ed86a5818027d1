// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/yomira-indexer/internal/catalog"
	"github.com/taibuivan/yomira-indexer/internal/platform/apperr"
)

// Sink receives document batches for bulk upsert. One call per batch; a
// non-nil error aborts the run.
type Sink interface {
	AddDocuments(ctx context.Context, batch []catalog.Document) error
}

// Accumulator buffers normalized documents and hands them to the sink in
// fixed-size batches, preserving source order. It never holds more than one
// batch in memory.
//
// Full-batch submissions are paced by a rate limiter so a large catalog does
// not overwhelm the sink; the final partial flush is never delayed. Pacing
// is a courtesy, not a correctness mechanism.
type Accumulator struct {
	sink    Sink
	size    int
	limiter *rate.Limiter
	log     *slog.Logger

	buffer  []catalog.Document
	batches int
}

// NewAccumulator returns an accumulator submitting batches of size documents
// to sink, with at least pause between consecutive full-batch submissions.
// A zero pause disables pacing.
func NewAccumulator(sink Sink, size int, pause time.Duration, log *slog.Logger) *Accumulator {
	var limiter *rate.Limiter
	if pause > 0 {
		limiter = rate.NewLimiter(rate.Every(pause), 1)
	}

	return &Accumulator{
		sink:    sink,
		size:    size,
		limiter: limiter,
		log:     log,
		buffer:  make([]catalog.Document, 0, size),
	}
}

// Offer appends doc to the current batch and submits the batch once it is
// full. Submission errors propagate unwrapped-but-categorized; the caller
// performs no retry.
func (a *Accumulator) Offer(ctx context.Context, doc catalog.Document) error {
	a.buffer = append(a.buffer, doc)
	if len(a.buffer) < a.size {
		return nil
	}
	return a.submit(ctx, true)
}

// Flush submits whatever remains in the buffer. An empty buffer is a no-op,
// so ceil(N/size) sink calls happen for any N offered documents.
func (a *Accumulator) Flush(ctx context.Context) error {
	if len(a.buffer) == 0 {
		return nil
	}
	return a.submit(ctx, false)
}

// Batches reports how many sink calls have been made so far.
func (a *Accumulator) Batches() int { return a.batches }

func (a *Accumulator) submit(ctx context.Context, paced bool) error {
	// The limiter starts with one token, so the first full batch goes out
	// immediately and later ones are spaced by the configured pause.
	if paced && a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	batch := a.buffer
	if err := a.sink.AddDocuments(ctx, batch); err != nil {
		return apperr.SubmissionFailed(len(batch), err)
	}

	a.batches++
	a.log.Debug("batch submitted",
		slog.Int("batch", a.batches),
		slog.Int("documents", len(batch)),
	)

	// Hand the slice off to the sink for good; a fresh buffer avoids
	// aliasing documents the sink may still reference.
	a.buffer = make([]catalog.Document, 0, a.size)

	return nil
}
