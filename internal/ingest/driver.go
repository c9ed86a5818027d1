// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ingest drives a full-replace load of a title catalog into a search
index.

# Pipeline

	catalog source → Normalize → Accumulator → Sink

The driver consumes the source strictly sequentially: one entry at a time,
one batch in flight at most, batches submitted in source order. A run owns
its target index outright — existing documents are cleared before streaming
begins — so two concurrent runs against the same index are a caller error.

All failures are fatal. A failed run may leave the index partially loaded;
the fix is to re-run, which replaces the index contents wholesale.
*/
package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/taibuivan/yomira-indexer/internal/catalog"
	"github.com/taibuivan/yomira-indexer/internal/platform/apperr"
)

// Index is the driver's view of the target search index: a sink that can
// also be cleared for full-replace semantics.
type Index interface {
	Sink
	// Reset deletes every document currently in the index.
	Reset(ctx context.Context) error
}

// EntrySource yields catalog entries one at a time, ending with [io.EOF].
type EntrySource interface {
	Next() (*catalog.Entry, error)
	Path() string
	Close() error
}

// OpenSource opens the catalog for one forward pass. The driver opens the
// source itself so that a missing file is detected before the index is
// touched.
type OpenSource func() (EntrySource, error)

// Summary describes a completed run.
type Summary struct {
	// Entries is the total number of catalog entries indexed.
	Entries int
	// Batches is the number of sink submissions made.
	Batches int
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Driver orchestrates one ingest run.
type Driver struct {
	index    Index
	progress Reporter
	size     int
	pause    time.Duration
	log      *slog.Logger
}

// NewDriver wires a driver over the target index. batchSize documents are
// submitted per sink call, with pause between full-batch submissions.
func NewDriver(index Index, progress Reporter, batchSize int, pause time.Duration, log *slog.Logger) *Driver {
	return &Driver{
		index:    index,
		progress: progress,
		size:     batchSize,
		pause:    pause,
		log:      log,
	}
}

// Run executes one full load: open source, reset index, stream entries
// through normalization and batching, flush the remainder.
//
// The source is opened before the index is reset, so a missing catalog file
// leaves the index contents untouched.
func (d *Driver) Run(ctx context.Context, open OpenSource) (*Summary, error) {
	started := time.Now()

	source, err := open()
	if err != nil {
		return nil, err
	}
	defer source.Close()

	d.log.Info("catalog opened", slog.String("path", source.Path()))

	// Full-replace semantics: this run owns the index contents from here on.
	if err := d.index.Reset(ctx); err != nil {
		return nil, err
	}
	d.log.Info("index cleared")

	accumulator := NewAccumulator(d.index, d.size, d.pause, d.log)

	indexed := 0
	for {
		entry, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		doc, err := catalog.Normalize(*entry)
		if err != nil {
			return nil, err
		}

		if err := accumulator.Offer(ctx, doc); err != nil {
			return nil, err
		}

		indexed++
		if indexed%d.size == 0 {
			d.progress.Progress(indexed)
		}
	}

	if indexed == 0 {
		return nil, apperr.EmptyCatalog(source.Path())
	}

	if err := accumulator.Flush(ctx); err != nil {
		return nil, err
	}

	summary := &Summary{
		Entries: indexed,
		Batches: accumulator.Batches(),
		Elapsed: time.Since(started),
	}

	d.progress.Done(summary.Entries, summary.Elapsed)
	d.log.Info("catalog indexed",
		slog.Int("entries", summary.Entries),
		slog.Int("batches", summary.Batches),
		slog.Duration("elapsed", summary.Elapsed),
	)

	return summary, nil
}
