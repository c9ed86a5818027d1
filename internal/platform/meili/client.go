// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package meili provides a managed client for the MeiliSearch document store.

It is the submission sink of the indexing pipeline: documents flow in, the
search engine serves them out. Nothing here reads documents back.

Core Responsibilities:

  - Connectivity: Validates the instance with a health check at startup.
  - Index lifecycle: Gets or creates the target index by uid, then clears it
    so every run is a full replace.
  - Bulk upsert: Submits document batches in source order.

This infrastructure component keeps the vendor client out of the pipeline
packages; the driver only sees the narrow sink interface it needs.
*/
package meili

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meilisearch/meilisearch-go"

	"github.com/taibuivan/yomira-indexer/internal/catalog"
	"github.com/taibuivan/yomira-indexer/internal/platform/apperr"
)

// primaryKey is the document field MeiliSearch uses for identity. Matches
// the "id" field every normalized document carries.
const primaryKey = "id"

// taskPollInterval is how often index-creation task completion is polled.
const taskPollInterval = 50 * time.Millisecond

// NewClient connects to a MeiliSearch instance and verifies it is healthy.
//
// # Parameters
//   - ctx: Context for the health check.
//   - url: Base URL of the MeiliSearch API.
//   - apiKey: Optional API key; empty for unsecured instances.
//   - logger: Structured logger for connection events.
//
// Fails with a SINK_UNAVAILABLE [apperr.AppError] naming the URL when no
// instance responds.
func NewClient(ctx context.Context, url, apiKey string, logger *slog.Logger) (meilisearch.ServiceManager, error) {
	var opts []meilisearch.Option
	if apiKey != "" {
		opts = append(opts, meilisearch.WithAPIKey(apiKey))
	}

	client := meilisearch.New(url, opts...)

	// Validate connectivity immediately at startup.
	health, err := client.HealthWithContext(ctx)
	if err != nil {
		return nil, apperr.SinkUnavailable(url, err)
	}

	logger.Info("meilisearch connected",
		slog.String("url", url),
		slog.String("status", health.Status),
	)

	return client, nil
}

// Index is a handle on one MeiliSearch index, implementing the pipeline's
// sink interface. Construction is purely local; no remote call happens
// before [Index.Reset].
type Index struct {
	client meilisearch.ServiceManager
	uid    string
	name   string
	log    *slog.Logger
}

// NewIndex returns a handle on the index with the given uid. The display
// name only exists as log metadata: MeiliSearch dropped per-index display
// names, so uid is the sole identity.
func NewIndex(client meilisearch.ServiceManager, uid, name string, logger *slog.Logger) *Index {
	return &Index{
		client: client,
		uid:    uid,
		name:   name,
		log:    logger,
	}
}

// Reset gets or creates the index, then deletes every document in it,
// making the upcoming run a full replace rather than an append. Deletion is
// enqueued; MeiliSearch processes it before any subsequently submitted
// batch.
func (i *Index) Reset(ctx context.Context) error {
	if err := i.ensure(ctx); err != nil {
		return err
	}

	if _, err := i.client.Index(i.uid).DeleteAllDocumentsWithContext(ctx); err != nil {
		return fmt.Errorf("meili: failed to clear index %q: %w", i.uid, err)
	}

	return nil
}

// AddDocuments submits one batch for bulk upsert. Documents are sparse maps;
// MeiliSearch tolerates heterogeneous field sets within a batch.
func (i *Index) AddDocuments(ctx context.Context, batch []catalog.Document) error {
	if _, err := i.client.Index(i.uid).AddDocumentsWithContext(ctx, batch); err != nil {
		return fmt.Errorf("meili: failed to add %d documents to index %q: %w", len(batch), i.uid, err)
	}
	return nil
}

// ensure creates the index when absent and reuses it otherwise.
func (i *Index) ensure(ctx context.Context) error {
	indexes, err := i.client.ListIndexesWithContext(ctx, &meilisearch.IndexesQuery{})
	if err != nil {
		return fmt.Errorf("meili: failed to list indexes: %w", err)
	}

	for _, result := range indexes.Results {
		if result.UID == i.uid {
			i.log.Info("index reused", slog.String("uid", i.uid))
			return nil
		}
	}

	task, err := i.client.CreateIndexWithContext(ctx, &meilisearch.IndexConfig{
		Uid:        i.uid,
		PrimaryKey: primaryKey,
	})
	if err != nil {
		return fmt.Errorf("meili: failed to create index %q: %w", i.uid, err)
	}
	if _, err := i.client.WaitForTaskWithContext(ctx, task.TaskUID, taskPollInterval); err != nil {
		return fmt.Errorf("meili: index creation %q did not complete: %w", i.uid, err)
	}

	i.log.Info("index created",
		slog.String("uid", i.uid),
		slog.String("name", i.name),
	)

	return nil
}
