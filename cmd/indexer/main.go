// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command indexer loads a title-catalog XML dump into a MeiliSearch index,
// replacing the index's prior contents.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables; apply flag overrides.
//  3. Connect to MeiliSearch (health check).
//  4. Run the ingest pipeline: open dump, reset index, stream batches.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/yomira-indexer/internal/catalog"
	"github.com/taibuivan/yomira-indexer/internal/ingest"
	"github.com/taibuivan/yomira-indexer/internal/platform/apperr"
	"github.com/taibuivan/yomira-indexer/internal/platform/config"
	"github.com/taibuivan/yomira-indexer/internal/platform/meili"
)

var rootCmd = &cobra.Command{
	Use:   "indexer",
	Short: "Load a title catalog dump into MeiliSearch",
	Long: `Load a title catalog dump into MeiliSearch.

Reads the dump one entry at a time, flattens every entry into a sparse
search document (main title plus per-language official and short titles)
and submits the documents in fixed-size batches. Existing documents in the
target index are deleted first, so each run fully replaces the index.

Configuration comes from environment variables (MEILI_URL, INDEX_UID, ...);
flags override individual values.

Examples:
  indexer                                   # defaults: local instance, "animes" index
  indexer --file anime-titles.xml.gz        # gzipped dump
  indexer --url https://search.example.com --api-key $KEY`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.Flags().String("url", "", "MeiliSearch API base URL (default http://127.0.0.1:7700)")
	rootCmd.Flags().String("api-key", "", "MeiliSearch API key")
	rootCmd.Flags().String("index-uid", "", `uid of the target index (default "animes")`)
	rootCmd.Flags().String("index-name", "", `display name for a newly created index (default "Animes")`)
	rootCmd.Flags().String("file", "", `path to the catalog dump (default "anime-titles.xml")`)
	rootCmd.Flags().Int("batch-size", 0, "documents per submission batch (default 500)")
	rootCmd.Flags().Duration("pause", 0, "pause between full-batch submissions (default 1s)")
	rootCmd.Flags().Bool("debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(apperr.ExitCode(err))
	}
}

func run(cmd *cobra.Command) error {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Logs go to stderr as JSON; stdout is reserved for the progress line.
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", "yomira-indexer"))
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	if cfg.Debug {
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})).With(slog.String("app", "yomira-indexer"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Info("configuration_loaded",
		slog.String("url", cfg.MeiliURL),
		slog.String("index_uid", cfg.IndexUID),
		slog.String("catalog", cfg.CatalogPath),
		slog.Int("batch_size", cfg.BatchSize),
	)

	ctx := cmd.Context()

	// ── 3. MeiliSearch ────────────────────────────────────────────────────
	client, err := meili.NewClient(ctx, cfg.MeiliURL, cfg.MeiliAPIKey, log)
	if err != nil {
		return err
	}
	index := meili.NewIndex(client, cfg.IndexUID, cfg.IndexName, log)

	// ── 4. Ingest Pipeline ────────────────────────────────────────────────
	driver := ingest.NewDriver(index, ingest.NewConsoleReporter(os.Stdout), cfg.BatchSize, cfg.BatchPause, log)

	_, err = driver.Run(ctx, func() (ingest.EntrySource, error) {
		source, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		return source, nil
	})
	return err
}

// applyFlagOverrides copies explicitly set flags over the env-derived config.
// Unset flags leave the environment values (and their defaults) in place.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("url") {
		cfg.MeiliURL, _ = flags.GetString("url")
	}
	if flags.Changed("api-key") {
		cfg.MeiliAPIKey, _ = flags.GetString("api-key")
	}
	if flags.Changed("index-uid") {
		cfg.IndexUID, _ = flags.GetString("index-uid")
	}
	if flags.Changed("index-name") {
		cfg.IndexName, _ = flags.GetString("index-name")
	}
	if flags.Changed("file") {
		cfg.CatalogPath, _ = flags.GetString("file")
	}
	if flags.Changed("batch-size") {
		cfg.BatchSize, _ = flags.GetInt("batch-size")
	}
	if flags.Changed("pause") {
		cfg.BatchPause, _ = flags.GetDuration("pause")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
}
