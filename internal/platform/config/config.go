// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (sink client, driver) via constructors.
  - Zero Hidden State: No global variables are used to store config.

Command-line flags may override individual fields before the config is handed
to the pipeline; after that point nothing mutates it.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for one indexing run.
type Config struct {

	// Search sink (MeiliSearch)
	MeiliURL    string `env:"MEILI_URL"     envDefault:"http://127.0.0.1:7700"`
	MeiliAPIKey string `env:"MEILI_API_KEY"`

	// Target index identity
	IndexUID  string `env:"INDEX_UID"  envDefault:"animes"`
	IndexName string `env:"INDEX_NAME" envDefault:"Animes"`

	// CatalogPath is the filesystem path to the title dump. A ".gz" suffix
	// enables transparent decompression.
	CatalogPath string `env:"CATALOG_PATH" envDefault:"anime-titles.xml"`

	// Batching behaviour
	BatchSize  int           `env:"BATCH_SIZE"  envDefault:"500"`
	BatchPause time.Duration `env:"BATCH_PAUSE" envDefault:"1s"`

	Debug bool `env:"DEBUG" envDefault:"false"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("config: batch size must be positive, got %d", c.BatchSize)
	}
	if c.BatchPause < 0 {
		return fmt.Errorf("config: batch pause must not be negative, got %s", c.BatchPause)
	}
	if c.IndexUID == "" {
		return fmt.Errorf("config: index uid must not be empty")
	}
	return nil
}
