// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local .env file, when
present, is loaded first so developers can run the server without exporting
variables by hand.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (GraphQL client, store) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/countries/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the countries API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Upstream GraphQL API
	GraphQLEndpoint string        `env:"GRAPHQL_ENDPOINT" envDefault:"https://countries.trevorblades.com/graphql"`
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT"    envDefault:"10s"`

	// Observability
	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	// Cross-Origin Resource Sharing (comma-separated origin suffixes)
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load reads the optional .env file named by ENV_FILE (default ".env") and
// then parses environment variables into a [Config] struct.
//
// Variables already present in the process environment win over the file.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read %s: %w", envFile, err)
	}

	return Parse()
}

// Parse maps the current process environment into a [Config] without touching
// any .env file.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = constants.DefaultFetchTimeout
	}

	if strings.TrimSpace(cfg.GraphQLEndpoint) == "" {
		return nil, errors.New("config: GRAPHQL_ENDPOINT must not be empty")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins splits ExtraOrigins into trimmed, non-empty suffixes.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
