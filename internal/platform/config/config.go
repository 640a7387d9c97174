// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

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
  - DI-Friendly: Passed to core components (DB, Redis, Planner) via constructors.
  - Zero Hidden State: No global variables are used to store config.

Backend availability is a property of this configuration, not a mutable
global flag: an empty DATABASE_URL means the service runs in offline mode,
serving every read from the embedded reference dataset.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/rmonteiro/meliponario/pkg/slice"
)

// # Configuration Schema

// Config holds all runtime configuration for the Meliponário API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL).
	//
	// Deliberately NOT required: a missing or empty DSN is the supported
	// "remote backend unavailable" state, in which all reads are answered
	// from the embedded dataset and mutations go to the Redis fallback.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Store (Redis) — durable fallback for offline mutations.
	RedisURL string `env:"REDIS_URL,required"`

	// Geocoding services. Base URLs are configurable so tests can point
	// them at local fixtures.
	PostalLookupBaseURL string `env:"POSTAL_LOOKUP_BASE_URL" envDefault:"https://viacep.com.br/ws"`
	GeocoderBaseURL     string `env:"GEOCODER_BASE_URL"      envDefault:"https://nominatim.openstreetmap.org"`

	// GeocoderUserAgent identifies this client to the geocoding services.
	// Public geocoders reject requests without an identifying agent.
	GeocoderUserAgent string `env:"GEOCODER_USER_AGENT" envDefault:"meliponario-api/0.1 (contato@meliponario.com.br)"`

	// Cross-Origin Resource Sharing: comma-separated extra allowed origins
	// beyond the canonical domain (staging frontends, previews).
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// BackendConfigured reports whether a remote backend DSN is present.
//
// This is the static half of the availability probe; the dynamic half
// (reachability) is observed per call by the query planner.
func (c *Config) BackendConfigured() bool {
	return c.DatabaseURL != ""
}

// OriginAllowed reports whether origin is in the configured extra-origins
// allowlist. The middleware consults it only outside development mode.
func (c *Config) OriginAllowed(origin string) bool {
	return slice.Contains(c.ExtraOrigins, origin)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
