// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

// Package config loads the service configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in defaults for every setting
//  2. Config File: optional YAML file (CONFIG_PATH or config.yaml)
//  3. Environment Variables: override any mapped setting
//
// A .env file in the working directory, when present, is loaded into the
// process environment before step 3.
//
// Config is immutable after Load and safe for concurrent reads.
package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/estimo/internal/logging"
	"github.com/tomtom215/estimo/internal/recommend"
	"github.com/tomtom215/estimo/internal/similarity"
	"github.com/tomtom215/estimo/internal/snapshot"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig       `koanf:"server"`
	Logging    LoggingConfig      `koanf:"logging"`
	Data       DataConfig         `koanf:"data"`
	Reload     ReloadConfig       `koanf:"reload"`
	Recommend  recommend.Config   `koanf:"recommend"`
	Similarity similarity.Weights `koanf:"similarity"`
	Security   SecurityConfig     `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RequestTimeout bounds the work of a single handler.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// SwaggerEnabled serves the API docs under /swagger/.
	SwaggerEnabled bool `koanf:"swagger_enabled"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller adds file:line to each event.
	Caller bool `koanf:"caller"`
}

// ToLogging converts to the logging package configuration.
func (l LoggingConfig) ToLogging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}

// DataConfig locates the catalog, the model artifact and the optional image
// database.
type DataConfig struct {
	CatalogPath  string `koanf:"catalog_path"`
	ArtifactPath string `koanf:"artifact_path"`

	// ImageDBPath is a SQLite database with a property_images table. Empty
	// disables image references.
	ImageDBPath string `koanf:"image_db_path"`
}

// Sources converts to snapshot builder sources.
func (d DataConfig) Sources() snapshot.Sources {
	return snapshot.Sources{
		CatalogPath:  d.CatalogPath,
		ArtifactPath: d.ArtifactPath,
		ImageDBPath:  d.ImageDBPath,
	}
}

// ReloadConfig controls hot reload of the data sources.
type ReloadConfig struct {
	// Enabled watches the catalog and artifact files for changes.
	Enabled bool `koanf:"enabled"`

	// MinInterval is the minimum time between file-triggered rebuilds.
	MinInterval time.Duration `koanf:"min_interval"`

	// BreakerFailures is the number of consecutive failed rebuilds that
	// opens the breaker.
	BreakerFailures uint32 `koanf:"breaker_failures"`

	// BreakerTimeout is how long the breaker stays open.
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`
}

// ToReloader converts to the snapshot reloader configuration.
func (r ReloadConfig) ToReloader() snapshot.ReloaderConfig {
	return snapshot.ReloaderConfig{
		BreakerFailures: r.BreakerFailures,
		BreakerTimeout:  r.BreakerTimeout,
	}
}

// SecurityConfig holds browser-facing protections.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// AdminReloadEnabled exposes POST /admin/reload.
	AdminReloadEnabled bool `koanf:"admin_reload_enabled"`
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
