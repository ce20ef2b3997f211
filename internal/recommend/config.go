// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package recommend

import (
	"fmt"
	"math"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights scale the parts of the fit score.
	Weights Weights `koanf:"weights" json:"weights"`

	// Limits bound result sizes.
	Limits LimitsConfig `koanf:"limits" json:"limits"`

	// Cache controls the similar-properties result cache.
	Cache CacheConfig `koanf:"cache" json:"cache"`
}

// Weights define the fit score
//
//	fit = PriceProximity*proximity + LocationBonus*[location matches] + BedroomBonus*[bedrooms match]
type Weights struct {
	PriceProximity float64 `koanf:"price_proximity" json:"price_proximity"`
	LocationBonus  float64 `koanf:"location_bonus" json:"location_bonus"`
	BedroomBonus   float64 `koanf:"bedroom_bonus" json:"bedroom_bonus"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultLimit is used when a request does not ask for a positive limit.
	// Default: 10.
	DefaultLimit int `koanf:"default_limit" json:"default_limit"`

	// MaxLimit caps recommendation results.
	// Default: 100.
	MaxLimit int `koanf:"max_limit" json:"max_limit"`

	// DefaultSimilarK is the neighbor count when none is requested.
	// Default: 5.
	DefaultSimilarK int `koanf:"similar_k" json:"similar_k"`

	// MaxSimilarK caps neighbor queries.
	// Default: 50.
	MaxSimilarK int `koanf:"max_similar_k" json:"max_similar_k"`
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	// Enabled turns on similar-properties caching.
	// Default: true.
	Enabled bool `koanf:"enabled" json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `koanf:"ttl" json:"ttl"`

	// MaxEntries is the maximum number of cached entries.
	// Default: 10000.
	MaxEntries int `koanf:"max_entries" json:"max_entries"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			PriceProximity: 1.0,
			LocationBonus:  0.5,
			BedroomBonus:   0.25,
		},
		Limits: LimitsConfig{
			DefaultLimit:    10,
			MaxLimit:        100,
			DefaultSimilarK: 5,
			MaxSimilarK:     50,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	for name, w := range map[string]float64{
		"price_proximity": c.Weights.PriceProximity,
		"location_bonus":  c.Weights.LocationBonus,
		"bedroom_bonus":   c.Weights.BedroomBonus,
	} {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("weights.%s must be a finite non-negative number, got %v", name, w)
		}
	}

	if c.Limits.DefaultLimit < 1 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= limits.default_limit, got %d < %d", c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	if c.Limits.DefaultSimilarK < 1 {
		return fmt.Errorf("limits.similar_k must be positive, got %d", c.Limits.DefaultSimilarK)
	}
	if c.Limits.MaxSimilarK < c.Limits.DefaultSimilarK {
		return fmt.Errorf("limits.max_similar_k must be >= limits.similar_k, got %d < %d", c.Limits.MaxSimilarK, c.Limits.DefaultSimilarK)
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when caching is enabled, got %v", c.Cache.TTL)
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache.max_entries must be non-negative, got %d", c.Cache.MaxEntries)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
