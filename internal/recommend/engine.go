// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

// Package recommend ranks catalog listings for a buyer's criteria and
// serves nearest-neighbor "similar properties" queries.
//
// Recommendations filter the catalog and order the survivors by a fit score
// built from price proximity to the requested range plus bonuses for an
// exact location or bedroom match. Ties break by ascending id, so results
// are deterministic.
package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/estimo/internal/cache"
	"github.com/tomtom215/estimo/internal/catalog"
	"github.com/tomtom215/estimo/internal/metrics"
	"github.com/tomtom215/estimo/internal/property"
)

// Engine produces recommendations. It holds no catalog state of its own and
// is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	cache  *cache.Cache[similarKey, []property.RankedCandidate]
}

// NewEngine creates a recommendation engine.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	if cfg.Cache.Enabled {
		e.cache = cache.New[similarKey, []property.RankedCandidate](cfg.Cache.TTL, cfg.Cache.MaxEntries)
	}
	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config { return e.config.Clone() }

// Close releases the result cache.
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

// Invalidate drops every cached similar-properties result. It is called
// after a new snapshot is published.
func (e *Engine) Invalidate() {
	if e.cache != nil {
		e.cache.Clear()
	}
}

// Recommend filters cat by req.Criteria and returns the best-fitting
// listings. An empty match set is not an error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, cat *catalog.Catalog, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	limit := e.effectiveLimit(req.Limit)
	matched := cat.Filter(req.Criteria)
	scorer := newFitScorer(req.Criteria, e.config.Weights)

	items := make([]property.RankedCandidate, len(matched))
	for i, r := range matched {
		items[i] = property.RankedCandidate{Record: r, Score: scorer.score(r)}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Record.ID < items[j].Record.ID
	})
	if len(items) > limit {
		items = items[:limit]
	}

	metrics.RecordRecommendation(len(items), time.Since(start))
	e.logger.Debug().
		Int("matched", len(matched)).
		Int("returned", len(items)).
		Msg("recommendation complete")

	return &Response{Items: items, Matched: len(matched), Limit: limit}, nil
}

func (e *Engine) effectiveLimit(requested int) int {
	switch {
	case requested <= 0:
		return e.config.Limits.DefaultLimit
	case requested > e.config.Limits.MaxLimit:
		return e.config.Limits.MaxLimit
	default:
		return requested
	}
}

// EffectiveK clamps a requested neighbor count the same way Similar does.
func (e *Engine) EffectiveK(requested int) int {
	switch {
	case requested <= 0:
		return e.config.Limits.DefaultSimilarK
	case requested > e.config.Limits.MaxSimilarK:
		return e.config.Limits.MaxSimilarK
	default:
		return requested
	}
}

// Similar returns the k listings nearest to listing id in src, ordered by
// distance then id. An unknown id yields a *property.NotFoundError.
func (e *Engine) Similar(ctx context.Context, src Source, id int64, k int) ([]property.RankedCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k = e.EffectiveK(k)
	key := similarKey{generation: src.Generation(), id: id, k: k}
	if e.cache != nil {
		if hit, ok := e.cache.Get(key); ok {
			metrics.RecordSimilarCache(true)
			return hit, nil
		}
		metrics.RecordSimilarCache(false)
	}

	query, err := src.Catalog().Get(id)
	if err != nil {
		return nil, err
	}

	result := src.Similarity().NearestNeighbors(query, k)
	if e.cache != nil {
		e.cache.Set(key, result)
	}
	return result, nil
}

// fitScorer computes the fit score for one request.
type fitScorer struct {
	weights     Weights
	hasTarget   bool
	target      float64
	scale       float64
	locationKey string
	bedrooms    *int
}

func newFitScorer(c property.FilterCriteria, w Weights) fitScorer {
	s := fitScorer{
		weights:     w,
		locationKey: property.FoldKey(c.Location),
		bedrooms:    c.Bedrooms,
	}

	switch {
	case c.MinPrice != nil && c.MaxPrice != nil:
		s.hasTarget = true
		s.target = (*c.MinPrice + *c.MaxPrice) / 2
		s.scale = (*c.MaxPrice - *c.MinPrice) / 2
	case c.MinPrice != nil:
		s.hasTarget = true
		s.target, s.scale = *c.MinPrice, math.Abs(*c.MinPrice)
	case c.MaxPrice != nil:
		s.hasTarget = true
		s.target, s.scale = *c.MaxPrice, math.Abs(*c.MaxPrice)
	}
	return s
}

// proximity is 1 at the target price and falls linearly to 0 at one scale
// away. Without a price constraint it is 0 for every listing.
func (s fitScorer) proximity(price float64) float64 {
	if !s.hasTarget {
		return 0
	}
	diff := math.Abs(price - s.target)
	if s.scale <= 0 {
		if diff == 0 {
			return 1
		}
		return 0
	}
	p := 1 - diff/s.scale
	return math.Max(0, math.Min(1, p))
}

func (s fitScorer) score(r *property.Record) float64 {
	fit := s.weights.PriceProximity * s.proximity(r.Price)
	if s.locationKey != "" && property.FoldKey(r.Location) == s.locationKey {
		fit += s.weights.LocationBonus
	}
	if s.bedrooms != nil && r.Bedrooms != nil && *r.Bedrooms == *s.bedrooms {
		fit += s.weights.BedroomBonus
	}
	return fit
}
