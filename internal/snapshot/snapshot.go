// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

// Package snapshot bundles the catalog, valuation model and similarity
// index into one immutable value and publishes it atomically.
//
// Request handlers call Store.Current once per request and use that
// snapshot throughout, so a concurrent reload never mixes a new model with
// an old catalog. Reloads build a complete replacement off to the side and
// publish it with Store.Swap; a failed build leaves the current snapshot in
// place.
package snapshot

import (
	"time"

	"github.com/tomtom215/estimo/internal/catalog"
	"github.com/tomtom215/estimo/internal/property"
	"github.com/tomtom215/estimo/internal/similarity"
	"github.com/tomtom215/estimo/internal/valuation"
)

// Snapshot is one consistent version of the service's data. It is never
// modified after it is published.
type Snapshot struct {
	generation    uint64
	loadedAt      time.Time
	buildDuration time.Duration
	catalog       *catalog.Catalog
	model         *valuation.Model
	similarity    *similarity.Engine
}

// New assembles a snapshot from already loaded parts. The generation is
// assigned when the snapshot is published.
func New(cat *catalog.Catalog, model *valuation.Model, weights similarity.Weights) (*Snapshot, error) {
	sim, err := similarity.NewEngine(cat, weights)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		loadedAt:   time.Now().UTC(),
		catalog:    cat,
		model:      model,
		similarity: sim,
	}, nil
}

// Generation is the publish sequence number, starting at 1. Unpublished
// snapshots report 0.
func (s *Snapshot) Generation() uint64 { return s.generation }

// LoadedAt is when the snapshot's data finished loading.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Catalog returns the listing catalog.
func (s *Snapshot) Catalog() *catalog.Catalog { return s.catalog }

// Model returns the valuation model.
func (s *Snapshot) Model() *valuation.Model { return s.model }

// Similarity returns the nearest-neighbor index over Catalog.
func (s *Snapshot) Similarity() *similarity.Engine { return s.similarity }

// Summary returns the catalog load summary.
func (s *Snapshot) Summary() property.LoadSummary { return s.catalog.Summary() }
