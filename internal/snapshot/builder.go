// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package snapshot

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/estimo/internal/catalog"
	"github.com/tomtom215/estimo/internal/imagestore"
	"github.com/tomtom215/estimo/internal/property"
	"github.com/tomtom215/estimo/internal/similarity"
	"github.com/tomtom215/estimo/internal/valuation"
)

// Sources names the files a snapshot is built from.
type Sources struct {
	CatalogPath  string
	ArtifactPath string

	// ImageDBPath is optional; empty disables image references.
	ImageDBPath string
}

// Builder loads snapshots from files.
type Builder struct {
	sources Sources
	weights similarity.Weights
	logger  zerolog.Logger
}

// NewBuilder creates a Builder.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewBuilder(sources Sources, weights similarity.Weights, logger zerolog.Logger) *Builder {
	return &Builder{
		sources: sources,
		weights: weights,
		logger:  logger.With().Str("component", "snapshot").Logger(),
	}
}

// Sources returns the files the builder reads.
func (b *Builder) Sources() Sources { return b.sources }

// Build loads the model and the catalog concurrently and assembles a new
// snapshot. Any failure is a *property.ModelUnavailableError naming the
// source that could not be loaded.
func (b *Builder) Build(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	var (
		model *valuation.Model
		cat   *catalog.Catalog
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m, err := valuation.LoadModel(b.sources.ArtifactPath)
		if err != nil {
			return err
		}
		model = m
		return nil
	})

	g.Go(func() error {
		images, err := imagestore.LoadRefs(gctx, b.sources.ImageDBPath)
		if err != nil {
			return &property.ModelUnavailableError{Source: b.sources.ImageDBPath, Err: err}
		}
		c, _, err := catalog.LoadFile(gctx, b.sources.CatalogPath, catalog.LoadOptions{Images: images})
		if err != nil {
			return &property.ModelUnavailableError{Source: b.sources.CatalogPath, Err: err}
		}
		cat = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap, err := New(cat, model, b.weights)
	if err != nil {
		return nil, &property.ModelUnavailableError{Source: "similarity", Err: err}
	}
	snap.buildDuration = time.Since(start)

	summary := cat.Summary()
	level := zerolog.InfoLevel
	var warning error
	if w := summary.Warning(); w != nil {
		level, warning = zerolog.WarnLevel, w
	}
	b.logger.WithLevel(level).
		AnErr("warning", warning).
		Interface("skipped_by_reason", summary.SkippedByReason).
		Str("catalog", b.sources.CatalogPath).
		Str("model_version", model.Version()).
		Int("listings", summary.Loaded).
		Int("skipped", summary.Skipped).
		Dur("duration", snap.buildDuration).
		Msg("Snapshot built")

	return snap, nil
}
