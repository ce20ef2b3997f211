// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package recommend

import (
	"github.com/tomtom215/estimo/internal/catalog"
	"github.com/tomtom215/estimo/internal/property"
	"github.com/tomtom215/estimo/internal/similarity"
)

// Request asks for listings matching Criteria.
type Request struct {
	Criteria property.FilterCriteria

	// Limit is the maximum number of results. Zero or negative selects the
	// configured default; values above the configured maximum are capped.
	Limit int
}

// Response holds ranked recommendations, best fit first.
type Response struct {
	Items []property.RankedCandidate

	// Matched is the number of listings that passed the filter before
	// truncation.
	Matched int

	// Limit is the effective limit applied.
	Limit int
}

// Source is the data a similar-properties query runs against. A snapshot
// satisfies it.
type Source interface {
	// Generation identifies the data version; cached results are keyed by it.
	Generation() uint64
	Catalog() *catalog.Catalog
	Similarity() *similarity.Engine
}

// similarKey identifies a cached similar-properties result.
type similarKey struct {
	generation uint64
	id         int64
	k          int
}
