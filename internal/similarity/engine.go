// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

// Package similarity ranks catalog listings by their distance to a query
// listing.
//
// The distance between two listings is
//
//	d = Wp*|Δprice|/Sp + Wa*|Δarea|/Sa + Wb*|Δbed|/Sb + Wba*|Δbath|/Sba
//	    + (locations differ ? LocationPenalty : 0)
//
// where each S is the span (max - min) of that attribute across the
// catalog, or 1 when every listing has the same value. Unknown room counts
// count as zero. Locations compare case-insensitively.
package similarity

import (
	"math"
	"sort"

	"github.com/tomtom215/estimo/internal/catalog"
	"github.com/tomtom215/estimo/internal/property"
)

// Vector is the projection of a listing used for distance computation.
type Vector struct {
	Price     float64
	Area      float64
	Bedrooms  float64
	Bathrooms float64

	// Location is the case-folded location key.
	Location string
}

// VectorOf projects r.
func VectorOf(r *property.Record) Vector {
	return Vector{
		Price:     r.Price,
		Area:      r.TotalArea,
		Bedrooms:  float64(r.BedroomCount()),
		Bathrooms: float64(r.BathroomCount()),
		Location:  property.FoldKey(r.Location),
	}
}

type spans struct {
	price, area, bedrooms, bathrooms float64
}

// Engine answers nearest-neighbor queries over one catalog. It is immutable
// and safe for concurrent use.
type Engine struct {
	weights Weights
	spans   spans
	records []*property.Record
	vectors []Vector
}

// NewEngine precomputes vectors and attribute spans for cat.
func NewEngine(cat *catalog.Catalog, w Weights) (*Engine, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	records := cat.All()
	e := &Engine{
		weights: w,
		records: records,
		vectors: make([]Vector, len(records)),
	}
	for i, r := range records {
		e.vectors[i] = VectorOf(r)
	}
	e.spans = computeSpans(e.vectors)
	return e, nil
}

// Weights returns the engine's weights.
func (e *Engine) Weights() Weights { return e.weights }

func computeSpans(vs []Vector) spans {
	if len(vs) == 0 {
		return spans{1, 1, 1, 1}
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo.Price, hi.Price = math.Min(lo.Price, v.Price), math.Max(hi.Price, v.Price)
		lo.Area, hi.Area = math.Min(lo.Area, v.Area), math.Max(hi.Area, v.Area)
		lo.Bedrooms, hi.Bedrooms = math.Min(lo.Bedrooms, v.Bedrooms), math.Max(hi.Bedrooms, v.Bedrooms)
		lo.Bathrooms, hi.Bathrooms = math.Min(lo.Bathrooms, v.Bathrooms), math.Max(hi.Bathrooms, v.Bathrooms)
	}
	return spans{
		price:     spanOrOne(hi.Price - lo.Price),
		area:      spanOrOne(hi.Area - lo.Area),
		bedrooms:  spanOrOne(hi.Bedrooms - lo.Bedrooms),
		bathrooms: spanOrOne(hi.Bathrooms - lo.Bathrooms),
	}
}

func spanOrOne(s float64) float64 {
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 1
	}
	return s
}

// Distance returns the weighted distance between a and b. It is symmetric,
// non-negative and zero only for identical vectors.
func (e *Engine) Distance(a, b Vector) float64 {
	w, s := e.weights, e.spans
	d := w.Price*math.Abs(a.Price-b.Price)/s.price +
		w.Area*math.Abs(a.Area-b.Area)/s.area +
		w.Bedrooms*math.Abs(a.Bedrooms-b.Bedrooms)/s.bedrooms +
		w.Bathrooms*math.Abs(a.Bathrooms-b.Bathrooms)/s.bathrooms
	if a.Location != b.Location {
		d += w.LocationPenalty
	}
	return d
}

// NearestNeighbors returns up to k catalog listings closest to query,
// excluding query itself, ordered by distance then id. Each candidate's
// Score is its distance.
func (e *Engine) NearestNeighbors(query *property.Record, k int) []property.RankedCandidate {
	return e.nearest(VectorOf(query), k, query.ID, true)
}

// NearestTo returns up to k catalog listings closest to v. Unlike
// NearestNeighbors nothing is excluded; it serves queries that are not
// themselves catalog listings.
func (e *Engine) NearestTo(v Vector, k int) []property.RankedCandidate {
	return e.nearest(v, k, 0, false)
}

func (e *Engine) nearest(v Vector, k int, exclude int64, hasExclude bool) []property.RankedCandidate {
	if k <= 0 || len(e.records) == 0 {
		return []property.RankedCandidate{}
	}

	candidates := make([]property.RankedCandidate, 0, len(e.records))
	for i, r := range e.records {
		if hasExclude && r.ID == exclude {
			continue
		}
		candidates = append(candidates, property.RankedCandidate{
			Record: r,
			Score:  e.Distance(v, e.vectors[i]),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score < candidates[j].Score
		}
		return candidates[i].Record.ID < candidates[j].Record.ID
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}
