// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

// Package property defines the listing domain shared by the catalog,
// valuation, similarity and recommendation packages: records, filter
// criteria, ranked candidates, load summaries and the error taxonomy.
package property

import (
	"strings"

	"golang.org/x/text/cases"
)

// ImageRef is a weak reference to an image stored outside the catalog.
type ImageRef struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// Record is a single catalog listing.
//
// Records are owned by a Catalog and must not be mutated after the catalog
// has been built. Bedrooms and Bathrooms are nil when the source row left
// them empty.
type Record struct {
	ID           int64
	Title        string
	Location     string
	City         string
	State        string
	PropertyType string
	Price        float64
	TotalArea    float64
	Bedrooms     *int
	Bathrooms    *int
	HasBalcony   bool
	IsFeatured   bool
	Images       []ImageRef
}

// BedroomCount returns the bedroom count, or 0 when unknown.
func (r *Record) BedroomCount() int {
	if r.Bedrooms == nil {
		return 0
	}
	return *r.Bedrooms
}

// BathroomCount returns the bathroom count, or 0 when unknown.
func (r *Record) BathroomCount() int {
	if r.Bathrooms == nil {
		return 0
	}
	return *r.Bathrooms
}

// RankedCandidate pairs a record with the score used to order it.
// For similarity results the score is a distance (lower is closer); for
// recommendations it is a fit score (higher is better).
type RankedCandidate struct {
	Record *Record
	Score  float64
}

// FoldKey normalizes a categorical value for case-insensitive comparison.
// Surrounding whitespace is ignored and Unicode case folding is applied.
func FoldKey(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// A Caser is stateful and not safe for concurrent use, so one is built per call.
	return cases.Fold().String(s)
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 {
	return &v
}
