// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package property

import "math"

// FilterCriteria narrows the catalog before ranking.
// Zero values impose no constraint: an empty Location or PropertyType is a
// wildcard and nil bounds leave that side of the price range open.
type FilterCriteria struct {
	Location     string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	PropertyType string
}

// PriceBounds returns the inclusive price range, substituting infinities
// for unset bounds.
func (c FilterCriteria) PriceBounds() (lo, hi float64) {
	lo, hi = math.Inf(-1), math.Inf(1)
	if c.MinPrice != nil {
		lo = *c.MinPrice
	}
	if c.MaxPrice != nil {
		hi = *c.MaxPrice
	}
	return lo, hi
}

// InvertedRange reports whether both bounds are set and min exceeds max.
// An inverted range matches nothing.
func (c FilterCriteria) InvertedRange() bool {
	return c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice
}

// Matches reports whether r satisfies every constraint in c.
//
// Location matches case-insensitively and exactly against either the
// record's location or its city. A record with an unknown bedroom count or
// property type is excluded only when that criterion is set.
func (c FilterCriteria) Matches(r *Record) bool {
	lo, hi := c.PriceBounds()
	if r.Price < lo || r.Price > hi {
		return false
	}
	if key := FoldKey(c.Location); key != "" {
		if FoldKey(r.Location) != key && FoldKey(r.City) != key {
			return false
		}
	}
	if c.Bedrooms != nil {
		if r.Bedrooms == nil || *r.Bedrooms != *c.Bedrooms {
			return false
		}
	}
	if key := FoldKey(c.PropertyType); key != "" {
		if FoldKey(r.PropertyType) != key {
			return false
		}
	}
	return true
}
