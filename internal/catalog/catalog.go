// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

// Package catalog holds the in-memory property table that recommendations
// and similarity searches read from.
//
// A Catalog is built once, from a CSV source or directly from records, and
// is immutable afterwards. Besides the id-ordered record slice it keeps two
// indices:
//   - location key -> positions, for both the location and the city column
//   - positions ordered by price (then id), for range lookups by binary search
package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/estimo/internal/property"
)

// Catalog is an immutable, indexed set of property records.
type Catalog struct {
	records    []*property.Record // ascending id
	byID       map[int64]int
	byLocation map[string][]int
	byCity     map[string][]int
	byPrice    []int
	featured   []*property.Record
	summary    property.LoadSummary
	stats      MarketStats
}

// New builds a catalog from records. Records are copied; ids must be unique
// and prices and areas finite and non-negative.
func New(records []property.Record) (*Catalog, error) {
	owned := make([]*property.Record, 0, len(records))
	seen := make(map[int64]struct{}, len(records))
	for i := range records {
		r := records[i]
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate id %d", r.ID)
		}
		if reason := checkValues(&r); reason != "" {
			return nil, fmt.Errorf("catalog: record %d: %s", r.ID, reason)
		}
		seen[r.ID] = struct{}{}
		owned = append(owned, &r)
	}
	summary := property.LoadSummary{Source: "memory", RowsRead: len(records), Loaded: len(records)}
	return build(owned, summary), nil
}

// build indexes records, which must already be validated and deduplicated.
func build(records []*property.Record, summary property.LoadSummary) *Catalog {
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	c := &Catalog{
		records:    records,
		byID:       make(map[int64]int, len(records)),
		byLocation: make(map[string][]int),
		byCity:     make(map[string][]int),
		byPrice:    make([]int, len(records)),
		summary:    summary,
	}

	for pos, r := range records {
		c.byID[r.ID] = pos
		if key := property.FoldKey(r.Location); key != "" {
			c.byLocation[key] = append(c.byLocation[key], pos)
		}
		if key := property.FoldKey(r.City); key != "" {
			c.byCity[key] = append(c.byCity[key], pos)
		}
		c.byPrice[pos] = pos
		if r.IsFeatured {
			c.featured = append(c.featured, r)
		}
	}

	sort.Slice(c.byPrice, func(i, j int) bool {
		a, b := records[c.byPrice[i]], records[c.byPrice[j]]
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return a.ID < b.ID
	})

	c.stats = computeStats(records)
	return c
}

// checkValues returns a non-empty reason when r violates record invariants.
func checkValues(r *property.Record) string {
	switch {
	case math.IsNaN(r.Price) || math.IsInf(r.Price, 0) || r.Price < 0:
		return "price must be a finite non-negative number"
	case math.IsNaN(r.TotalArea) || math.IsInf(r.TotalArea, 0) || r.TotalArea < 0:
		return "total_area must be a finite non-negative number"
	case r.Bedrooms != nil && *r.Bedrooms < 0:
		return "bedrooms must not be negative"
	case r.Bathrooms != nil && *r.Bathrooms < 0:
		return "bathrooms must not be negative"
	}
	return ""
}

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// All returns every record in ascending id order. The slice is shared and
// must not be modified.
func (c *Catalog) All() []*property.Record { return c.records }

// Summary returns the load summary the catalog was built with.
func (c *Catalog) Summary() property.LoadSummary { return c.summary }

// Featured returns the featured records in ascending id order. The slice is
// shared and must not be modified.
func (c *Catalog) Featured() []*property.Record { return c.featured }

// Stats returns market statistics computed when the catalog was built.
func (c *Catalog) Stats() MarketStats { return c.stats }

// Get returns the record with the given id or a *property.NotFoundError.
func (c *Catalog) Get(id int64) (*property.Record, error) {
	pos, ok := c.byID[id]
	if !ok {
		return nil, &property.NotFoundError{ID: id}
	}
	return c.records[pos], nil
}

// Filter returns the records matching criteria in ascending id order.
//
// The candidate set is seeded from whichever index is narrower (the
// location index when a location is given, otherwise the price window) and
// then checked against the remaining constraints.
func (c *Catalog) Filter(criteria property.FilterCriteria) []*property.Record {
	if criteria.InvertedRange() {
		return nil
	}

	positions := c.priceWindow(criteria.PriceBounds())
	if key := property.FoldKey(criteria.Location); key != "" {
		if byLoc := c.locationPositions(key); len(byLoc) < len(positions) {
			positions = byLoc
		}
	}

	matched := make([]int, 0, len(positions))
	for _, pos := range positions {
		if criteria.Matches(c.records[pos]) {
			matched = append(matched, pos)
		}
	}
	sort.Ints(matched)

	out := make([]*property.Record, len(matched))
	for i, pos := range matched {
		out[i] = c.records[pos]
	}
	return out
}

// priceWindow returns the positions with lo <= price <= hi.
func (c *Catalog) priceWindow(lo, hi float64) []int {
	start := sort.Search(len(c.byPrice), func(i int) bool {
		return c.records[c.byPrice[i]].Price >= lo
	})
	end := sort.Search(len(c.byPrice), func(i int) bool {
		return c.records[c.byPrice[i]].Price > hi
	})
	if start >= end {
		return nil
	}
	return c.byPrice[start:end]
}

// locationPositions returns positions whose location or city folds to key,
// without duplicates.
func (c *Catalog) locationPositions(key string) []int {
	loc, city := c.byLocation[key], c.byCity[key]
	if len(city) == 0 {
		return loc
	}
	if len(loc) == 0 {
		return city
	}

	seen := make(map[int]struct{}, len(loc)+len(city))
	out := make([]int, 0, len(loc)+len(city))
	for _, list := range [][]int{loc, city} {
		for _, pos := range list {
			if _, ok := seen[pos]; ok {
				continue
			}
			seen[pos] = struct{}{}
			out = append(out, pos)
		}
	}
	return out
}
