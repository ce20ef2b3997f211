// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package catalog

import (
	"math"
	"sort"

	"github.com/tomtom215/estimo/internal/property"
)

// unknownGroup labels records without a city or property type.
const unknownGroup = "unknown"

// MarketStats summarizes catalog prices.
type MarketStats struct {
	TotalListings int         `json:"total_listings"`
	AveragePrice  float64     `json:"average_price"`
	MedianPrice   float64     `json:"median_price"`
	FeaturedCount int         `json:"featured_count"`
	Cities        []CityStats `json:"cities"`
	PropertyTypes []TypeCount `json:"property_types"`
}

// CityStats are price statistics for one city.
type CityStats struct {
	City            string  `json:"city"`
	Listings        int     `json:"listings"`
	AveragePrice    float64 `json:"average_price"`
	MedianPrice     float64 `json:"median_price"`
	MinPrice        float64 `json:"min_price"`
	MaxPrice        float64 `json:"max_price"`
	AvgPricePerArea float64 `json:"avg_price_per_area"`
}

// TypeCount is the number of listings of one property type.
type TypeCount struct {
	PropertyType string `json:"property_type"`
	Listings     int    `json:"listings"`
}

type cityAccumulator struct {
	name    string
	prices  []float64
	perArea []float64
}

// computeStats groups by case-folded city and type; the first spelling seen
// in id order is used as the display name.
func computeStats(records []*property.Record) MarketStats {
	stats := MarketStats{TotalListings: len(records)}
	if len(records) == 0 {
		return stats
	}

	all := make([]float64, 0, len(records))
	cities := make(map[string]*cityAccumulator)
	types := make(map[string]*TypeCount)

	for _, r := range records {
		all = append(all, r.Price)
		if r.IsFeatured {
			stats.FeaturedCount++
		}

		cityKey, cityName := groupKey(r.City)
		acc, ok := cities[cityKey]
		if !ok {
			acc = &cityAccumulator{name: cityName}
			cities[cityKey] = acc
		}
		acc.prices = append(acc.prices, r.Price)
		if r.TotalArea > 0 {
			acc.perArea = append(acc.perArea, r.Price/r.TotalArea)
		}

		typeKey, typeName := groupKey(r.PropertyType)
		tc, ok := types[typeKey]
		if !ok {
			tc = &TypeCount{PropertyType: typeName}
			types[typeKey] = tc
		}
		tc.Listings++
	}

	stats.AveragePrice = mean(all)
	stats.MedianPrice = median(all)

	for _, acc := range cities {
		cs := CityStats{
			City:         acc.name,
			Listings:     len(acc.prices),
			AveragePrice: mean(acc.prices),
			MedianPrice:  median(acc.prices),
		}
		cs.MinPrice, cs.MaxPrice = minMax(acc.prices)
		cs.AvgPricePerArea = mean(acc.perArea)
		stats.Cities = append(stats.Cities, cs)
	}
	sort.Slice(stats.Cities, func(i, j int) bool {
		if stats.Cities[i].Listings != stats.Cities[j].Listings {
			return stats.Cities[i].Listings > stats.Cities[j].Listings
		}
		return stats.Cities[i].City < stats.Cities[j].City
	})

	for _, tc := range types {
		stats.PropertyTypes = append(stats.PropertyTypes, *tc)
	}
	sort.Slice(stats.PropertyTypes, func(i, j int) bool {
		a, b := stats.PropertyTypes[i], stats.PropertyTypes[j]
		if a.Listings != b.Listings {
			return a.Listings > b.Listings
		}
		return a.PropertyType < b.PropertyType
	})

	return stats
}

func groupKey(value string) (key, display string) {
	key = property.FoldKey(value)
	if key == "" {
		return unknownGroup, unknownGroup
	}
	return key, value
}

// mean falls back to an incremental mean when the plain sum overflows, so
// finite inputs always give a finite result.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	if !math.IsInf(sum, 0) {
		return sum / float64(len(xs))
	}

	var m float64
	for i, x := range xs {
		m += (x - m) / float64(i+1)
	}
	return m
}

// median sorts a copy of xs.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1]/2 + sorted[mid]/2
}

func minMax(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}
