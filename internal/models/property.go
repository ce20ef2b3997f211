// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package models

import "github.com/tomtom215/estimo/internal/property"

// PropertySummary is the public view of a listing.
type PropertySummary struct {
	ID              int64               `json:"id"`
	Title           string              `json:"title"`
	Location        string              `json:"location"`
	City            string              `json:"city"`
	State           string              `json:"state"`
	PropertyType    string              `json:"property_type"`
	Price           float64             `json:"price"`
	PriceDisplay    string              `json:"price_display"`
	TotalArea       float64             `json:"total_area"`
	Bedrooms        *int                `json:"bedrooms"`
	Bathrooms       *int                `json:"bathrooms"`
	HasBalcony      bool                `json:"has_balcony"`
	IsFeatured      bool                `json:"is_featured"`
	Images          []property.ImageRef `json:"images"`
	SimilarityScore float64             `json:"similarity_score"`
	Distance        *float64            `json:"distance,omitempty"`
}

// NewPropertySummary renders r with the given score.
func NewPropertySummary(r *property.Record, score float64) PropertySummary {
	images := r.Images
	if images == nil {
		images = []property.ImageRef{}
	}
	return PropertySummary{
		ID:              r.ID,
		Title:           r.Title,
		Location:        r.Location,
		City:            r.City,
		State:           r.State,
		PropertyType:    r.PropertyType,
		Price:           r.Price,
		PriceDisplay:    property.FormatPrice(r.Price),
		TotalArea:       r.TotalArea,
		Bedrooms:        r.Bedrooms,
		Bathrooms:       r.Bathrooms,
		HasBalcony:      r.HasBalcony,
		IsFeatured:      r.IsFeatured,
		Images:          images,
		SimilarityScore: score,
	}
}

// RecommendationSummaries renders fit-ranked candidates; the score is the
// fit score.
func RecommendationSummaries(items []property.RankedCandidate) []PropertySummary {
	out := make([]PropertySummary, len(items))
	for i, it := range items {
		out[i] = NewPropertySummary(it.Record, it.Score)
	}
	return out
}

// NeighborSummaries renders distance-ranked candidates. The similarity score
// is 1/(1+distance) and the raw distance is included.
func NeighborSummaries(items []property.RankedCandidate) []PropertySummary {
	out := make([]PropertySummary, len(items))
	for i, it := range items {
		d := it.Score
		out[i] = NewPropertySummary(it.Record, 1/(1+d))
		out[i].Distance = &d
	}
	return out
}
