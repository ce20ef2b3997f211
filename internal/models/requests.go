// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package models

import (
	"github.com/tomtom215/estimo/internal/property"
	"github.com/tomtom215/estimo/internal/valuation"
)

// PredictRequest is the body of POST /predict-price and POST /valuation.
// Every field must be present; zero and false are valid values.
type PredictRequest struct {
	City         *string  `json:"city" validate:"required,notblank"`
	Neighborhood *string  `json:"neighborhood" validate:"required,notblank"`
	Bedrooms     *int     `json:"bedrooms" validate:"required"`
	Bathrooms    *int     `json:"bathrooms" validate:"required"`
	TotalArea    *float64 `json:"total_area" validate:"required"`
	HasBalcony   *bool    `json:"has_balcony" validate:"required"`
}

// RawFields converts a validated request for the encoder. Range checks on
// the numbers are left to the encoder so that they report one consistent
// error.
func (r *PredictRequest) RawFields() valuation.RawFields {
	return valuation.RawFields{
		City:         *r.City,
		Neighborhood: *r.Neighborhood,
		Bedrooms:     *r.Bedrooms,
		Bathrooms:    *r.Bathrooms,
		TotalArea:    *r.TotalArea,
		HasBalcony:   *r.HasBalcony,
	}
}

// RecommendationRequest is the body of POST /get-recommendations. Every
// field is optional; numbers may be sent as JSON numbers or strings.
type RecommendationRequest struct {
	Location     string        `json:"location" validate:"max=200"`
	MinPrice     OptionalFloat `json:"min_price"`
	MaxPrice     OptionalFloat `json:"max_price"`
	Bedrooms     OptionalInt   `json:"bedrooms"`
	PropertyType string        `json:"property_type" validate:"max=100"`
	Limit        OptionalInt   `json:"limit"`
}

// Criteria converts the request to catalog filter criteria.
func (r *RecommendationRequest) Criteria() property.FilterCriteria {
	return property.FilterCriteria{
		Location:     r.Location,
		MinPrice:     r.MinPrice.Ptr(),
		MaxPrice:     r.MaxPrice.Ptr(),
		Bedrooms:     r.Bedrooms.Ptr(),
		PropertyType: r.PropertyType,
	}
}

// Validate checks the numeric fields that the struct tags cannot express.
func (r *RecommendationRequest) Validate() *property.ValidationError {
	if v, ok := r.MinPrice.Get(); ok && v < 0 {
		return &property.ValidationError{Field: "min_price", Reason: "must not be negative"}
	}
	if v, ok := r.MaxPrice.Get(); ok && v < 0 {
		return &property.ValidationError{Field: "max_price", Reason: "must not be negative"}
	}
	if v, ok := r.Bedrooms.Get(); ok && v < 0 {
		return &property.ValidationError{Field: "bedrooms", Reason: "must not be negative"}
	}
	if v, ok := r.Limit.Get(); ok && v < 0 {
		return &property.ValidationError{Field: "limit", Reason: "must not be negative"}
	}
	return nil
}
