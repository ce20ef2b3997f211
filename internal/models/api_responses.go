// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

// Package models defines the JSON request and response bodies of the HTTP
// API.
package models

import (
	"time"

	"github.com/tomtom215/estimo/internal/catalog"
	"github.com/tomtom215/estimo/internal/property"
)

// StatusSuccess is the status field of every successful envelope.
const StatusSuccess = "success"

// Error codes returned in APIError.Code.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodePredictionFailed = "PREDICTION_FAILED"
	CodeModelUnavailable = "MODEL_UNAVAILABLE"
	CodeInternal         = "INTERNAL_ERROR"
	CodeRateLimited      = "RATE_LIMITED"
)

// APIError is the body of every non-2xx response.
type APIError struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PredictionResponse is returned by POST /predict-price.
type PredictionResponse struct {
	Status     string  `json:"status"`
	Prediction float64 `json:"prediction"`
}

// RecommendationsResponse is returned by POST /get-recommendations.
type RecommendationsResponse struct {
	Status          string            `json:"status"`
	Recommendations []PropertySummary `json:"recommendations"`
}

// PropertyResponse is returned by GET /properties/{id}.
type PropertyResponse struct {
	Status   string          `json:"status"`
	Property PropertySummary `json:"property"`
}

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Valuation is a price estimate with context.
type Valuation struct {
	EstimatedPrice  float64           `json:"estimated_price"`
	PriceDisplay    string            `json:"price_display"`
	ConfidenceScore float64           `json:"confidence_score"`
	PriceRange      PriceRange        `json:"price_range"`
	ModelVersion    string            `json:"model_version"`
	Comparables     []PropertySummary `json:"comparables"`
}

// ValuationResponse is returned by POST /valuation.
type ValuationResponse struct {
	Status    string    `json:"status"`
	Valuation Valuation `json:"valuation"`
}

// FeaturedResponse is returned by GET /featured-properties.
type FeaturedResponse struct {
	Status     string            `json:"status"`
	Properties []PropertySummary `json:"properties"`
}

// MarketStatsResponse is returned by GET /market-stats.
type MarketStatsResponse struct {
	Status string              `json:"status"`
	Stats  catalog.MarketStats `json:"stats"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadyResponse is returned by GET /ready.
type ReadyResponse struct {
	Status       string               `json:"status"`
	Generation   uint64               `json:"generation"`
	LoadedAt     time.Time            `json:"loaded_at"`
	ModelVersion string               `json:"model_version"`
	Catalog      property.LoadSummary `json:"catalog"`
	ReloadState  string               `json:"reload_breaker,omitempty"`
}

// ReloadResponse is returned by POST /admin/reload.
type ReloadResponse struct {
	Status       string `json:"status"`
	Generation   uint64 `json:"generation"`
	ModelVersion string `json:"model_version"`
	Listings     int    `json:"listings"`
}
