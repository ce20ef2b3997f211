// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package api

import (
	"net/http"

	"github.com/tomtom215/estimo/internal/models"
)

// Property returns one catalog listing.
//
// @Summary Get a property
// @Tags Catalog
// @Produce json
// @Param id path int true "Listing id"
// @Success 200 {object} models.PropertyResponse
// @Failure 400 {object} models.APIError "Invalid id"
// @Failure 404 {object} models.APIError "Listing not found"
// @Router /properties/{id} [get]
func (h *Handler) Property(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	snap, err := h.current()
	if err != nil {
		respondError(w, r, err)
		return
	}

	rec, err := snap.Catalog().Get(id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.PropertyResponse{
		Status:   models.StatusSuccess,
		Property: models.NewPropertySummary(rec, 0),
	})
}

// FeaturedProperties lists featured listings in id order. limit caps the
// result; 0 or absent returns all of them.
//
// @Summary List featured properties
// @Tags Catalog
// @Produce json
// @Param limit query int false "Maximum number of listings"
// @Success 200 {object} models.FeaturedResponse
// @Failure 400 {object} models.APIError "Invalid limit"
// @Failure 503 {object} models.APIError "No catalog loaded"
// @Router /featured-properties [get]
func (h *Handler) FeaturedProperties(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		respondError(w, r, err)
		return
	}

	snap, err := h.current()
	if err != nil {
		respondError(w, r, err)
		return
	}

	featured := snap.Catalog().Featured()
	if limit > 0 && limit < len(featured) {
		featured = featured[:limit]
	}

	out := make([]models.PropertySummary, 0, len(featured))
	for _, rec := range featured {
		out = append(out, models.NewPropertySummary(rec, 0))
	}

	respondJSON(w, r, http.StatusOK, models.FeaturedResponse{
		Status:     models.StatusSuccess,
		Properties: out,
	})
}

// MarketStats returns price statistics for the whole catalog, per city and
// per property type.
//
// @Summary Get market statistics
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.MarketStatsResponse
// @Failure 503 {object} models.APIError "No catalog loaded"
// @Router /market-stats [get]
func (h *Handler) MarketStats(w http.ResponseWriter, r *http.Request) {
	snap, err := h.current()
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.MarketStatsResponse{
		Status: models.StatusSuccess,
		Stats:  snap.Catalog().Stats(),
	})
}
