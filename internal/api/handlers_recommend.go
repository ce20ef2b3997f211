// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package api

import (
	"net/http"

	"github.com/tomtom215/estimo/internal/logging"
	"github.com/tomtom215/estimo/internal/models"
	"github.com/tomtom215/estimo/internal/recommend"
)

// GetRecommendations returns catalog listings matching the buyer's criteria,
// best fit first.
//
// @Summary Recommend properties
// @Description Filters by location (matches the listing location or city, case-insensitive), price range, exact bedroom count and property type, then ranks by price proximity and match bonuses. Every field is optional; numbers may be sent as strings.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest true "Search criteria"
// @Success 200 {object} models.RecommendationsResponse
// @Failure 400 {object} models.APIError "Invalid criteria"
// @Failure 503 {object} models.APIError "No catalog loaded"
// @Router /get-recommendations [post]
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	snap, err := h.current()
	if err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	limit, _ := req.Limit.Get()
	resp, err := h.deps.Recommender.Recommend(ctx, snap.Catalog(), recommend.Request{
		Criteria: req.Criteria(),
		Limit:    limit,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Int("matched", resp.Matched).
		Int("returned", len(resp.Items)).
		Msg("Recommendations served")

	respondJSON(w, r, http.StatusOK, models.RecommendationsResponse{
		Status:          models.StatusSuccess,
		Recommendations: models.RecommendationSummaries(resp.Items),
	})
}

// SimilarProperties returns the listings nearest to a catalog listing.
//
// @Summary Find similar properties
// @Description Returns up to k listings ordered by weighted attribute distance (nearest first). The listing itself is excluded. similarity_score is 1/(1+distance).
// @Tags Recommendations
// @Produce json
// @Param id path int true "Listing id"
// @Param k query int false "Number of results (default 5, max 50)"
// @Success 200 {array} models.PropertySummary
// @Failure 400 {object} models.APIError "Invalid id"
// @Failure 404 {object} models.APIError "Listing not found"
// @Failure 503 {object} models.APIError "No catalog loaded"
// @Router /similar-properties/{id} [get]
func (h *Handler) SimilarProperties(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	k, err := queryInt(r, "k")
	if err != nil {
		respondError(w, r, err)
		return
	}

	snap, err := h.current()
	if err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	neighbors, err := h.deps.Recommender.Similar(ctx, snap, id, k)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.NeighborSummaries(neighbors))
}
