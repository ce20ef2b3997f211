// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/estimo/internal/metrics"
	"github.com/tomtom215/estimo/internal/models"
	"github.com/tomtom215/estimo/internal/property"
	"github.com/tomtom215/estimo/internal/similarity"
	"github.com/tomtom215/estimo/internal/snapshot"
	"github.com/tomtom215/estimo/internal/valuation"
)

// PredictPrice estimates the price of a described property.
//
// @Summary Predict a property price
// @Description Encodes the property description and evaluates the trained regression model. bedrooms=0 and has_balcony=false are valid values.
// @Tags Valuation
// @Accept json
// @Produce json
// @Param request body models.PredictRequest true "Property description"
// @Success 200 {object} models.PredictionResponse
// @Failure 400 {object} models.APIError "Missing or invalid field"
// @Failure 500 {object} models.APIError "Prediction failed"
// @Failure 503 {object} models.APIError "No model loaded"
// @Router /predict-price [post]
func (h *Handler) PredictPrice(w http.ResponseWriter, r *http.Request) {
	snap, req, ok := h.decodePredictRequest(w, r)
	if !ok {
		return
	}

	est, ok := h.estimate(w, r, snap, req)
	if !ok {
		return
	}

	respondJSON(w, r, http.StatusOK, models.PredictionResponse{
		Status:     models.StatusSuccess,
		Prediction: est.Price,
	})
}

// Valuation estimates a price with a confidence score, a price band and the
// most similar catalog listings.
//
// @Summary Value a property
// @Description Like predict-price, plus a confidence score (lower when the city or neighborhood is unknown to the model), a plus or minus 10% price range and comparable listings.
// @Tags Valuation
// @Accept json
// @Produce json
// @Param request body models.PredictRequest true "Property description"
// @Param k query int false "Number of comparables (default 5, max 50)"
// @Success 200 {object} models.ValuationResponse
// @Failure 400 {object} models.APIError "Missing or invalid field"
// @Failure 500 {object} models.APIError "Prediction failed"
// @Failure 503 {object} models.APIError "No model loaded"
// @Router /valuation [post]
func (h *Handler) Valuation(w http.ResponseWriter, r *http.Request) {
	k, err := queryInt(r, "k")
	if err != nil {
		respondError(w, r, err)
		return
	}

	snap, req, ok := h.decodePredictRequest(w, r)
	if !ok {
		return
	}

	est, ok := h.estimate(w, r, snap, req)
	if !ok {
		return
	}

	subject := comparableSubject(req, est.Price)
	neighbors := snap.Similarity().NearestTo(similarity.VectorOf(subject), h.deps.Recommender.EffectiveK(k))

	lo, hi := est.Range()
	respondJSON(w, r, http.StatusOK, models.ValuationResponse{
		Status: models.StatusSuccess,
		Valuation: models.Valuation{
			EstimatedPrice:  est.Price,
			PriceDisplay:    property.FormatPrice(est.Price),
			ConfidenceScore: est.Confidence(),
			PriceRange:      models.PriceRange{Min: lo, Max: hi},
			ModelVersion:    snap.Model().Version(),
			Comparables:     models.NeighborSummaries(neighbors),
		},
	})
}

// decodePredictRequest reads and validates a prediction body. On failure
// the response has been written.
func (h *Handler) decodePredictRequest(w http.ResponseWriter, r *http.Request) (*snapshot.Snapshot, *models.PredictRequest, bool) {
	var req models.PredictRequest
	if err := decodeJSON(w, r, &req); err != nil {
		metrics.RecordPrediction(metrics.PredictionInvalid, 0)
		respondError(w, r, err)
		return nil, nil, false
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordPrediction(metrics.PredictionInvalid, 0)
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return nil, nil, false
	}

	snap, err := h.current()
	if err != nil {
		respondError(w, r, err)
		return nil, nil, false
	}
	return snap, &req, true
}

// estimate runs the model. On failure the response has been written.
func (h *Handler) estimate(w http.ResponseWriter, r *http.Request, snap *snapshot.Snapshot, req *models.PredictRequest) (valuation.Estimate, bool) {
	start := time.Now()
	est, err := snap.Model().Estimate(req.RawFields())
	if err != nil {
		result := metrics.PredictionFailed
		if errors.Is(err, property.ErrValidation) {
			result = metrics.PredictionInvalid
		}
		metrics.RecordPrediction(result, time.Since(start))
		respondError(w, r, err)
		return valuation.Estimate{}, false
	}
	metrics.RecordPrediction(metrics.PredictionSuccess, time.Since(start))
	return est, true
}

// comparableSubject is the listing a valuation request describes, priced
// at its estimate. The neighborhood plays the role of the listing location.
func comparableSubject(req *models.PredictRequest, price float64) *property.Record {
	return &property.Record{
		Location:   *req.Neighborhood,
		City:       *req.City,
		Price:      price,
		TotalArea:  *req.TotalArea,
		Bedrooms:   property.IntPtr(*req.Bedrooms),
		Bathrooms:  property.IntPtr(*req.Bathrooms),
		HasBalcony: *req.HasBalcony,
	}
}
