// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/estimo/internal/logging"
	"github.com/tomtom215/estimo/internal/models"
)

// Health reports that the process is alive.
//
// @Summary Liveness probe
// @Tags Operations
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   h.deps.Version,
		Timestamp: time.Now().UTC(),
	})
}

// Ready reports whether a snapshot is published and describes it.
//
// @Summary Readiness probe
// @Description Returns the published snapshot generation, load time, model version and catalog load summary. 503 until the first snapshot is published.
// @Tags Operations
// @Produce json
// @Success 200 {object} models.ReadyResponse
// @Failure 503 {object} models.APIError "No snapshot published"
// @Router /ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	snap, err := h.current()
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := models.ReadyResponse{
		Status:       "ready",
		Generation:   snap.Generation(),
		LoadedAt:     snap.LoadedAt().UTC(),
		ModelVersion: snap.Model().Version(),
		Catalog:      snap.Summary(),
	}
	if h.deps.Reloader != nil {
		resp.ReloadState = h.deps.Reloader.BreakerState()
	}
	respondJSON(w, r, http.StatusOK, resp)
}

// AdminReload rebuilds the snapshot from the configured sources. The
// current snapshot stays published when the rebuild fails.
//
// @Summary Reload model and catalog
// @Tags Operations
// @Produce json
// @Success 200 {object} models.ReloadResponse
// @Failure 503 {object} models.APIError "Reload failed or rejected by the breaker"
// @Router /admin/reload [post]
func (h *Handler) AdminReload(w http.ResponseWriter, r *http.Request) {
	if h.deps.Reloader == nil {
		respondError(w, r, ErrReloadDisabled)
		return
	}

	snap, err := h.deps.Reloader.Reload(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Uint64("generation", snap.Generation()).Msg("Reload triggered over HTTP")
	respondJSON(w, r, http.StatusOK, models.ReloadResponse{
		Status:       models.StatusSuccess,
		Generation:   snap.Generation(),
		ModelVersion: snap.Model().Version(),
		Listings:     snap.Catalog().Len(),
	})
}

// NotFound renders unknown routes in the API error shape.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondAPIError(w, r, http.StatusNotFound, &models.APIError{
		Error: "no route for " + sanitizeLogValue(r.URL.Path),
		Code:  models.CodeNotFound,
	})
}

// MethodNotAllowed renders wrong-method requests in the API error shape.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondAPIError(w, r, http.StatusMethodNotAllowed, &models.APIError{
		Error: r.Method + " is not allowed on " + sanitizeLogValue(r.URL.Path),
		Code:  "METHOD_NOT_ALLOWED",
	})
}
