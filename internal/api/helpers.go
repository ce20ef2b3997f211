// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package api

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/estimo/internal/logging"
	"github.com/tomtom215/estimo/internal/models"
	"github.com/tomtom215/estimo/internal/property"
	"github.com/tomtom215/estimo/internal/validation"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// sanitizeLogValue replaces control characters so that client input cannot
// forge log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// respondJSON writes v as JSON. GET responses carry an ETag and answer a
// matching If-None-Match with 304.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	if r.Method == http.MethodGet && status == http.StatusOK {
		etag := generateETag(data)
		w.Header().Set("ETag", etag)
		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag returns a quoted FNV-1a hash of data.
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return `"` + strconv.FormatUint(uint64(h.Sum32()), 16) + `"`
}

// respondError classifies err and writes the error body. Server-side
// failures are logged with the request id.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	c := classifyError(err)

	event := logging.Ctx(r.Context()).Warn()
	if c.status >= http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error()
	}
	event.Str("code", c.code).
		Int("status", c.status).
		Str("error", sanitizeLogValue(err.Error())).
		Msg("API error")

	respondAPIError(w, r, c.status, &models.APIError{Error: c.message, Code: c.code, Details: c.details})
}

// respondAPIError writes an already rendered error body.
func respondAPIError(w http.ResponseWriter, r *http.Request, status int, body *models.APIError) {
	respondJSON(w, r, status, body)
}

// decodeJSON reads the request body into dst. Malformed or oversized bodies
// are reported as a *property.ValidationError on the "body" field.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return &property.ValidationError{Field: "body", Reason: "is required"}
		case errors.As(err, &maxErr):
			return &property.ValidationError{Field: "body", Reason: fmt.Sprintf("must not exceed %d bytes", maxErr.Limit)}
		default:
			return &property.ValidationError{Field: "body", Reason: "must be valid JSON: " + err.Error()}
		}
	}
	return nil
}

// validateRequest validates a struct using go-playground/validator and
// returns nil or a VALIDATION_ERROR body.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Error:   apiErr.Message,
		Code:    apiErr.Code,
		Details: apiErr.Details,
	}
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &property.ValidationError{Field: "id", Reason: "must be an integer"}
	}
	return id, nil
}

// queryInt parses an optional integer query parameter. Missing returns 0.
func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &property.ValidationError{Field: key, Reason: "must be a non-negative integer"}
	}
	return n, nil
}
