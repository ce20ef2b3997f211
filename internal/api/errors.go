// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

// Package api serves the HTTP interface: price prediction, valuation,
// recommendations, similar listings, listing detail, market statistics and
// the operational endpoints.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/estimo/internal/models"
	"github.com/tomtom215/estimo/internal/property"
	"github.com/tomtom215/estimo/internal/snapshot"
)

// Common API errors
var (
	// ErrNotReady indicates no snapshot has been published yet.
	ErrNotReady = errors.New("service is not ready: no data loaded")

	// ErrReloadDisabled indicates the reload endpoint is turned off.
	ErrReloadDisabled = errors.New("reload is disabled")
)

// classifiedError is the HTTP rendering of an error.
type classifiedError struct {
	status  int
	code    string
	message string
	details map[string]interface{}
}

// classifyError maps the error taxonomy to a status, code and client-safe
// message. Unknown errors never leak their text.
func classifyError(err error) classifiedError {
	var (
		validationErr *property.ValidationError
		notFoundErr   *property.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		return classifiedError{
			status:  http.StatusBadRequest,
			code:    models.CodeValidation,
			message: validationErr.Error(),
			details: map[string]interface{}{"field": validationErr.Field},
		}
	case errors.As(err, &notFoundErr):
		return classifiedError{
			status:  http.StatusNotFound,
			code:    models.CodeNotFound,
			message: notFoundErr.Error(),
			details: map[string]interface{}{"id": notFoundErr.ID},
		}
	case errors.Is(err, property.ErrPrediction):
		return classifiedError{status: http.StatusInternalServerError, code: models.CodePredictionFailed, message: "price prediction failed"}
	case errors.Is(err, ErrNotReady):
		return classifiedError{status: http.StatusServiceUnavailable, code: models.CodeModelUnavailable, message: err.Error()}
	case errors.Is(err, property.ErrModelUnavailable):
		return classifiedError{status: http.StatusServiceUnavailable, code: models.CodeModelUnavailable, message: "model or catalog could not be loaded"}
	case errors.Is(err, snapshot.ErrReloadRejected):
		return classifiedError{status: http.StatusServiceUnavailable, code: models.CodeModelUnavailable, message: snapshot.ErrReloadRejected.Error()}
	case errors.Is(err, ErrReloadDisabled):
		return classifiedError{status: http.StatusNotFound, code: models.CodeNotFound, message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return classifiedError{status: http.StatusServiceUnavailable, code: models.CodeInternal, message: "request timed out"}
	default:
		return classifiedError{status: http.StatusInternalServerError, code: models.CodeInternal, message: "internal server error"}
	}
}
