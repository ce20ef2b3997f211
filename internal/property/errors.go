// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package property

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds. Every typed error below reports one of these through errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrModelUnavailable = errors.New("model unavailable")
	ErrPrediction       = errors.New("prediction failed")
	ErrNotFound         = errors.New("not found")
)

// ValidationError reports a malformed, out-of-range or missing input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ModelUnavailableError reports that the model artifact or the catalog
// source could not be loaded. The process must not serve without them.
type ModelUnavailableError struct {
	Source string
	Err    error
}

func (e *ModelUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("model unavailable: %s", e.Source)
	}
	return fmt.Sprintf("model unavailable: %s: %v", e.Source, e.Err)
}

func (e *ModelUnavailableError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrModelUnavailable.
func (e *ModelUnavailableError) Is(target error) bool {
	return target == ErrModelUnavailable
}

// PredictionError reports that the model produced an unusable result for
// otherwise valid input.
type PredictionError struct {
	Reason string
}

func (e *PredictionError) Error() string {
	return "prediction failed: " + e.Reason
}

// Is reports whether target is ErrPrediction.
func (e *PredictionError) Is(target error) bool {
	return target == ErrPrediction
}

// NotFoundError reports a property id absent from the catalog.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("property %d not found", e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PartialLoadWarning describes rows dropped while building a catalog.
// It is informational: loaders return it alongside a usable catalog.
type PartialLoadWarning struct {
	Source   string
	Skipped  int
	ByReason map[string]int
}

func (w *PartialLoadWarning) Error() string {
	reasons := make([]string, 0, len(w.ByReason))
	for reason, n := range w.ByReason {
		reasons = append(reasons, fmt.Sprintf("%s=%d", reason, n))
	}
	sort.Strings(reasons)
	return fmt.Sprintf("%s: skipped %d malformed rows (%s)", w.Source, w.Skipped, strings.Join(reasons, ", "))
}
