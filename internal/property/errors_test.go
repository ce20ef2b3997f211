// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package property

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	cause := errors.New("open models/valuation_model.json: no such file")

	tests := []struct {
		name    string
		err     error
		kind    error
		notKind error
	}{
		{"validation", &ValidationError{Field: "bedrooms", Reason: "must not be negative"}, ErrValidation, ErrNotFound},
		{"model unavailable", &ModelUnavailableError{Source: "artifact", Err: cause}, ErrModelUnavailable, ErrPrediction},
		{"prediction", &PredictionError{Reason: "non-finite"}, ErrPrediction, ErrValidation},
		{"not found", &NotFoundError{ID: 99999}, ErrNotFound, ErrModelUnavailable},
		{"wrapped validation", fmt.Errorf("encode: %w", &ValidationError{Field: "total_area", Reason: "must not be negative"}), ErrValidation, ErrPrediction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.kind)
			}
			if errors.Is(tt.err, tt.notKind) {
				t.Errorf("errors.Is(%v, %v) = true, want false", tt.err, tt.notKind)
			}
		})
	}
}

func TestModelUnavailableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := fmt.Errorf("startup: %w", &ModelUnavailableError{Source: "catalog", Err: cause})

	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}

	var mu *ModelUnavailableError
	if !errors.As(err, &mu) {
		t.Fatal("errors.As failed for *ModelUnavailableError")
	}
	if mu.Source != "catalog" {
		t.Errorf("Source = %q, want %q", mu.Source, "catalog")
	}
}

func TestValidationError_NamesField(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Field: "total_area", Reason: "must not be negative"}
	if got := err.Error(); !strings.HasPrefix(got, "total_area") {
		t.Errorf("Error() = %q, want prefix %q", got, "total_area")
	}
}

func TestLoadSummary_Warning(t *testing.T) {
	t.Parallel()

	var s LoadSummary
	s.Source = "catalog.csv"
	if s.Warning() != nil {
		t.Fatal("expected no warning for a clean load")
	}

	s.RecordSkip(SkipParse)
	s.RecordSkip(SkipParse)
	s.RecordSkip(SkipDuplicateID)

	w := s.Warning()
	if w == nil {
		t.Fatal("expected a warning after skips")
	}
	if w.Skipped != 3 {
		t.Errorf("Skipped = %d, want 3", w.Skipped)
	}
	if w.ByReason[SkipParse] != 2 {
		t.Errorf("ByReason[parse] = %d, want 2", w.ByReason[SkipParse])
	}
	if !strings.Contains(w.Error(), "duplicate_id=1") {
		t.Errorf("Error() = %q, want it to mention duplicate_id=1", w.Error())
	}

	// The warning owns its own copy of the counts.
	s.RecordSkip(SkipParse)
	if w.ByReason[SkipParse] != 2 {
		t.Errorf("warning counts changed after further skips: %d", w.ByReason[SkipParse])
	}
}
