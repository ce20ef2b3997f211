// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package valuation

import (
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/estimo/internal/property"
)

func testLayout(t *testing.T) Layout {
	t.Helper()
	cities, err := NewVocabulary("city", []string{"Lahore", "Karachi"})
	if err != nil {
		t.Fatal(err)
	}
	hoods, err := NewVocabulary("neighborhood", []string{"DHA", "Gulberg", "Clifton"})
	if err != nil {
		t.Fatal(err)
	}
	return Layout{Cities: cities, Neighborhoods: hoods}
}

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	enc, err := NewEncoder(testLayout(t), nil)
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}

	vec, err := enc.Encode(RawFields{
		City:         "karachi",
		Neighborhood: "Clifton",
		Bedrooms:     3,
		Bathrooms:    2,
		TotalArea:    1500,
		HasBalcony:   true,
	})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := FeatureVector{3, 2, 1500, 1, 0, 1, 0, 0, 0, 1, 0}
	if len(vec) != len(want) {
		t.Fatalf("len(vector) = %d, want %d", len(vec), len(want))
	}
	for i := range want {
		if vec[i] != want[i] {
			t.Errorf("vector[%d] = %v, want %v", i, vec[i], want[i])
		}
	}
}

func TestEncoder_ZeroAndFalseAreValid(t *testing.T) {
	t.Parallel()

	enc, _ := NewEncoder(testLayout(t), nil)
	vec, err := enc.Encode(RawFields{City: "Lahore", Neighborhood: "DHA", Bedrooms: 0, Bathrooms: 0, TotalArea: 0, HasBalcony: false})
	if err != nil {
		t.Fatalf("Encode() error = %v, want nil for zero values", err)
	}
	if vec[3] != 0 {
		t.Errorf("has_balcony slot = %v, want 0", vec[3])
	}
}

func TestEncoder_Validation(t *testing.T) {
	t.Parallel()

	enc, _ := NewEncoder(testLayout(t), nil)
	base := RawFields{City: "Lahore", Neighborhood: "DHA", Bedrooms: 3, Bathrooms: 2, TotalArea: 1200}

	tests := []struct {
		name      string
		mutate    func(*RawFields)
		wantField string
	}{
		{"negative bedrooms", func(r *RawFields) { r.Bedrooms = -1 }, "bedrooms"},
		{"negative bathrooms", func(r *RawFields) { r.Bathrooms = -2 }, "bathrooms"},
		{"negative area", func(r *RawFields) { r.TotalArea = -10 }, "total_area"},
		{"NaN area", func(r *RawFields) { r.TotalArea = math.NaN() }, "total_area"},
		{"infinite area", func(r *RawFields) { r.TotalArea = math.Inf(1) }, "total_area"},
		{"first bad field wins", func(r *RawFields) { r.Bedrooms = -1; r.TotalArea = -1 }, "bedrooms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := base
			tt.mutate(&raw)

			_, err := enc.Encode(raw)
			var verr *property.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Encode() error = %v, want *property.ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestEncoder_FallbackSlot(t *testing.T) {
	t.Parallel()

	enc, _ := NewEncoder(testLayout(t), nil)
	raw := RawFields{City: "Quetta", Neighborhood: "Cantt", Bedrooms: 2, Bathrooms: 1, TotalArea: 800}

	first, err := enc.EncodeDetailed(raw)
	if err != nil {
		t.Fatalf("EncodeDetailed() error = %v", err)
	}
	if first.CityKnown || first.NeighborhoodKnown {
		t.Error("expected both categories to be reported unknown")
	}
	// City fallback is slot 2 of the city block, neighborhood fallback slot 3.
	if first.Vector[4+2] != 1 || first.Vector[4+3+3] != 1 {
		t.Errorf("fallback slots not set: %v", first.Vector)
	}

	for i := 0; i < 10; i++ {
		again, _ := enc.EncodeDetailed(raw)
		for j := range again.Vector {
			if again.Vector[j] != first.Vector[j] {
				t.Fatalf("encoding differs between calls at index %d", j)
			}
		}
	}
}

func TestEncoder_Normalization(t *testing.T) {
	t.Parallel()

	enc, err := NewEncoder(testLayout(t), map[string]Scaler{
		FeatureTotalArea: {Mean: 1000, Scale: 500},
		FeatureBedrooms:  {Mean: 3, Scale: 1},
	})
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}

	vec, _ := enc.Encode(RawFields{City: "Lahore", Neighborhood: "DHA", Bedrooms: 4, Bathrooms: 2, TotalArea: 2000})
	if vec[0] != 1 {
		t.Errorf("bedrooms = %v, want 1", vec[0])
	}
	if vec[1] != 2 {
		t.Errorf("bathrooms = %v, want 2 (unscaled)", vec[1])
	}
	if vec[2] != 2 {
		t.Errorf("total_area = %v, want 2", vec[2])
	}
}

func TestNewEncoder_RejectsBadScale(t *testing.T) {
	t.Parallel()

	_, err := NewEncoder(testLayout(t), map[string]Scaler{FeatureTotalArea: {Mean: 0, Scale: 0}})
	if err == nil {
		t.Error("expected an error for a zero scale")
	}
	if _, err := NewEncoder(Layout{}, nil); err == nil {
		t.Error("expected an error for a layout without vocabularies")
	}
}
