// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package property

import "testing"

func TestFilterCriteria_Matches(t *testing.T) {
	t.Parallel()

	rec := &Record{
		ID:           7,
		Location:     "DHA Phase 5",
		City:         "Lahore",
		PropertyType: "House",
		Price:        7_500_000,
		Bedrooms:     IntPtr(3),
	}
	noRooms := &Record{ID: 8, Location: "Gulberg", City: "Lahore", Price: 6_000_000}

	tests := []struct {
		name     string
		criteria FilterCriteria
		record   *Record
		want     bool
	}{
		{"empty criteria matches", FilterCriteria{}, rec, true},
		{"city match case-insensitive", FilterCriteria{Location: "lahore"}, rec, true},
		{"location match", FilterCriteria{Location: "dha phase 5"}, rec, true},
		{"prefix is not a match", FilterCriteria{Location: "DHA"}, rec, false},
		{"other city", FilterCriteria{Location: "Karachi"}, rec, false},
		{"inclusive lower bound", FilterCriteria{MinPrice: FloatPtr(7_500_000)}, rec, true},
		{"inclusive upper bound", FilterCriteria{MaxPrice: FloatPtr(7_500_000)}, rec, true},
		{"below range", FilterCriteria{MinPrice: FloatPtr(8_000_000)}, rec, false},
		{"bedrooms equal", FilterCriteria{Bedrooms: IntPtr(3)}, rec, true},
		{"bedrooms differ", FilterCriteria{Bedrooms: IntPtr(2)}, rec, false},
		{"unknown bedrooms excluded when set", FilterCriteria{Bedrooms: IntPtr(3)}, noRooms, false},
		{"unknown bedrooms kept when unset", FilterCriteria{Location: "Lahore"}, noRooms, true},
		{"type case-insensitive", FilterCriteria{PropertyType: "house"}, rec, true},
		{"unknown type excluded when set", FilterCriteria{PropertyType: "House"}, noRooms, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.criteria.Matches(tt.record); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterCriteria_InvertedRange(t *testing.T) {
	t.Parallel()

	if !(FilterCriteria{MinPrice: FloatPtr(10), MaxPrice: FloatPtr(5)}).InvertedRange() {
		t.Error("expected min > max to be inverted")
	}
	if (FilterCriteria{MinPrice: FloatPtr(5), MaxPrice: FloatPtr(5)}).InvertedRange() {
		t.Error("expected min == max not to be inverted")
	}
	if (FilterCriteria{MinPrice: FloatPtr(10)}).InvertedRange() {
		t.Error("expected a single bound not to be inverted")
	}
}

func TestFoldKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"  Lahore ", "lahore"},
		{"KARACHI", "karachi"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := FoldKey(tt.in); got != tt.want {
			t.Errorf("FoldKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
