// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package property

import "testing"

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price float64
		want  string
	}{
		{0, "₹0"},
		{950, "₹950"},
		{45_000, "₹45,000"},
		{99_999.4, "₹99,999"},
		{100_000, "₹1.00 L"},
		{450_000, "₹4.50 L"},
		{9_999_999, "₹100.00 L"},
		{10_000_000, "₹1.00 Cr"},
		{12_500_000, "₹1.25 Cr"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}
