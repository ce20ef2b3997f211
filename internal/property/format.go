// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package property

import (
	"fmt"
	"math"
	"strconv"
)

const (
	crore = 1e7
	lakh  = 1e5
)

// FormatPrice renders a price in rupees using crore and lakh units for
// large amounts, e.g. 12500000 -> "₹1.25 Cr" and 450000 -> "₹4.50 L".
func FormatPrice(price float64) string {
	switch {
	case math.IsNaN(price) || math.IsInf(price, 0):
		return ""
	case price >= crore:
		return fmt.Sprintf("₹%.2f Cr", price/crore)
	case price >= lakh:
		return fmt.Sprintf("₹%.2f L", price/lakh)
	}

	n := int64(math.Round(price))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return "₹" + sign + groupThousands(n)
}

// groupThousands inserts a separator before the last three digits. Inputs
// stay below one lakh, so Indian and western grouping agree.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	return s[:len(s)-3] + "," + s[len(s)-3:]
}
