// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package similarity

import (
	"fmt"
	"math"
)

// Default attribute weights. Numeric differences are divided by the catalog
// span of the attribute before weighting, so the weights are comparable.
const (
	DefaultPriceWeight     = 0.4
	DefaultAreaWeight      = 0.3
	DefaultBedroomsWeight  = 0.15
	DefaultBathroomsWeight = 0.15
	DefaultLocationPenalty = 0.5
)

// Weights scale each term of the distance function.
type Weights struct {
	Price     float64 `koanf:"price" json:"price"`
	Area      float64 `koanf:"area" json:"area"`
	Bedrooms  float64 `koanf:"bedrooms" json:"bedrooms"`
	Bathrooms float64 `koanf:"bathrooms" json:"bathrooms"`

	// LocationPenalty is added when the two locations differ.
	LocationPenalty float64 `koanf:"location_penalty" json:"location_penalty"`
}

// DefaultWeights returns the default weights.
func DefaultWeights() Weights {
	return Weights{
		Price:           DefaultPriceWeight,
		Area:            DefaultAreaWeight,
		Bedrooms:        DefaultBedroomsWeight,
		Bathrooms:       DefaultBathroomsWeight,
		LocationPenalty: DefaultLocationPenalty,
	}
}

// Validate requires every weight to be finite and strictly positive. A zero
// weight would let two distinct listings sit at distance zero.
func (w Weights) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"price", w.Price},
		{"area", w.Area},
		{"bedrooms", w.Bedrooms},
		{"bathrooms", w.Bathrooms},
		{"location_penalty", w.LocationPenalty},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return fmt.Errorf("similarity weight %s must be a finite positive number, got %v", f.name, f.value)
		}
	}
	return nil
}
