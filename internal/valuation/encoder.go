// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package valuation

import (
	"fmt"
	"math"

	"github.com/tomtom215/estimo/internal/property"
)

// Numeric feature names, in layout order. They double as the keys of the
// artifact's normalization table and as the field names in validation errors.
const (
	FeatureBedrooms   = "bedrooms"
	FeatureBathrooms  = "bathrooms"
	FeatureTotalArea  = "total_area"
	FeatureHasBalcony = "has_balcony"
)

// numericFeatures precede has_balcony and the one-hot blocks in every vector.
var numericFeatures = [...]string{FeatureBedrooms, FeatureBathrooms, FeatureTotalArea}

// leadingWidth counts the numeric features plus has_balcony.
const leadingWidth = len(numericFeatures) + 1

// FeatureVector is the fixed-order numeric encoding consumed by Model.
type FeatureVector []float64

// RawFields are the listing attributes a price estimate is computed from.
type RawFields struct {
	City         string
	Neighborhood string
	Bedrooms     int
	Bathrooms    int
	TotalArea    float64
	HasBalcony   bool
}

// Scaler z-normalizes a numeric feature: (x - Mean) / Scale.
type Scaler struct {
	Mean  float64 `json:"mean"`
	Scale float64 `json:"scale"`
}

var identityScaler = Scaler{Mean: 0, Scale: 1}

// Layout describes the vector shape:
//
//	[bedrooms, bathrooms, total_area, has_balcony, city one-hot..., neighborhood one-hot...]
//
// Each one-hot block ends with its vocabulary's fallback slot.
type Layout struct {
	Cities        *Vocabulary
	Neighborhoods *Vocabulary
}

// Width returns the vector length.
func (l Layout) Width() int {
	return leadingWidth + l.Cities.Width() + l.Neighborhoods.Width()
}

func (l Layout) cityOffset() int         { return leadingWidth }
func (l Layout) neighborhoodOffset() int { return leadingWidth + l.Cities.Width() }

// Encoding is an encoded vector plus which categories were recognized.
type Encoding struct {
	Vector            FeatureVector
	CityKnown         bool
	NeighborhoodKnown bool
}

// Encoder turns RawFields into FeatureVectors. It is immutable and safe for
// concurrent use.
type Encoder struct {
	layout  Layout
	scalers [len(numericFeatures)]Scaler
}

// NewEncoder binds a layout to normalization constants. Features missing
// from norm are passed through unscaled.
func NewEncoder(layout Layout, norm map[string]Scaler) (*Encoder, error) {
	if layout.Cities == nil || layout.Neighborhoods == nil {
		return nil, fmt.Errorf("encoder: layout requires city and neighborhood vocabularies")
	}
	e := &Encoder{layout: layout}
	for i, name := range numericFeatures {
		s, ok := norm[name]
		if !ok {
			s = identityScaler
		}
		if !(s.Scale > 0) || math.IsInf(s.Scale, 0) || math.IsNaN(s.Mean) || math.IsInf(s.Mean, 0) {
			return nil, fmt.Errorf("encoder: invalid normalization for %s", name)
		}
		e.scalers[i] = s
	}
	return e, nil
}

// Layout returns the encoder's vector layout.
func (e *Encoder) Layout() Layout { return e.layout }

// Encode converts raw fields into a feature vector.
func (e *Encoder) Encode(raw RawFields) (FeatureVector, error) {
	enc, err := e.EncodeDetailed(raw)
	if err != nil {
		return nil, err
	}
	return enc.Vector, nil
}

// EncodeDetailed is Encode but also reports whether each categorical value
// was found in its vocabulary.
func (e *Encoder) EncodeDetailed(raw RawFields) (Encoding, error) {
	if err := validateRaw(raw); err != nil {
		return Encoding{}, err
	}

	vec := make(FeatureVector, e.layout.Width())
	numeric := [len(numericFeatures)]float64{float64(raw.Bedrooms), float64(raw.Bathrooms), raw.TotalArea}
	for i, x := range numeric {
		vec[i] = (x - e.scalers[i].Mean) / e.scalers[i].Scale
	}
	if raw.HasBalcony {
		vec[len(numericFeatures)] = 1
	}

	citySlot, cityKnown := e.layout.Cities.Lookup(raw.City)
	vec[e.layout.cityOffset()+citySlot] = 1

	hoodSlot, hoodKnown := e.layout.Neighborhoods.Lookup(raw.Neighborhood)
	vec[e.layout.neighborhoodOffset()+hoodSlot] = 1

	return Encoding{Vector: vec, CityKnown: cityKnown, NeighborhoodKnown: hoodKnown}, nil
}

// validateRaw checks fields in layout order so the reported field is stable.
func validateRaw(raw RawFields) error {
	if raw.Bedrooms < 0 {
		return &property.ValidationError{Field: FeatureBedrooms, Reason: "must not be negative"}
	}
	if raw.Bathrooms < 0 {
		return &property.ValidationError{Field: FeatureBathrooms, Reason: "must not be negative"}
	}
	if math.IsNaN(raw.TotalArea) || math.IsInf(raw.TotalArea, 0) {
		return &property.ValidationError{Field: FeatureTotalArea, Reason: "must be a finite number"}
	}
	if raw.TotalArea < 0 {
		return &property.ValidationError{Field: FeatureTotalArea, Reason: "must not be negative"}
	}
	return nil
}
