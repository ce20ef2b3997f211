// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package valuation

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/estimo/internal/property"
)

// Model is a loaded price model. It holds no mutable state: Predict is a
// pure function of the vector and the artifact, and a Model may be shared
// by any number of goroutines.
type Model struct {
	version      string
	intercept    float64
	coefficients []float64
	transform    string
	encoder      *Encoder
}

// Estimate is a price prediction together with the encoding facts that
// produced it.
type Estimate struct {
	Price             float64
	CityKnown         bool
	NeighborhoodKnown bool
}

// Confidence scores and the relative width of the reported price range.
const (
	ConfidenceBothKnown   = 0.8
	ConfidenceOneFallback = 0.7
	ConfidenceNoneKnown   = 0.6
	RangeFraction         = 0.10
)

// Confidence is lower for every categorical value that fell back to the
// unknown slot.
func (e Estimate) Confidence() float64 {
	switch {
	case e.CityKnown && e.NeighborhoodKnown:
		return ConfidenceBothKnown
	case e.CityKnown || e.NeighborhoodKnown:
		return ConfidenceOneFallback
	default:
		return ConfidenceNoneKnown
	}
}

// Range returns the price band of plus or minus RangeFraction.
func (e Estimate) Range() (lo, hi float64) {
	return e.Price * (1 - RangeFraction), e.Price * (1 + RangeFraction)
}

// LoadModel reads the artifact at path and builds a Model. Any failure is
// reported as a *property.ModelUnavailableError.
func LoadModel(path string) (*Model, error) {
	a, err := ReadArtifact(path)
	if err != nil {
		return nil, &property.ModelUnavailableError{Source: path, Err: err}
	}
	m, err := NewModel(a)
	if err != nil {
		var mu *property.ModelUnavailableError
		if errors.As(err, &mu) {
			return nil, &property.ModelUnavailableError{Source: path, Err: mu.Err}
		}
		return nil, &property.ModelUnavailableError{Source: path, Err: err}
	}
	return m, nil
}

// NewModel validates a decoded artifact and builds a Model from it.
func NewModel(a *Artifact) (*Model, error) {
	if a == nil {
		return nil, &property.ModelUnavailableError{Source: "artifact", Err: fmt.Errorf("artifact is nil")}
	}
	layout, err := a.Layout()
	if err != nil {
		return nil, &property.ModelUnavailableError{Source: "artifact", Err: err}
	}
	enc, err := NewEncoder(layout, a.Normalization)
	if err != nil {
		return nil, &property.ModelUnavailableError{Source: "artifact", Err: err}
	}
	if got, want := len(a.Coefficients), layout.Width(); got != want {
		return nil, &property.ModelUnavailableError{
			Source: "artifact",
			Err:    fmt.Errorf("coefficients has %d entries, layout requires %d", got, want),
		}
	}
	for i, c := range a.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, &property.ModelUnavailableError{Source: "artifact", Err: fmt.Errorf("coefficient %d is not finite", i)}
		}
	}

	transform := a.TargetTransform
	switch transform {
	case "":
		transform = TransformIdentity
	case TransformIdentity, TransformLog1p:
	default:
		return nil, &property.ModelUnavailableError{Source: "artifact", Err: fmt.Errorf("unknown target_transform %q", transform)}
	}

	coef := make([]float64, len(a.Coefficients))
	copy(coef, a.Coefficients)

	return &Model{
		version:      a.ModelVersion,
		intercept:    a.Intercept,
		coefficients: coef,
		transform:    transform,
		encoder:      enc,
	}, nil
}

// Version returns the artifact's model_version.
func (m *Model) Version() string { return m.version }

// Encoder returns the encoder bound to this model's layout.
func (m *Model) Encoder() *Encoder { return m.encoder }

// Predict returns the price for an encoded vector. Results are clamped to be
// non-negative; NaN or infinite results are a *property.PredictionError.
func (m *Model) Predict(v FeatureVector) (float64, error) {
	if len(v) != len(m.coefficients) {
		return 0, &property.PredictionError{Reason: "input does not match the model's feature layout"}
	}

	sum := m.intercept
	for i, x := range v {
		sum += m.coefficients[i] * x
	}

	price := sum
	if m.transform == TransformLog1p {
		price = math.Expm1(sum)
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, &property.PredictionError{Reason: "model produced a non-finite price"}
	}
	if price < 0 {
		price = 0
	}
	return price, nil
}

// Estimate encodes raw and predicts its price.
func (m *Model) Estimate(raw RawFields) (Estimate, error) {
	enc, err := m.encoder.EncodeDetailed(raw)
	if err != nil {
		return Estimate{}, err
	}
	price, err := m.Predict(enc.Vector)
	if err != nil {
		return Estimate{}, err
	}
	return Estimate{Price: price, CityKnown: enc.CityKnown, NeighborhoodKnown: enc.NeighborhoodKnown}, nil
}
