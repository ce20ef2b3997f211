// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package valuation

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Supported artifact format and target transforms.
const (
	ArtifactFormatVersion = 1

	TransformIdentity = "identity"
	TransformLog1p    = "log1p"
)

//go:embed artifact.schema.json
var artifactSchemaJSON string

const artifactSchemaURL = "artifact.schema.json"

var artifactSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(artifactSchemaURL, strings.NewReader(artifactSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add artifact schema: %w", err)
	}
	return compiler.Compile(artifactSchemaURL)
})

// Artifact is a trained linear price model with everything needed to
// encode inputs for it.
//
// Coefficients are aligned with the Layout built from Vocabulary, and the
// prediction is intercept + coefficients·vector, passed through expm1 when
// TargetTransform is "log1p".
type Artifact struct {
	FormatVersion   int                `json:"format_version"`
	ModelVersion    string             `json:"model_version"`
	Intercept       float64            `json:"intercept"`
	Coefficients    []float64          `json:"coefficients"`
	Normalization   map[string]Scaler  `json:"normalization,omitempty"`
	Vocabulary      ArtifactVocabulary `json:"vocabulary"`
	TargetTransform string             `json:"target_transform,omitempty"`
}

// ArtifactVocabulary lists the known categories per categorical feature.
type ArtifactVocabulary struct {
	City         []string `json:"city"`
	Neighborhood []string `json:"neighborhood"`
}

// ParseArtifact validates data against the artifact schema and decodes it.
func ParseArtifact(data []byte) (*Artifact, error) {
	schema, err := artifactSchema()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("artifact is not valid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("artifact schema validation failed: %w", err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if a.FormatVersion != ArtifactFormatVersion {
		return nil, fmt.Errorf("unsupported artifact format_version %d", a.FormatVersion)
	}
	if a.TargetTransform == "" {
		a.TargetTransform = TransformIdentity
	}
	return &a, nil
}

// ReadArtifact reads and parses the artifact at path.
func ReadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return ParseArtifact(data)
}

// Layout builds the vector layout described by the artifact's vocabulary.
func (a *Artifact) Layout() (Layout, error) {
	cities, err := NewVocabulary("city", a.Vocabulary.City)
	if err != nil {
		return Layout{}, err
	}
	hoods, err := NewVocabulary("neighborhood", a.Vocabulary.Neighborhood)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Cities: cities, Neighborhoods: hoods}, nil
}
