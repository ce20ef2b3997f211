// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package valuation

import (
	"os"
	"path/filepath"
	"testing"
)

// testArtifactJSON is a small identity-transform model:
//
//	price = 500000 + 500000*bed + 250000*bath + 3000*area + 200000*balcony
//	      + city{Lahore: 1e6, Karachi: 8e5, other: 0}
//	      + hood{DHA: 2e6, Gulberg: 1e6, Clifton: 1.5e6, other: 0}
const testArtifactJSON = `{
  "format_version": 1,
  "model_version": "test-2026.1",
  "intercept": 500000,
  "coefficients": [500000, 250000, 3000, 200000,
                   1000000, 800000, 0,
                   2000000, 1000000, 1500000, 0],
  "vocabulary": {
    "city": ["Lahore", "Karachi"],
    "neighborhood": ["DHA", "Gulberg", "Clifton"]
  },
  "target_transform": "identity"
}`

func mustParseArtifact(t *testing.T, data string) *Artifact {
	t.Helper()
	a, err := ParseArtifact([]byte(data))
	if err != nil {
		t.Fatalf("ParseArtifact() error = %v", err)
	}
	return a
}

func mustModel(t *testing.T, data string) *Model {
	t.Helper()
	m, err := NewModel(mustParseArtifact(t, data))
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
