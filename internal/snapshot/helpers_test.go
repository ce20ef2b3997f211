// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/estimo/internal/similarity"
)

const testArtifact = `{
  "format_version": 1,
  "model_version": "snap-1",
  "intercept": 100000,
  "coefficients": [100000, 50000, 1000, 10000, 0, 0, 0, 0, 0, 0],
  "vocabulary": {"city": ["Lahore", "Karachi"], "neighborhood": ["DHA", "Gulberg"]}
}`

const testCatalogCSV = `id,location,city,price,total_area,bedrooms,bathrooms
1,DHA,Lahore,9000000,2000,4,3
2,Gulberg,Lahore,5000000,1100,3,2
3,Clifton,Karachi,7500000,1800,3,2
4,Bad,Lahore,oops,10,1,1
`

type testFiles struct {
	dir      string
	catalog  string
	artifact string
}

func writeTestFiles(t *testing.T) testFiles {
	t.Helper()
	dir := t.TempDir()
	f := testFiles{
		dir:      dir,
		catalog:  filepath.Join(dir, "catalog.csv"),
		artifact: filepath.Join(dir, "model.json"),
	}
	writeFile(t, f.catalog, testCatalogCSV)
	writeFile(t, f.artifact, testArtifact)
	return f
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func testBuilder(f testFiles) *Builder {
	return NewBuilder(Sources{CatalogPath: f.catalog, ArtifactPath: f.artifact}, similarity.DefaultWeights(), zerolog.Nop())
}
