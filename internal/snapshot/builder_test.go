// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package snapshot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/tomtom215/estimo/internal/property"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	snap, err := testBuilder(writeTestFiles(t)).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if snap.Catalog().Len() != 3 {
		t.Errorf("listings = %d, want 3", snap.Catalog().Len())
	}
	if snap.Model().Version() != "snap-1" {
		t.Errorf("model version = %q", snap.Model().Version())
	}
	if snap.Summary().Skipped != 1 {
		t.Errorf("skipped = %d, want 1", snap.Summary().Skipped)
	}
	if snap.Similarity() == nil {
		t.Error("similarity index missing")
	}
	if snap.Generation() != 0 {
		t.Errorf("unpublished generation = %d, want 0", snap.Generation())
	}
	if snap.LoadedAt().IsZero() {
		t.Error("LoadedAt not set")
	}
}

func TestBuilder_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(t *testing.T, f *testFiles)
		wantSource func(f testFiles) string
	}{
		{
			name:       "missing artifact",
			mutate:     func(_ *testing.T, f *testFiles) { f.artifact = filepath.Join(f.dir, "nope.json") },
			wantSource: func(f testFiles) string { return f.artifact },
		},
		{
			name:       "corrupt artifact",
			mutate:     func(t *testing.T, f *testFiles) { writeFile(t, f.artifact, `{"format_version": 1`) },
			wantSource: func(f testFiles) string { return f.artifact },
		},
		{
			name:       "missing catalog",
			mutate:     func(_ *testing.T, f *testFiles) { f.catalog = filepath.Join(f.dir, "nope.csv") },
			wantSource: func(f testFiles) string { return f.catalog },
		},
		{
			name:       "catalog without required columns",
			mutate:     func(t *testing.T, f *testFiles) { writeFile(t, f.catalog, "id,price\n1,2\n") },
			wantSource: func(f testFiles) string { return f.catalog },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := writeTestFiles(t)
			tt.mutate(t, &f)

			_, err := testBuilder(f).Build(context.Background())
			var mu *property.ModelUnavailableError
			if !errors.As(err, &mu) {
				t.Fatalf("Build() error = %v, want *property.ModelUnavailableError", err)
			}
			if mu.Source != tt.wantSource(f) {
				t.Errorf("Source = %q, want %q", mu.Source, tt.wantSource(f))
			}
		})
	}
}
