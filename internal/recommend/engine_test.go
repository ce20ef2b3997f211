// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/estimo/internal/catalog"
	"github.com/tomtom215/estimo/internal/property"
	"github.com/tomtom215/estimo/internal/similarity"
)

type testSource struct {
	generation uint64
	cat        *catalog.Catalog
	sim        *similarity.Engine
}

func (s *testSource) Generation() uint64             { return s.generation }
func (s *testSource) Catalog() *catalog.Catalog      { return s.cat }
func (s *testSource) Similarity() *similarity.Engine { return s.sim }

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]property.Record{
		{ID: 1, Location: "DHA", City: "Lahore", PropertyType: "House", Price: 10_000_000, TotalArea: 2000, Bedrooms: property.IntPtr(4), Bathrooms: property.IntPtr(3)},
		{ID: 2, Location: "Gulberg", City: "Lahore", PropertyType: "Flat", Price: 8_000_000, TotalArea: 1200, Bedrooms: property.IntPtr(3), Bathrooms: property.IntPtr(2)},
		{ID: 3, Location: "DHA", City: "Lahore", PropertyType: "House", Price: 8_000_000, TotalArea: 1500, Bedrooms: property.IntPtr(3), Bathrooms: property.IntPtr(2)},
		{ID: 4, Location: "Clifton", City: "Karachi", PropertyType: "House", Price: 9_000_000, TotalArea: 1700, Bedrooms: property.IntPtr(3), Bathrooms: property.IntPtr(3)},
		{ID: 5, Location: "Model Town", City: "Lahore", PropertyType: "House", Price: 12_000_000, TotalArea: 2600},
		{ID: 6, Location: "Johar Town", City: "Lahore", PropertyType: "Flat", Price: 6_000_000, TotalArea: 900, Bedrooms: property.IntPtr(2), Bathrooms: property.IntPtr(1)},
	})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

func testEngine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	e, err := NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func resultIDs(items []property.RankedCandidate) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.Record.ID
	}
	return out
}

func sameIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Limits.DefaultLimit = 0
	if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
		t.Error("NewEngine() error = nil, want invalid config error")
	}
}

func TestEngine_Recommend(t *testing.T) {
	t.Parallel()

	cat := testCatalog(t)
	e := testEngine(t, nil)

	tests := []struct {
		name     string
		criteria property.FilterCriteria
		limit    int
		want     []int64
	}{
		{
			// Target 8M: 2 and 3 hit it exactly. "Lahore" matches by city,
			// which earns no location bonus, so ties break by id.
			name: "range within city",
			criteria: property.FilterCriteria{
				Location: "Lahore",
				MinPrice: property.FloatPtr(6_000_000),
				MaxPrice: property.FloatPtr(10_000_000),
			},
			want: []int64{2, 3, 1, 6},
		},
		{
			name: "location bonus on neighborhood",
			criteria: property.FilterCriteria{
				Location: "dha",
				MinPrice: property.FloatPtr(6_000_000),
				MaxPrice: property.FloatPtr(10_000_000),
			},
			want: []int64{3, 1},
		},
		{
			name: "bedrooms filter and bonus",
			criteria: property.FilterCriteria{
				MinPrice: property.FloatPtr(7_000_000),
				MaxPrice: property.FloatPtr(9_000_000),
				Bedrooms: property.IntPtr(3),
			},
			want: []int64{2, 3, 4},
		},
		{
			name:     "no price bounds ranks by id",
			criteria: property.FilterCriteria{PropertyType: "house"},
			want:     []int64{1, 3, 4, 5},
		},
		{
			name:     "limit truncates",
			criteria: property.FilterCriteria{},
			limit:    2,
			want:     []int64{1, 2},
		},
		{
			name:     "no matches",
			criteria: property.FilterCriteria{Location: "Quetta"},
			want:     []int64{},
		},
		{
			name: "inverted range",
			criteria: property.FilterCriteria{
				MinPrice: property.FloatPtr(9_000_000),
				MaxPrice: property.FloatPtr(1_000_000),
			},
			want: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := e.Recommend(context.Background(), cat, Request{Criteria: tt.criteria, Limit: tt.limit})
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if got := resultIDs(resp.Items); !sameIDs(got, tt.want) {
				t.Errorf("Recommend() ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_RecommendRespectsCriteria(t *testing.T) {
	t.Parallel()

	cat := testCatalog(t)
	e := testEngine(t, nil)

	lo, hi := 7_000_000.0, 11_000_000.0
	resp, err := e.Recommend(context.Background(), cat, Request{Criteria: property.FilterCriteria{
		Location: "LAHORE",
		MinPrice: &lo,
		MaxPrice: &hi,
	}})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) == 0 {
		t.Fatal("expected results")
	}
	for i, it := range resp.Items {
		r := it.Record
		if r.Price < lo || r.Price > hi {
			t.Errorf("listing %d priced %v outside [%v, %v]", r.ID, r.Price, lo, hi)
		}
		if property.FoldKey(r.Location) != "lahore" && property.FoldKey(r.City) != "lahore" {
			t.Errorf("listing %d in %s/%s does not match Lahore", r.ID, r.Location, r.City)
		}
		if i > 0 && it.Score > resp.Items[i-1].Score {
			t.Errorf("scores increase at position %d", i)
		}
	}
}

func TestEngine_RecommendLimits(t *testing.T) {
	t.Parallel()

	cat := testCatalog(t)
	e := testEngine(t, func(c *Config) {
		c.Limits.DefaultLimit = 3
		c.Limits.MaxLimit = 4
	})

	tests := []struct {
		limit int
		want  int
	}{
		{0, 3},
		{-5, 3},
		{2, 2},
		{100, 4},
	}
	for _, tt := range tests {
		resp, err := e.Recommend(context.Background(), cat, Request{Limit: tt.limit})
		if err != nil {
			t.Fatal(err)
		}
		if len(resp.Items) != tt.want || resp.Limit != tt.want {
			t.Errorf("limit %d: got %d items (limit %d), want %d", tt.limit, len(resp.Items), resp.Limit, tt.want)
		}
		if resp.Matched != cat.Len() {
			t.Errorf("Matched = %d, want %d", resp.Matched, cat.Len())
		}
	}
}

func TestEngine_RecommendCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := testEngine(t, nil).Recommend(ctx, testCatalog(t), Request{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Recommend() error = %v, want context.Canceled", err)
	}
}

func TestFitScorer_Proximity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria property.FilterCriteria
		price    float64
		want     float64
	}{
		{"no bounds", property.FilterCriteria{}, 5, 0},
		{"midpoint", property.FilterCriteria{MinPrice: property.FloatPtr(100), MaxPrice: property.FloatPtr(200)}, 150, 1},
		{"range edge", property.FilterCriteria{MinPrice: property.FloatPtr(100), MaxPrice: property.FloatPtr(200)}, 200, 0},
		{"quarter", property.FilterCriteria{MinPrice: property.FloatPtr(100), MaxPrice: property.FloatPtr(200)}, 125, 0.5},
		{"min only", property.FilterCriteria{MinPrice: property.FloatPtr(100)}, 150, 0.5},
		{"max only far", property.FilterCriteria{MaxPrice: property.FloatPtr(100)}, 0, 0},
		{"zero width exact", property.FilterCriteria{MinPrice: property.FloatPtr(100), MaxPrice: property.FloatPtr(100)}, 100, 1},
		{"zero width miss", property.FilterCriteria{MinPrice: property.FloatPtr(100), MaxPrice: property.FloatPtr(100)}, 101, 0},
		{"zero bound", property.FilterCriteria{MaxPrice: property.FloatPtr(0)}, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newFitScorer(tt.criteria, DefaultConfig().Weights)
			if got := s.proximity(tt.price); got != tt.want {
				t.Errorf("proximity(%v) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}

func TestEngine_Similar(t *testing.T) {
	t.Parallel()

	cat := testCatalog(t)
	sim, err := similarity.NewEngine(cat, similarity.DefaultWeights())
	if err != nil {
		t.Fatal(err)
	}
	src := &testSource{generation: 1, cat: cat, sim: sim}
	e := testEngine(t, nil)

	got, err := e.Similar(context.Background(), src, 3, 3)
	if err != nil {
		t.Fatalf("Similar() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, c := range got {
		if c.Record.ID == 3 {
			t.Error("result contains the query listing")
		}
		if i > 0 && c.Score < got[i-1].Score {
			t.Errorf("distances decrease at %d", i)
		}
	}

	// Second call is served from cache and is identical.
	again, err := e.Similar(context.Background(), src, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !sameIDs(resultIDs(got), resultIDs(again)) {
		t.Errorf("cached result %v differs from %v", resultIDs(again), resultIDs(got))
	}
	if e.cache.Len() != 1 {
		t.Errorf("cache entries = %d, want 1", e.cache.Len())
	}

	e.Invalidate()
	if e.cache.Len() != 0 {
		t.Errorf("cache entries = %d after Invalidate, want 0", e.cache.Len())
	}
}

func TestEngine_SimilarNotFound(t *testing.T) {
	t.Parallel()

	cat := testCatalog(t)
	sim, err := similarity.NewEngine(cat, similarity.DefaultWeights())
	if err != nil {
		t.Fatal(err)
	}
	e := testEngine(t, nil)

	_, err = e.Similar(context.Background(), &testSource{generation: 1, cat: cat, sim: sim}, 99999, 5)
	if !errors.Is(err, property.ErrNotFound) {
		t.Errorf("Similar() error = %v, want ErrNotFound", err)
	}
}

func TestEngine_SimilarWithoutCache(t *testing.T) {
	t.Parallel()

	cat := testCatalog(t)
	sim, err := similarity.NewEngine(cat, similarity.DefaultWeights())
	if err != nil {
		t.Fatal(err)
	}
	e := testEngine(t, func(c *Config) { c.Cache.Enabled = false })

	got, err := e.Similar(context.Background(), &testSource{cat: cat, sim: sim}, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != DefaultConfig().Limits.DefaultSimilarK {
		t.Errorf("len = %d, want default k %d", len(got), DefaultConfig().Limits.DefaultSimilarK)
	}
	e.Invalidate()
}

func TestEngine_EffectiveK(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)
	tests := []struct{ in, want int }{{0, 5}, {-1, 5}, {7, 7}, {1000, 50}}
	for _, tt := range tests {
		if got := e.EffectiveK(tt.in); got != tt.want {
			t.Errorf("EffectiveK(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
