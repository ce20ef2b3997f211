// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// Instruments are process-global, so tests compare deltas.

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/predict-price", "200"))
	RecordAPIRequest("POST", "/predict-price", "200", 3*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/predict-price", "200"))

	if after-before != 1 {
		t.Errorf("request counter delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 1 {
		t.Errorf("active delta = %v, want 1", got)
	}
	TrackActiveRequest(false)
}

func TestRecordPrediction(t *testing.T) {
	tests := []struct {
		result string
	}{
		{PredictionSuccess},
		{PredictionInvalid},
		{PredictionFailed},
	}
	for _, tt := range tests {
		t.Run(tt.result, func(t *testing.T) {
			c := PredictionsTotal.WithLabelValues(tt.result)
			before := testutil.ToFloat64(c)
			RecordPrediction(tt.result, time.Microsecond)
			if got := testutil.ToFloat64(c) - before; got != 1 {
				t.Errorf("delta = %v, want 1", got)
			}
		})
	}
}

func TestRecordRecommendation(t *testing.T) {
	m := &dto.Metric{}
	if err := RecommendationResults.Write(m); err != nil {
		t.Fatal(err)
	}
	before := m.GetHistogram().GetSampleCount()

	RecordRecommendation(7, time.Millisecond)

	m = &dto.Metric{}
	if err := RecommendationResults.Write(m); err != nil {
		t.Fatal(err)
	}
	if got := m.GetHistogram().GetSampleCount() - before; got != 1 {
		t.Errorf("sample count delta = %d, want 1", got)
	}
}

func TestRecordSimilarCache(t *testing.T) {
	hits, misses := testutil.ToFloat64(SimilarCacheHits), testutil.ToFloat64(SimilarCacheMisses)
	RecordSimilarCache(true)
	RecordSimilarCache(false)
	RecordSimilarCache(false)

	if got := testutil.ToFloat64(SimilarCacheHits) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(SimilarCacheMisses) - misses; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestRecordCatalogLoad(t *testing.T) {
	RecordCatalogLoad(120, map[string]int{"parse": 3, "duplicate_id": 1})
	if got := testutil.ToFloat64(CatalogRecords); got != 120 {
		t.Errorf("records = %v, want 120", got)
	}
	if got := testutil.ToFloat64(CatalogRowsSkipped.WithLabelValues("parse")); got != 3 {
		t.Errorf("parse skipped = %v, want 3", got)
	}

	// A clean reload clears the previous reasons.
	RecordCatalogLoad(100, nil)
	if got := testutil.CollectAndCount(CatalogRowsSkipped); got != 0 {
		t.Errorf("skipped series = %d after clean load, want 0", got)
	}
}

func TestRecordSnapshotAndReload(t *testing.T) {
	RecordSnapshot(7, 50*time.Millisecond)
	if got := testutil.ToFloat64(SnapshotGeneration); got != 7 {
		t.Errorf("generation = %v, want 7", got)
	}

	c := ReloadsTotal.WithLabelValues(ReloadRejected)
	before := testutil.ToFloat64(c)
	RecordReload(ReloadRejected)
	if got := testutil.ToFloat64(c) - before; got != 1 {
		t.Errorf("rejected delta = %v, want 1", got)
	}
}

func TestSetReloadBreakerState(t *testing.T) {
	tests := []struct {
		state string
		want  float64
	}{
		{"open", 2},
		{"half-open", 1},
		{"closed", 0},
	}
	for _, tt := range tests {
		SetReloadBreakerState(tt.state)
		if got := testutil.ToFloat64(ReloadBreakerState); got != tt.want {
			t.Errorf("state %s = %v, want %v", tt.state, got, tt.want)
		}
	}
}
