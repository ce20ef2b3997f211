// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package snapshot

import (
	"sync"
	"sync/atomic"

	"github.com/tomtom215/estimo/internal/metrics"
)

// Store holds the published snapshot. Reads never block.
type Store struct {
	current    atomic.Pointer[Snapshot]
	swapMu     sync.Mutex
	generation uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Current returns the published snapshot, or nil before the first Swap.
func (st *Store) Current() *Snapshot {
	return st.current.Load()
}

// Swap publishes a copy of next under the next generation number and
// returns the published snapshot. next itself is not modified.
func (st *Store) Swap(next *Snapshot) *Snapshot {
	st.swapMu.Lock()
	defer st.swapMu.Unlock()

	st.generation++
	published := *next
	published.generation = st.generation
	st.current.Store(&published)

	summary := published.Summary()
	metrics.RecordSnapshot(published.generation, published.buildDuration)
	metrics.RecordCatalogLoad(summary.Loaded, summary.SkippedByReason)

	return &published
}
