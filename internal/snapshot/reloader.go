// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/estimo/internal/metrics"
)

// ErrReloadRejected is returned while the reload circuit breaker is open.
var ErrReloadRejected = errors.New("reload rejected: too many recent failures")

// SnapshotBuilder builds a complete replacement snapshot.
type SnapshotBuilder interface {
	Build(ctx context.Context) (*Snapshot, error)
}

// ReloaderConfig tunes the reload circuit breaker.
type ReloaderConfig struct {
	// BreakerFailures is the number of consecutive failed builds that opens
	// the breaker. Default: 3.
	BreakerFailures uint32

	// BreakerTimeout is how long the breaker stays open before a trial
	// reload is allowed. Default: 1m.
	BreakerTimeout time.Duration
}

// Reloader rebuilds and publishes snapshots. Reloads are serialized.
type Reloader struct {
	builder SnapshotBuilder
	store   *Store
	cb      *gobreaker.CircuitBreaker[*Snapshot]
	logger  zerolog.Logger
	onSwap  []func(*Snapshot)
	mu      sync.Mutex
}

// NewReloader creates a Reloader that publishes into store. Each onSwap
// hook runs after a new snapshot is published.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewReloader(builder SnapshotBuilder, store *Store, cfg ReloaderConfig, logger zerolog.Logger, onSwap ...func(*Snapshot)) *Reloader {
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 3
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = time.Minute
	}

	r := &Reloader{
		builder: builder,
		store:   store,
		logger:  logger.With().Str("component", "reloader").Logger(),
		onSwap:  onSwap,
	}

	metrics.SetReloadBreakerState(stateToString(gobreaker.StateClosed))
	r.cb = gobreaker.NewCircuitBreaker[*Snapshot](gobreaker.Settings{
		Name:        "snapshot-reload",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(_ string, from, to gobreaker.State) {
			r.logger.Warn().
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("Reload breaker state changed")
			metrics.SetReloadBreakerState(stateToString(to))
		},
	})

	return r
}

// Reload builds a new snapshot and publishes it. On failure the current
// snapshot stays published and the error is returned.
func (r *Reloader) Reload(ctx context.Context) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	built, err := r.cb.Execute(func() (*Snapshot, error) {
		return r.builder.Build(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordReload(metrics.ReloadRejected)
			r.logger.Warn().Err(err).Msg("Reload rejected")
			return nil, fmt.Errorf("%w: %w", ErrReloadRejected, err)
		}
		metrics.RecordReload(metrics.ReloadFailure)
		r.logger.Error().Err(err).Msg("Reload failed, keeping current snapshot")
		return nil, err
	}

	published := r.store.Swap(built)
	metrics.RecordReload(metrics.ReloadSuccess)
	r.logger.Info().
		Uint64("generation", published.Generation()).
		Str("model_version", published.Model().Version()).
		Int("listings", published.Catalog().Len()).
		Msg("Snapshot published")

	for _, hook := range r.onSwap {
		hook(published)
	}
	return published, nil
}

// BreakerState returns the breaker state as closed, half-open or open.
func (r *Reloader) BreakerState() string {
	return stateToString(r.cb.State())
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
