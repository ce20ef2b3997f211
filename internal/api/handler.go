// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/estimo/internal/config"
	"github.com/tomtom215/estimo/internal/recommend"
	"github.com/tomtom215/estimo/internal/snapshot"
)

// Reloader rebuilds the published snapshot on demand.
type Reloader interface {
	Reload(ctx context.Context) (*snapshot.Snapshot, error)
	BreakerState() string
}

// Deps are the handler dependencies. They are assembled once at startup.
type Deps struct {
	Config      *config.Config
	Store       *snapshot.Store
	Recommender *recommend.Engine

	// Reloader is optional; without it POST /admin/reload is disabled.
	Reloader Reloader

	// Version is reported by /health.
	Version string
}

// Handler serves every API endpoint. It holds no mutable state of its own;
// each request reads the snapshot current when it starts.
type Handler struct {
	deps      Deps
	startTime time.Time
}

// NewHandler creates a Handler.
func NewHandler(deps Deps) (*Handler, error) {
	switch {
	case deps.Config == nil:
		return nil, errors.New("api: config is required")
	case deps.Store == nil:
		return nil, errors.New("api: snapshot store is required")
	case deps.Recommender == nil:
		return nil, errors.New("api: recommender is required")
	}
	if deps.Version == "" {
		deps.Version = "dev"
	}
	return &Handler{deps: deps, startTime: time.Now()}, nil
}

// current returns the published snapshot or ErrNotReady.
func (h *Handler) current() (*snapshot.Snapshot, error) {
	snap := h.deps.Store.Current()
	if snap == nil {
		return nil, ErrNotReady
	}
	return snap, nil
}

// requestContext bounds handler work by the configured request timeout.
func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.deps.Config.Server.RequestTimeout)
}
