// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/estimo/internal/middleware"
)

// Router wires the handler into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware

	// rateLimit is shared by the root and /api mounts so both count
	// against one budget.
	rateLimit func(http.Handler) http.Handler
}

// NewRouter creates a Router for handler.
func NewRouter(handler *Handler) *Router {
	mw := NewChiMiddleware(NewChiMiddlewareConfig(handler.deps.Config.Security))
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
		rateLimit:     mw.RateLimit(),
	}
}

// SetupChi builds the HTTP handler. Every API route is served both at the
// root and under /api.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes, in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight

	router.registerAPIRoutes(r)
	r.Route("/api", router.registerAPIRoutes)

	// Operational endpoints are not rate limited.
	r.Get("/health", router.handler.Health)
	r.Get("/ready", router.handler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	if router.handler.deps.Config.Server.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
			httpSwagger.DomID("swagger-ui"),
		))
	}

	r.NotFound(router.handler.NotFound)
	r.MethodNotAllowed(router.handler.MethodNotAllowed)

	return r
}

func (router *Router) registerAPIRoutes(r chi.Router) {
	h := router.handler
	r.Group(func(r chi.Router) {
		r.Use(router.rateLimit)

		r.Post("/predict-price", h.PredictPrice)
		r.Post("/valuation", h.Valuation)
		r.Post("/get-recommendations", h.GetRecommendations)
		r.Get("/similar-properties/{id}", h.SimilarProperties)
		r.Get("/properties/{id}", h.Property)
		r.Get("/featured-properties", h.FeaturedProperties)
		r.Get("/market-stats", h.MarketStats)

		if h.deps.Reloader != nil && h.deps.Config.Security.AdminReloadEnabled {
			r.Post("/admin/reload", h.AdminReload)
		}
	})
}
