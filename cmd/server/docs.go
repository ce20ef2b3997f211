// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

// Package main provides the Estimo HTTP server
//
// @title Estimo API
// @version 1.0
// @description Property price prediction, valuation, recommendations and similar-listing search over a property catalog.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "error": "Human-readable error message",
// @description   "code": "VALIDATION_ERROR",
// @description   "details": {"field": "city"}
// @description }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. /health, /ready and /metrics are not limited.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/estimo/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /
// @schemes http https
//
// @tag.name Valuation
// @tag.description Price prediction and valuation
//
// @tag.name Recommendations
// @tag.description Criteria-based recommendations and similar listings
//
// @tag.name Catalog
// @tag.description Listing detail and market statistics
//
// @tag.name Operations
// @tag.description Health, readiness and data reload
package main
