// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

/*
Package main is the entry point for the Estimo server.

Estimo serves price predictions from a trained linear model, criteria based
recommendations and nearest-neighbor "similar properties" lookups over a CSV
property catalog.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("estimo")
	├── DataSupervisor ("data-layer")
	│   └── Reload watcher (catalog, artifact and image database files)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: defaults, config.yaml, .env and environment (Koanf v2)
 2. Snapshot: load the catalog, the model artifact and the optional image
    database, then publish them as one immutable snapshot
 3. Recommendation engine and reloader
 4. HTTP router (chi) with CORS, rate limiting and Prometheus metrics
 5. Supervisor tree

The process refuses to start when the first snapshot cannot be built. Later
reload failures keep the current snapshot published.

# Configuration

Common environment variables:
  - HTTP_PORT: listen port (default 5000)
  - CATALOG_PATH: property catalog CSV (default data/catalog.csv)
  - MODEL_PATH: model artifact JSON (default models/valuation_model.json)
  - IMAGE_DB_PATH: optional SQLite image database
  - LOG_LEVEL, LOG_FORMAT: zerolog level and json|console
  - CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW

See config.yaml.example for every setting.

# Signal Handling

SIGINT and SIGTERM stop the supervisor tree, which shuts the HTTP server down
within the configured shutdown timeout.
*/
package main
