// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

// Package imagestore reads listing image references from a SQLite database.
//
// The database is opened read-only and must contain a table
//
//	property_images(id INTEGER, url TEXT, property_id INTEGER)
//
// Images are returned grouped by property id, ordered by image id.
package imagestore

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver

	"github.com/tomtom215/estimo/internal/logging"
	"github.com/tomtom215/estimo/internal/property"
)

const selectImages = `
	SELECT id, url, property_id
	FROM property_images
	WHERE url IS NOT NULL AND url != ''
	ORDER BY property_id, id`

// LoadRefs reads every image reference in the database at path.
// An empty path returns an empty map without touching the filesystem.
func LoadRefs(ctx context.Context, path string) (map[int64][]property.ImageRef, error) {
	refs := make(map[int64][]property.ImageRef)
	if strings.TrimSpace(path) == "" {
		return refs, nil
	}

	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open image store: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectImages)
	if err != nil {
		return nil, fmt.Errorf("query images: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var (
			ref        property.ImageRef
			propertyID int64
		)
		if err := rows.Scan(&ref.ID, &ref.URL, &propertyID); err != nil {
			return nil, fmt.Errorf("scan image row: %w", err)
		}
		refs[propertyID] = append(refs[propertyID], ref)
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate images: %w", err)
	}

	logging.Debug().
		Str("path", path).
		Int("images", count).
		Int("properties", len(refs)).
		Msg("Loaded image references")

	return refs, nil
}

// dsn builds a read-only sqlite3 connection string for path.
func dsn(path string) string {
	u := url.URL{Scheme: "file", Opaque: path}
	q := url.Values{}
	q.Set("mode", "ro")
	u.RawQuery = q.Encode()
	return u.String()
}
