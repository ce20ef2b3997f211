// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tomtom215/estimo/internal/property"
)

// Column names recognized in the catalog CSV header.
const (
	colID           = "id"
	colTitle        = "title"
	colLocation     = "location"
	colCity         = "city"
	colState        = "state"
	colPropertyType = "property_type"
	colPrice        = "price"
	colTotalArea    = "total_area"
	colBedrooms     = "bedrooms"
	colBathrooms    = "bathrooms"
	colHasBalcony   = "has_balcony"
	colIsFeatured   = "is_featured"
)

// headerAliases maps alternative header spellings to canonical names.
var headerAliases = map[string]string{
	"baths":        colBathrooms,
	"beds":         colBedrooms,
	"neighborhood": colLocation,
	"type":         colPropertyType,
	"area":         colTotalArea,
}

var requiredColumns = []string{colID, colLocation, colPrice, colTotalArea}

// ctxCheckInterval is how many rows are read between context checks.
const ctxCheckInterval = 1024

// LoadOptions tune catalog construction.
type LoadOptions struct {
	// Images attaches image references to records by property id.
	Images map[int64][]property.ImageRef
}

// LoadFile loads a catalog from the CSV file at path.
func LoadFile(ctx context.Context, path string, opts LoadOptions) (*Catalog, property.LoadSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, property.LoadSummary{Source: path}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Load(ctx, f, path, opts)
}

// Load reads a catalog from CSV data.
//
// The first row must be a header naming at least id, location, price and
// total_area. Rows that cannot be turned into a valid record are skipped
// and counted in the returned summary by reason; they never abort the load.
// A header without the required columns, an I/O failure or a canceled
// context does.
func Load(ctx context.Context, r io.Reader, source string, opts LoadOptions) (*Catalog, property.LoadSummary, error) {
	summary := property.LoadSummary{Source: source}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headerRow, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, summary, fmt.Errorf("catalog %s: missing header row", source)
	}
	if err != nil {
		return nil, summary, fmt.Errorf("catalog %s: read header: %w", source, err)
	}
	cols, err := parseHeader(headerRow)
	if err != nil {
		return nil, summary, fmt.Errorf("catalog %s: %w", source, err)
	}

	var records []*property.Record
	seen := make(map[int64]struct{})

	for {
		if summary.RowsRead%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, summary, err
			}
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				summary.RowsRead++
				summary.RecordSkip(property.SkipParse)
				continue
			}
			return nil, summary, fmt.Errorf("catalog %s: %w", source, err)
		}
		summary.RowsRead++

		rec, reason := cols.record(row)
		if reason != "" {
			summary.RecordSkip(reason)
			continue
		}
		if _, dup := seen[rec.ID]; dup {
			summary.RecordSkip(property.SkipDuplicateID)
			continue
		}
		seen[rec.ID] = struct{}{}

		if imgs := opts.Images[rec.ID]; len(imgs) > 0 {
			rec.Images = append([]property.ImageRef(nil), imgs...)
		}
		records = append(records, rec)
	}

	summary.Loaded = len(records)
	return build(records, summary), summary, nil
}

// columns maps canonical column names to their index in a row.
type columns struct {
	index map[string]int
	width int
}

func parseHeader(row []string) (columns, error) {
	cols := columns{index: make(map[string]int, len(row)), width: len(row)}
	for i, name := range row {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if alias, ok := headerAliases[name]; ok {
			name = alias
		}
		if _, dup := cols.index[name]; !dup {
			cols.index[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols.index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("header missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// cell returns the trimmed value of a column, or "" if the column is absent.
func (c columns) cell(row []string, name string) string {
	i, ok := c.index[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// record converts a row, returning the skip reason when it is unusable.
func (c columns) record(row []string) (*property.Record, string) {
	if len(row) != c.width {
		return nil, property.SkipParse
	}

	for _, name := range requiredColumns {
		if c.cell(row, name) == "" {
			return nil, property.SkipMissingField
		}
	}

	id, err := strconv.ParseInt(c.cell(row, colID), 10, 64)
	if err != nil {
		return nil, property.SkipParse
	}
	price, err := strconv.ParseFloat(c.cell(row, colPrice), 64)
	if err != nil {
		return nil, property.SkipParse
	}
	area, err := strconv.ParseFloat(c.cell(row, colTotalArea), 64)
	if err != nil {
		return nil, property.SkipParse
	}
	bedrooms, err := parseCount(c.cell(row, colBedrooms))
	if err != nil {
		return nil, property.SkipParse
	}
	bathrooms, err := parseCount(c.cell(row, colBathrooms))
	if err != nil {
		return nil, property.SkipParse
	}
	balcony, err := parseFlag(c.cell(row, colHasBalcony))
	if err != nil {
		return nil, property.SkipParse
	}
	featured, err := parseFlag(c.cell(row, colIsFeatured))
	if err != nil {
		return nil, property.SkipParse
	}

	rec := &property.Record{
		ID:           id,
		Title:        c.cell(row, colTitle),
		Location:     c.cell(row, colLocation),
		City:         c.cell(row, colCity),
		State:        c.cell(row, colState),
		PropertyType: c.cell(row, colPropertyType),
		Price:        price,
		TotalArea:    area,
		Bedrooms:     bedrooms,
		Bathrooms:    bathrooms,
		HasBalcony:   balcony,
		IsFeatured:   featured,
	}
	if checkValues(rec) != "" {
		return nil, property.SkipInvalidValue
	}
	return rec, ""
}

// parseCount parses an optional room count. Integral floats such as "3.0"
// are accepted; an empty cell yields nil.
func parseCount(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return nil, fmt.Errorf("invalid count %q", s)
	}
	n := int(f)
	return &n, nil
}

// parseFlag parses an optional boolean; an empty cell is false.
func parseFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "0", "false", "no", "n", "f":
		return false, nil
	case "1", "true", "yes", "y", "t":
		return true, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
