// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package property

// Skip reasons recorded in LoadSummary.SkippedByReason.
const (
	SkipParse        = "parse"
	SkipMissingField = "missing_field"
	SkipInvalidValue = "invalid_value"
	SkipDuplicateID  = "duplicate_id"
)

// LoadSummary is the observable outcome of a catalog load.
type LoadSummary struct {
	Source          string         `json:"source"`
	RowsRead        int            `json:"rows_read"`
	Loaded          int            `json:"loaded"`
	Skipped         int            `json:"skipped"`
	SkippedByReason map[string]int `json:"skipped_by_reason,omitempty"`
}

// RecordSkip counts one dropped row under reason.
func (s *LoadSummary) RecordSkip(reason string) {
	if s.SkippedByReason == nil {
		s.SkippedByReason = make(map[string]int)
	}
	s.SkippedByReason[reason]++
	s.Skipped++
}

// Warning returns a PartialLoadWarning when rows were skipped, or nil.
func (s LoadSummary) Warning() *PartialLoadWarning {
	if s.Skipped == 0 {
		return nil
	}
	byReason := make(map[string]int, len(s.SkippedByReason))
	for k, v := range s.SkippedByReason {
		byReason[k] = v
	}
	return &PartialLoadWarning{Source: s.Source, Skipped: s.Skipped, ByReason: byReason}
}
