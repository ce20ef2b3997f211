// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package valuation

import (
	"fmt"

	"github.com/tomtom215/estimo/internal/property"
)

// Vocabulary maps categorical values to one-hot slots.
//
// Slots follow the order in which categories were supplied. Slot Len() is
// the fallback ("other") slot: every unseen or empty value maps there, so
// lookup never fails. A Vocabulary is immutable after construction.
type Vocabulary struct {
	name       string
	categories []string
	slots      map[string]int
}

// NewVocabulary builds a vocabulary for the named field. Categories are
// compared case-insensitively; blank or duplicate entries are rejected.
func NewVocabulary(name string, categories []string) (*Vocabulary, error) {
	v := &Vocabulary{
		name:       name,
		categories: make([]string, 0, len(categories)),
		slots:      make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		key := property.FoldKey(c)
		if key == "" {
			return nil, fmt.Errorf("vocabulary %s: blank category", name)
		}
		if _, dup := v.slots[key]; dup {
			return nil, fmt.Errorf("vocabulary %s: duplicate category %q", name, c)
		}
		v.slots[key] = len(v.categories)
		v.categories = append(v.categories, c)
	}
	return v, nil
}

// Name returns the field the vocabulary encodes.
func (v *Vocabulary) Name() string { return v.name }

// Len returns the number of known categories.
func (v *Vocabulary) Len() int { return len(v.categories) }

// Width returns the number of one-hot slots, including the fallback slot.
func (v *Vocabulary) Width() int { return len(v.categories) + 1 }

// FallbackSlot returns the slot used for unseen values.
func (v *Vocabulary) FallbackSlot() int { return len(v.categories) }

// Lookup returns the slot for value and whether the value was known.
func (v *Vocabulary) Lookup(value string) (slot int, known bool) {
	if s, ok := v.slots[property.FoldKey(value)]; ok {
		return s, true
	}
	return v.FallbackSlot(), false
}

// Categories returns a copy of the known categories in slot order.
func (v *Vocabulary) Categories() []string {
	out := make([]string, len(v.categories))
	copy(out, v.categories)
	return out
}
