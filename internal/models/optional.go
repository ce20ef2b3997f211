// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// OptionalFloat is a number that may be absent. It decodes from a JSON
// number, a numeric string, null or "" (the last two meaning absent).
type OptionalFloat struct {
	value float64
	set   bool
}

// FloatOf returns a present OptionalFloat.
func FloatOf(v float64) OptionalFloat { return OptionalFloat{value: v, set: true} }

// Get returns the value and whether it is present.
func (o OptionalFloat) Get() (float64, bool) { return o.value, o.set }

// Ptr returns nil when absent.
func (o OptionalFloat) Ptr() *float64 {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	*o = OptionalFloat{}
	raw, absent, err := scalarText(data)
	if err != nil || absent {
		return err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid number %q", raw)
	}
	*o = OptionalFloat{value: v, set: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// OptionalInt is an integer that may be absent. Integral numbers written
// with a fraction such as 3.0 are accepted.
type OptionalInt struct {
	value int
	set   bool
}

// IntOf returns a present OptionalInt.
func IntOf(v int) OptionalInt { return OptionalInt{value: v, set: true} }

// Get returns the value and whether it is present.
func (o OptionalInt) Get() (int, bool) { return o.value, o.set }

// Ptr returns nil when absent.
func (o OptionalInt) Ptr() *int {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	*o = OptionalInt{}
	raw, absent, err := scalarText(data)
	if err != nil || absent {
		return err
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*o = OptionalInt{value: n, set: true}
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("invalid integer %q", raw)
	}
	*o = OptionalInt{value: int(f), set: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// scalarText returns the text of a JSON number or string. null and blank
// strings report absent.
func scalarText(data []byte) (text string, absent bool, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", true, nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		s = strings.TrimSpace(s)
		return s, s == "", nil
	}
	switch data[0] {
	case '{', '[', 't', 'f':
		return "", false, fmt.Errorf("expected a number or string, got %s", data)
	}
	return string(data), false, nil
}
