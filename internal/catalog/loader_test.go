// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/estimo/internal/property"
)

const sampleCSV = `id,title,location,city,state,price,total_area,bedrooms,baths,has_balcony,property_type,is_featured
1,Corner house,DHA,Lahore,Punjab,9000000,2000,4,3,true,House,yes
2,Sea view flat,Clifton,Karachi,Sindh,7500000,1800,3,2,false,Flat,no
3,Family home,Gulberg,Lahore,Punjab,5000000,1100,,2,1,House,
4,Bad price,Gulberg,Lahore,Punjab,abc,1100,3,2,false,House,no
5,No location,,Lahore,Punjab,5000000,1100,3,2,false,House,no
6,Negative area,DHA,Lahore,Punjab,5000000,-1,3,2,false,House,no
1,Duplicate,DHA,Lahore,Punjab,1,1,1,1,false,House,no
7,Short row,DHA
8,Bad flag,DHA,Lahore,Punjab,5000000,1100,3,2,maybe,House,no
9,Villa,Bahria Town,Lahore,Punjab,15000000,3500,5.0,4,true,Villa,true
`

func TestLoad_SkipsAndCounts(t *testing.T) {
	t.Parallel()

	c, summary, err := Load(context.Background(), strings.NewReader(sampleCSV), "sample.csv", LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got, want := ids(c.All()), []int64{1, 2, 3, 9}; !equalIDs(got, want) {
		t.Errorf("loaded ids = %v, want %v", got, want)
	}
	if summary.RowsRead != 10 {
		t.Errorf("RowsRead = %d, want 10", summary.RowsRead)
	}
	if summary.Loaded != 4 {
		t.Errorf("Loaded = %d, want 4", summary.Loaded)
	}
	if summary.Skipped != 6 {
		t.Errorf("Skipped = %d, want 6", summary.Skipped)
	}

	wantReasons := map[string]int{
		property.SkipParse:        3, // abc price, short row, bad flag
		property.SkipMissingField: 1,
		property.SkipInvalidValue: 1,
		property.SkipDuplicateID:  1,
	}
	if !reflect.DeepEqual(summary.SkippedByReason, wantReasons) {
		t.Errorf("SkippedByReason = %v, want %v", summary.SkippedByReason, wantReasons)
	}
	if summary.Warning() == nil {
		t.Error("expected a partial load warning")
	}
	if c.Summary().Skipped != 6 {
		t.Errorf("Catalog.Summary().Skipped = %d, want 6", c.Summary().Skipped)
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	t.Parallel()

	c, _, err := Load(context.Background(), strings.NewReader(sampleCSV), "sample.csv", LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	r, err := c.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if r.Title != "Corner house" || r.State != "Punjab" || !r.HasBalcony || !r.IsFeatured {
		t.Errorf("record 1 = %+v", r)
	}
	if r.BedroomCount() != 4 || r.BathroomCount() != 3 {
		t.Errorf("rooms = %d/%d, want 4/3", r.BedroomCount(), r.BathroomCount())
	}

	r3, _ := c.Get(3)
	if r3.Bedrooms != nil {
		t.Errorf("record 3 bedrooms = %v, want nil for an empty cell", *r3.Bedrooms)
	}
	if !r3.HasBalcony {
		t.Error("record 3 has_balcony: want true for 1")
	}

	r9, _ := c.Get(9)
	if r9.BedroomCount() != 5 {
		t.Errorf("record 9 bedrooms = %d, want 5 from 5.0", r9.BedroomCount())
	}
}

func TestLoad_Deterministic(t *testing.T) {
	t.Parallel()

	c1, s1, err := Load(context.Background(), strings.NewReader(sampleCSV), "sample.csv", LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	c2, s2, err := Load(context.Background(), strings.NewReader(sampleCSV), "sample.csv", LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("summaries differ: %+v vs %+v", s1, s2)
	}
	if len(c1.All()) != len(c2.All()) {
		t.Fatalf("record counts differ")
	}
	for i := range c1.All() {
		if !reflect.DeepEqual(*c1.All()[i], *c2.All()[i]) {
			t.Errorf("record %d differs between loads", i)
		}
	}
}

func TestLoad_HeaderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"missing price", "id,location,total_area\n1,DHA,100\n"},
		{"missing id and area", "location,price\nDHA,100\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, _, err := Load(context.Background(), strings.NewReader(tt.data), "bad.csv", LoadOptions{}); err == nil {
				t.Error("Load() error = nil, want an error")
			}
		})
	}
}

func TestLoad_HeaderAliases(t *testing.T) {
	t.Parallel()

	data := "ID, Neighborhood ,Price,Area,Beds,Baths,Type\n10,Gulberg,4500000,900,2,1,Flat\n"
	c, summary, err := Load(context.Background(), strings.NewReader(data), "alias.csv", LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if summary.Skipped != 0 {
		t.Fatalf("Skipped = %d, want 0", summary.Skipped)
	}
	r, err := c.Get(10)
	if err != nil {
		t.Fatal(err)
	}
	if r.Location != "Gulberg" || r.TotalArea != 900 || r.BedroomCount() != 2 || r.BathroomCount() != 1 || r.PropertyType != "Flat" {
		t.Errorf("record = %+v", r)
	}
}

func TestLoad_AttachesImages(t *testing.T) {
	t.Parallel()

	images := map[int64][]property.ImageRef{
		2: {{ID: 11, URL: "https://img.example/2a.jpg"}, {ID: 12, URL: "https://img.example/2b.jpg"}},
		42: {{ID: 99, URL: "https://img.example/orphan.jpg"}},
	}
	c, _, err := Load(context.Background(), strings.NewReader(sampleCSV), "sample.csv", LoadOptions{Images: images})
	if err != nil {
		t.Fatal(err)
	}

	r, _ := c.Get(2)
	if len(r.Images) != 2 || r.Images[0].ID != 11 {
		t.Errorf("record 2 images = %+v", r.Images)
	}
	r1, _ := c.Get(1)
	if len(r1.Images) != 0 {
		t.Errorf("record 1 images = %+v, want none", r1.Images)
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Load(ctx, strings.NewReader(sampleCSV), "sample.csv", LoadOptions{}); err == nil {
		t.Error("Load() error = nil, want context error")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatal(err)
	}

	c, summary, err := LoadFile(context.Background(), path, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if c.Len() != 4 || summary.Source != path {
		t.Errorf("Len() = %d, Source = %q", c.Len(), summary.Source)
	}

	if _, _, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), LoadOptions{}); err == nil {
		t.Error("LoadFile() on a missing file: error = nil")
	}
}
