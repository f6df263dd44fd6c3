// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"reflect"
	"testing"
)

func TestDistinctCategories(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"dedup first-seen order with blanks",
			[]string{"Health", "", "Health", "Education"},
			[]string{"Health", "Education"},
		},
		{
			"whitespace-only dropped",
			[]string{"  ", "Livelihood", "\t"},
			[]string{"Livelihood"},
		},
		{"all blank", []string{"", " "}, nil},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistinctCategories(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DistinctCategories(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDistinctCategoriesIdempotent(t *testing.T) {
	in := []string{"Health", "Education", "Health"}
	once := DistinctCategories(in)
	twice := DistinctCategories(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed result: %v vs %v", once, twice)
	}
}
