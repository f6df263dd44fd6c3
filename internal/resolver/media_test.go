// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"database/sql"
	"testing"

	"github.com/causewayhq/causeway/internal/store"
)

const base = "https://cdn.example.org/media"

func TestImageURL(t *testing.T) {
	tests := []struct {
		name, path, want string
	}{
		{"relative path", "uploads/a.jpg", base + "/uploads/a.jpg"},
		{"leading slash", "/uploads/a.jpg", base + "/uploads/a.jpg"},
		{"absolute passes through", "https://other.example.org/b.png", "https://other.example.org/b.png"},
		{"blank stays blank", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImageURL(base, tt.path); got != tt.want {
				t.Errorf("ImageURL(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestMediaURL(t *testing.T) {
	idx := MediaIndex([]store.Media{
		{ID: 1, FilePath: "uploads/a.jpg"},
		{ID: 2, FilePath: "uploads/b.jpg", FileUrl: "https://other.example.org/b.jpg"},
	})

	if got := MediaURL(base, sql.NullInt64{Int64: 1, Valid: true}, idx); got != base+"/uploads/a.jpg" {
		t.Errorf("path-backed media = %q", got)
	}
	// An explicit file URL wins over the storage path.
	if got := MediaURL(base, sql.NullInt64{Int64: 2, Valid: true}, idx); got != "https://other.example.org/b.jpg" {
		t.Errorf("url-backed media = %q", got)
	}
	if got := MediaURL(base, sql.NullInt64{}, idx); got != "" {
		t.Errorf("null ref = %q, want blank", got)
	}
	if got := MediaURL(base, sql.NullInt64{Int64: 99, Valid: true}, idx); got != "" {
		t.Errorf("dangling ref = %q, want blank", got)
	}
}

func TestMediaRefs(t *testing.T) {
	ids := MediaRefs(
		sql.NullInt64{Int64: 3, Valid: true},
		sql.NullInt64{},
		sql.NullInt64{Int64: 3, Valid: true},
		sql.NullInt64{Int64: 7, Valid: true},
	)
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 7 {
		t.Errorf("MediaRefs = %v, want [3 7]", ids)
	}
}
