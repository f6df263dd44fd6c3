// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"database/sql"
	"strings"

	"github.com/causewayhq/causeway/internal/store"
)

// MediaIndex builds an id lookup for a batch of media rows.
func MediaIndex(items []store.Media) map[int64]store.Media {
	idx := make(map[int64]store.Media, len(items))
	for _, m := range items {
		idx[m.ID] = m
	}
	return idx
}

// ImageURL resolves a storage path to a public URL. Absolute URLs pass
// through untouched; relative paths are joined to the media base URL.
// A blank path resolves to a blank URL, never to the bare base.
func ImageURL(baseURL, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// MediaURL resolves an optional media reference against an index. A missing
// or dangling reference yields "", which views render as "no image".
func MediaURL(baseURL string, ref sql.NullInt64, idx map[int64]store.Media) string {
	if !ref.Valid {
		return ""
	}
	m, ok := idx[ref.Int64]
	if !ok {
		return ""
	}
	if m.FileUrl != "" {
		return ImageURL(baseURL, m.FileUrl)
	}
	return ImageURL(baseURL, m.FilePath)
}

// MediaRefs collects the valid media ids from a set of optional references,
// deduplicated, for a single batch lookup.
func MediaRefs(refs ...sql.NullInt64) []int64 {
	seen := make(map[int64]struct{}, len(refs))
	var ids []int64
	for _, r := range refs {
		if !r.Valid {
			continue
		}
		if _, ok := seen[r.Int64]; ok {
			continue
		}
		seen[r.Int64] = struct{}{}
		ids = append(ids, r.Int64)
	}
	return ids
}
