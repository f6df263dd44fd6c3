// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import "strings"

// DistinctCategories returns the distinct non-blank categories in first-seen
// order. Blank and whitespace-only values are dropped, never rendered as an
// empty filter chip.
func DistinctCategories(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
