// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"database/sql"
	"testing"
)

func TestNullFloat64Value(t *testing.T) {
	if got := NullFloat64Value(sql.NullFloat64{Float64: 2.5, Valid: true}); got != 2.5 {
		t.Errorf("got %v, want 2.5", got)
	}
	if got := NullFloat64Value(sql.NullFloat64{}); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}
