// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"

	"github.com/causewayhq/causeway/internal/version"
)

// Health reports liveness and the build version.
func Health(info version.Info) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSONSuccess(w, map[string]any{
			"status":  "ok",
			"version": info.Version,
		})
	}
}

// Ready reports readiness: the database must answer a ping.
func Ready(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeJSONError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		writeJSONSuccess(w, map[string]any{"status": "ready"})
	}
}
