// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for the Causeway server.
package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const siteKeyContextKey contextKey = "site_key"

// Site injects the deployment's site key into every request context. All
// content reads downstream are scoped by this value.
func Site(siteKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), siteKeyContextKey, siteKey)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SiteKey returns the site key from the request context, or "" when the
// Site middleware is not installed.
func SiteKey(r *http.Request) string {
	if v, ok := r.Context().Value(siteKeyContextKey).(string); ok {
		return v
	}
	return ""
}
