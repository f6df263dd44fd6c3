// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"time"
)

// Pages caches assembled page payloads as serialized JSON. Keys combine the
// site key and the request route so tenants never see each other's pages.
type Pages struct {
	cache Cache
	ttl   time.Duration
}

// NewPages wraps a Cache for page payloads.
func NewPages(c Cache, ttl time.Duration) *Pages {
	return &Pages{cache: c, ttl: ttl}
}

func pageKey(site, route string) string {
	return "page:" + site + ":" + route
}

// Get returns the cached payload for a route, or found=false on a miss.
// Backend failures count as misses; the caller rebuilds the page.
func (p *Pages) Get(ctx context.Context, site, route string) ([]byte, bool) {
	val, err := p.cache.Get(ctx, pageKey(site, route))
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores a payload for a route. Errors are dropped: caching is an
// optimization, not a dependency.
func (p *Pages) Set(ctx context.Context, site, route string, payload []byte) {
	_ = p.cache.Set(ctx, pageKey(site, route), payload, p.ttl)
}

// Invalidate drops one route for a site.
func (p *Pages) Invalidate(ctx context.Context, site, route string) {
	_ = p.cache.Delete(ctx, pageKey(site, route))
}
