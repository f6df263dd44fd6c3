// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package assembler builds complete page payloads from store rows. Each page
// method gathers its sections, resolves media references in one batch, and
// returns a view struct ready for JSON encoding.
//
// Failure policy: the tenant row and the record a detail page is about are
// primary, and their absence or failure is an error. Every other section is
// secondary: a failed read logs a warning and renders empty so one broken
// section never takes down the page.
package assembler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/causewayhq/causeway/internal/resolver"
	"github.com/causewayhq/causeway/internal/store"
)

// ErrNotFound reports that the record a detail page is about does not exist
// or is not publicly visible. Handlers map it to a 404.
var ErrNotFound = errors.New("page not found")

// EmptyState is rendered in place of an empty primary collection. The CTA
// always routes to the get-involved wizard.
type EmptyState struct {
	Message  string `json:"message"`
	CTALabel string `json:"cta_label"`
	CTAURL   string `json:"cta_url"`
}

func emptyState(message string) *EmptyState {
	return &EmptyState{
		Message:  message,
		CTALabel: "Get Involved",
		CTAURL:   "/get-involved",
	}
}

// Assembler builds page payloads for one deployment.
type Assembler struct {
	queries *store.Queries
	baseURL string
	logger  *slog.Logger
	now     func() time.Time
}

// New creates an Assembler. baseURL is the public media base used to resolve
// storage paths.
func New(queries *store.Queries, baseURL string, logger *slog.Logger) *Assembler {
	return &Assembler{
		queries: queries,
		baseURL: baseURL,
		logger:  logger,
		now:     time.Now,
	}
}

// site loads the tenant row. Its absence is a deployment fault, not a 404.
func (a *Assembler) site(ctx context.Context, siteKey string) (store.Site, error) {
	s, err := a.queries.GetSiteByKey(ctx, siteKey)
	if err != nil {
		return store.Site{}, fmt.Errorf("loading site %q: %w", siteKey, err)
	}
	return s, nil
}

// section runs fn and degrades to the zero value on failure.
func section[T any](a *Assembler, name string, out *T, fn func() (T, error)) func() error {
	return func() error {
		v, err := fn()
		if err != nil {
			a.logger.Warn("page section unavailable", "section", name, "error", err)
			var zero T
			*out = zero
			return nil
		}
		*out = v
		return nil
	}
}

// media resolves a batch of optional media references into an index.
// A lookup failure degrades to an empty index: pages render without images
// rather than failing.
func (a *Assembler) media(ctx context.Context, refs ...sql.NullInt64) map[int64]store.Media {
	ids := resolver.MediaRefs(refs...)
	if len(ids) == 0 {
		return map[int64]store.Media{}
	}
	rows, err := a.queries.GetMediaByIDs(ctx, ids)
	if err != nil {
		a.logger.Warn("media lookup failed", "count", len(ids), "error", err)
		return map[int64]store.Media{}
	}
	return resolver.MediaIndex(rows)
}

// notFoundOr maps sql.ErrNoRows to ErrNotFound and wraps anything else.
func notFoundOr(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("loading %s: %w", what, err)
}

// gather runs the given section loaders concurrently. Section loaders never
// return errors, so this is pure fan-out.
func gather(ctx context.Context, fns ...func() error) {
	g, _ := errgroup.WithContext(ctx)
	for _, fn := range fns {
		g.Go(fn)
	}
	_ = g.Wait()
}
