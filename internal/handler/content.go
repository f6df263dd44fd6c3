// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/causewayhq/causeway/internal/assembler"
	"github.com/causewayhq/causeway/internal/middleware"
	"github.com/causewayhq/causeway/internal/util"
)

// servePage runs a page build through the payload cache and writes the
// result. Detail pages pass a route that includes the slug.
func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, route string, build func(ctx context.Context, site string) (any, error)) {
	site := middleware.SiteKey(r)
	ctx := r.Context()

	if payload, ok := h.pages.Get(ctx, site, route); ok {
		writeJSONPayload(w, payload)
		return
	}

	page, err := build(ctx, site)
	if err != nil {
		if errors.Is(err, assembler.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "Page not found")
			return
		}
		h.logger.Error("page assembly failed", "route", route, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	payload, err := json.Marshal(page)
	if err != nil {
		h.logger.Error("page encoding failed", "route", route, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	h.pages.Set(ctx, site, route, payload)
	writeJSONPayload(w, payload)
}

// slugParam extracts and validates the slug route parameter. Invalid slugs
// are indistinguishable from missing records.
func slugParam(r *http.Request) (string, bool) {
	slug := chi.URLParam(r, "slug")
	return slug, util.IsValidSlug(slug)
}

// Home serves GET /.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "/", func(ctx context.Context, site string) (any, error) {
		return h.assembler.HomePage(ctx, site)
	})
}

// Campaigns serves GET /campaigns.
func (h *Handler) Campaigns(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "/campaigns", func(ctx context.Context, site string) (any, error) {
		return h.assembler.CampaignsPage(ctx, site)
	})
}

// Campaign serves GET /campaigns/{slug}.
func (h *Handler) Campaign(w http.ResponseWriter, r *http.Request) {
	slug, ok := slugParam(r)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Page not found")
		return
	}
	h.servePage(w, r, "/campaigns/"+slug, func(ctx context.Context, site string) (any, error) {
		return h.assembler.CampaignPage(ctx, site, slug)
	})
}

// Programs serves GET /programs.
func (h *Handler) Programs(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "/programs", func(ctx context.Context, site string) (any, error) {
		return h.assembler.ProgramsPage(ctx, site)
	})
}

// Program serves GET /programs/{slug}.
func (h *Handler) Program(w http.ResponseWriter, r *http.Request) {
	slug, ok := slugParam(r)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Page not found")
		return
	}
	h.servePage(w, r, "/programs/"+slug, func(ctx context.Context, site string) (any, error) {
		return h.assembler.ProgramPage(ctx, site, slug)
	})
}

// Events serves GET /events.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "/events", func(ctx context.Context, site string) (any, error) {
		return h.assembler.EventsPage(ctx, site)
	})
}

// Event serves GET /events/{slug}.
func (h *Handler) Event(w http.ResponseWriter, r *http.Request) {
	slug, ok := slugParam(r)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Page not found")
		return
	}
	h.servePage(w, r, "/events/"+slug, func(ctx context.Context, site string) (any, error) {
		return h.assembler.EventPage(ctx, site, slug)
	})
}

// Blog serves GET /blog.
func (h *Handler) Blog(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "/blog", func(ctx context.Context, site string) (any, error) {
		return h.assembler.BlogPage(ctx, site)
	})
}

// BlogPost serves GET /blog/{slug}.
func (h *Handler) BlogPost(w http.ResponseWriter, r *http.Request) {
	slug, ok := slugParam(r)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Page not found")
		return
	}
	h.servePage(w, r, "/blog/"+slug, func(ctx context.Context, site string) (any, error) {
		return h.assembler.BlogPostPage(ctx, site, slug)
	})
}

// About serves GET /about.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "/about", func(ctx context.Context, site string) (any, error) {
		return h.assembler.AboutPage(ctx, site)
	})
}

// Impact serves GET /impact.
func (h *Handler) Impact(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "/impact", func(ctx context.Context, site string) (any, error) {
		return h.assembler.ImpactPage(ctx, site)
	})
}

// Partners serves GET /partners.
func (h *Handler) Partners(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "/partners", func(ctx context.Context, site string) (any, error) {
		return h.assembler.PartnersPage(ctx, site)
	})
}

// Gallery serves GET /gallery.
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "/gallery", func(ctx context.Context, site string) (any, error) {
		return h.assembler.GalleryPage(ctx, site)
	})
}

// Contact serves GET /contact.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "/contact", func(ctx context.Context, site string) (any, error) {
		return h.assembler.ContactPage(ctx, site)
	})
}
