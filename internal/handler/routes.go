// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/causewayhq/causeway/internal/version"
)

// Routes mounts all public routes. submitLimit wraps the endpoints that
// write lead rows; pass nil to disable rate limiting (tests).
func (h *Handler) Routes(db *sql.DB, info version.Info, submitLimit func(http.Handler) http.Handler) chi.Router {
	if submitLimit == nil {
		submitLimit = func(next http.Handler) http.Handler { return next }
	}

	r := chi.NewRouter()

	r.Get("/", h.Home)
	r.Get("/campaigns", h.Campaigns)
	r.Get("/campaigns/{slug}", h.Campaign)
	r.Get("/programs", h.Programs)
	r.Get("/programs/{slug}", h.Program)
	r.Get("/events", h.Events)
	r.Get("/events/{slug}", h.Event)
	r.Get("/blog", h.Blog)
	r.Get("/blog/{slug}", h.BlogPost)
	r.Get("/about", h.About)
	r.Get("/partners", h.Partners)
	r.Get("/impact", h.Impact)
	r.Get("/gallery", h.Gallery)
	r.Get("/contact", h.Contact)

	r.Get("/health", Health(info))
	r.Get("/health/live", Health(info))
	r.Get("/health/ready", Ready(db))

	r.Route("/get-involved", func(r chi.Router) {
		r.Use(h.sessions.LoadAndSave)
		r.Get("/", h.WizardState)
		r.Post("/choose", h.WizardChoose)
		r.Post("/back", h.WizardBack)
		r.Post("/reset", h.WizardReset)
		r.Get("/qr/{id}.png", h.WizardQR)

		r.Group(func(r chi.Router) {
			r.Use(submitLimit)
			r.Post("/volunteer", h.WizardVolunteer)
			r.Post("/partner", h.WizardPartner)
			r.Post("/general", h.WizardGeneral)
			r.Post("/donate", h.WizardDonate)
		})
	})

	r.With(submitLimit).Post("/api/contact", h.SubmitContact)

	return r
}
