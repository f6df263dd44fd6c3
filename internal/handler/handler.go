// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler implements the HTTP surface of the public site: content
// pages, the get-involved wizard, lead forms and health checks.
package handler

import (
	"log/slog"

	"github.com/alexedwards/scs/v2"
	"github.com/go-playground/validator/v10"

	"github.com/causewayhq/causeway/internal/assembler"
	"github.com/causewayhq/causeway/internal/cache"
	"github.com/causewayhq/causeway/internal/store"
)

// Payment holds the tenant payment settings used for pledges.
type Payment struct {
	Handle   string
	Payee    string
	Currency string
}

// Handler carries the shared dependencies of all HTTP handlers.
type Handler struct {
	queries   *store.Queries
	assembler *assembler.Assembler
	pages     *cache.Pages
	sessions  *scs.SessionManager
	validate  *validator.Validate
	payment   Payment
	logger    *slog.Logger
}

// New creates a Handler.
func New(
	queries *store.Queries,
	asm *assembler.Assembler,
	pages *cache.Pages,
	sessions *scs.SessionManager,
	payment Payment,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		queries:   queries,
		assembler: asm,
		pages:     pages,
		sessions:  sessions,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		payment:   payment,
		logger:    logger,
	}
}
