// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/causewayhq/causeway/internal/middleware"
	"github.com/causewayhq/causeway/internal/store"
)

const maxFormBody = 64 << 10 // 64 KiB

// ContactForm is the payload for the standalone contact form.
type ContactForm struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// decodeForm reads and validates a JSON form payload. The second return
// value is false when a response has already been written.
func decodeForm(h *Handler, w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeJSONError(w, http.StatusUnprocessableEntity, "Invalid value for "+verrs[0].Field())
			return false
		}
		writeJSONError(w, http.StatusUnprocessableEntity, "Invalid form data")
		return false
	}
	return true
}

// SubmitContact serves POST /api/contact.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var form ContactForm
	if !decodeForm(h, w, r, &form) {
		return
	}

	id := uuid.NewString()
	err := h.queries.CreateContactSubmission(r.Context(), store.CreateContactSubmissionParams{
		ID:      id,
		Site:    middleware.SiteKey(r),
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Message: form.Message,
		Type:    "contact",
		Subject: form.Subject,
	})
	if err != nil {
		h.logger.Error("contact submission insert failed", "category", "lead", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Could not save your message")
		return
	}

	h.logger.Info("contact submission created", "id", id)
	writeJSONSuccessStatus(w, http.StatusCreated, map[string]any{"id": id})
}
