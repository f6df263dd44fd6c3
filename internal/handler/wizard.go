// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/causewayhq/causeway/internal/middleware"
	"github.com/causewayhq/causeway/internal/session"
	"github.com/causewayhq/causeway/internal/store"
	"github.com/causewayhq/causeway/internal/wizard"
)

// wizardState reads the visitor's current state from the session,
// normalizing anything stale.
func (h *Handler) wizardState(r *http.Request) wizard.State {
	return wizard.Normalize(wizard.State(h.sessions.GetString(r.Context(), session.WizardStateKey)))
}

// paymentFor resolves the payment settings for a request. Values on the
// tenant's site row override the configured fallbacks.
func (h *Handler) paymentFor(r *http.Request) Payment {
	p := h.payment
	site, err := h.queries.GetSiteByKey(r.Context(), middleware.SiteKey(r))
	if err != nil {
		return p
	}
	if site.PaymentHandle != "" {
		p.Handle = site.PaymentHandle
	}
	if site.PaymentPayeeName != "" {
		p.Payee = site.PaymentPayeeName
	}
	if site.Currency != "" {
		p.Currency = site.Currency
	}
	return p
}

func (h *Handler) setWizardState(r *http.Request, s wizard.State) {
	h.sessions.Put(r.Context(), session.WizardStateKey, string(s))
}

// advance applies an action to the stored state. On an illegal transition it
// writes a 409 and reports false, leaving the stored state untouched.
func (h *Handler) advance(w http.ResponseWriter, r *http.Request, action wizard.Action) (wizard.State, bool) {
	next, err := wizard.Transition(h.wizardState(r), action)
	if err != nil {
		writeJSONError(w, http.StatusConflict, "That step is not available right now")
		return "", false
	}
	h.setWizardState(r, next)
	return next, true
}

// WizardState serves GET /get-involved.
func (h *Handler) WizardState(w http.ResponseWriter, r *http.Request) {
	writeJSONSuccess(w, map[string]any{"state": h.wizardState(r)})
}

// WizardChoose serves POST /get-involved/choose.
func (h *Handler) WizardChoose(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Path string `json:"path" validate:"required,oneof=volunteer donate partner general"`
	}
	if !decodeForm(h, w, r, &body) {
		return
	}
	next, ok := h.advance(w, r, wizard.Action{Kind: wizard.ActionChoose, Path: wizard.Path(body.Path)})
	if !ok {
		return
	}
	writeJSONSuccess(w, map[string]any{"state": next})
}

// WizardBack serves POST /get-involved/back.
func (h *Handler) WizardBack(w http.ResponseWriter, r *http.Request) {
	next, ok := h.advance(w, r, wizard.Action{Kind: wizard.ActionBack})
	if !ok {
		return
	}
	writeJSONSuccess(w, map[string]any{"state": next})
}

// WizardReset serves POST /get-involved/reset. Reset only moves the wizard
// back to the start; lead rows already written stay written.
func (h *Handler) WizardReset(w http.ResponseWriter, r *http.Request) {
	next, _ := wizard.Transition(h.wizardState(r), wizard.Action{Kind: wizard.ActionReset})
	h.setWizardState(r, next)
	writeJSONSuccess(w, map[string]any{"state": next})
}

// VolunteerForm is the payload for the volunteer step.
type VolunteerForm struct {
	Name         string `json:"name" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email,max=254"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
	Skills       string `json:"skills" validate:"omitempty,max=1000"`
	Availability string `json:"availability" validate:"omitempty,max=200"`
	Message      string `json:"message" validate:"omitempty,max=5000"`
}

// WizardVolunteer serves POST /get-involved/volunteer.
func (h *Handler) WizardVolunteer(w http.ResponseWriter, r *http.Request) {
	if h.wizardState(r) != wizard.StateVolunteerForm {
		writeJSONError(w, http.StatusConflict, "That step is not available right now")
		return
	}
	var form VolunteerForm
	if !decodeForm(h, w, r, &form) {
		return
	}

	id := uuid.NewString()
	err := h.queries.CreateVolunteerApplication(r.Context(), store.CreateVolunteerApplicationParams{
		ID:           id,
		Site:         middleware.SiteKey(r),
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		Skills:       form.Skills,
		Availability: form.Availability,
		Message:      form.Message,
	})
	if err != nil {
		h.logger.Error("volunteer application insert failed", "category", "lead", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Could not save your application")
		return
	}

	next, ok := h.advance(w, r, wizard.Action{Kind: wizard.ActionSubmissionCreated})
	if !ok {
		return
	}
	h.logger.Info("volunteer application created", "id", id)
	writeJSONSuccessStatus(w, http.StatusCreated, map[string]any{"id": id, "state": next})
}

// InterestForm is the payload for the partner and general steps.
type InterestForm struct {
	Name         string `json:"name" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email,max=254"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
	Organization string `json:"organization" validate:"omitempty,max=200"`
	Message      string `json:"message" validate:"required,max=5000"`
}

// WizardPartner serves POST /get-involved/partner.
func (h *Handler) WizardPartner(w http.ResponseWriter, r *http.Request) {
	h.submitInterest(w, r, wizard.StatePartnerForm, "partner")
}

// WizardGeneral serves POST /get-involved/general.
func (h *Handler) WizardGeneral(w http.ResponseWriter, r *http.Request) {
	h.submitInterest(w, r, wizard.StateGeneralForm, "general")
}

func (h *Handler) submitInterest(w http.ResponseWriter, r *http.Request, required wizard.State, leadType string) {
	if h.wizardState(r) != required {
		writeJSONError(w, http.StatusConflict, "That step is not available right now")
		return
	}
	var form InterestForm
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
		Type:    leadType,
		Subject: form.Organization,
	})
	if err != nil {
		h.logger.Error("interest submission insert failed", "category", "lead", "type", leadType, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Could not save your message")
		return
	}

	next, ok := h.advance(w, r, wizard.Action{Kind: wizard.ActionSubmissionCreated})
	if !ok {
		return
	}
	h.logger.Info("interest submission created", "id", id, "type", leadType)
	writeJSONSuccessStatus(w, http.StatusCreated, map[string]any{"id": id, "state": next})
}

// DonateForm is the payload for the donation step. Amount arrives as a
// string so junk input fails cleanly instead of json-decoding to zero.
type DonateForm struct {
	Name   string `json:"name" validate:"required,max=200"`
	Email  string `json:"email" validate:"required,email,max=254"`
	Phone  string `json:"phone" validate:"omitempty,max=32"`
	Amount string `json:"amount" validate:"required,max=12"`
	Notes  string `json:"notes" validate:"omitempty,max=1000"`
}

// WizardDonate serves POST /get-involved/donate. Invalid amounts are
// rejected before any row is written.
func (h *Handler) WizardDonate(w http.ResponseWriter, r *http.Request) {
	if h.wizardState(r) != wizard.StateDonateForm {
		writeJSONError(w, http.StatusConflict, "That step is not available right now")
		return
	}
	var form DonateForm
	if !decodeForm(h, w, r, &form) {
		return
	}

	amount, err := wizard.ParseAmount(form.Amount)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, "Enter an amount greater than zero")
		return
	}

	payment := h.paymentFor(r)
	id := uuid.NewString()
	err = h.queries.CreateDonation(r.Context(), store.CreateDonationParams{
		ID:         id,
		Site:       middleware.SiteKey(r),
		DonorName:  form.Name,
		DonorEmail: form.Email,
		DonorPhone: form.Phone,
		Amount:     amount,
		Currency:   payment.Currency,
		Notes:      form.Notes,
	})
	if err != nil {
		h.logger.Error("donation insert failed", "category", "lead", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Could not record your pledge")
		return
	}

	next, ok := h.advance(w, r, wizard.Action{Kind: wizard.ActionPledgeCreated})
	if !ok {
		return
	}

	h.logger.Info("donation pledge created", "id", id, "amount", amount)
	writeJSONSuccessStatus(w, http.StatusCreated, map[string]any{
		"id":          id,
		"state":       next,
		"amount":      amount,
		"currency":    payment.Currency,
		"payment_uri": wizard.PaymentURI(payment.Handle, payment.Payee, amount, payment.Currency),
		"qr_url":      "/get-involved/qr/" + id + ".png",
	})
}

// WizardQR serves GET /get-involved/qr/{id}.png with a scannable QR code of
// the pledge's payment deep link.
func (h *Handler) WizardQR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeJSONError(w, http.StatusNotFound, "Pledge not found")
		return
	}

	d, err := h.queries.GetDonationByID(r.Context(), id)
	if err != nil || d.Site != middleware.SiteKey(r) {
		writeJSONError(w, http.StatusNotFound, "Pledge not found")
		return
	}

	payment := h.paymentFor(r)
	uri := wizard.PaymentURI(payment.Handle, payment.Payee, d.Amount, d.Currency)
	png, err := qrcode.Encode(uri, qrcode.Medium, 256)
	if err != nil {
		h.logger.Error("qr encoding failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	_, _ = w.Write(png)
}
