// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causewayhq/causeway/internal/assembler"
	"github.com/causewayhq/causeway/internal/cache"
	"github.com/causewayhq/causeway/internal/middleware"
	"github.com/causewayhq/causeway/internal/session"
	"github.com/causewayhq/causeway/internal/store"
	"github.com/causewayhq/causeway/internal/testutil"
	"github.com/causewayhq/causeway/internal/version"
)

func newTestServer(t *testing.T) (*httptest.Server, *sql.DB, func()) {
	t.Helper()

	db, dbCleanup := testutil.TestDB(t)
	queries := store.New(db)
	logger := testutil.TestLogger()

	asm := assembler.New(queries, "http://localhost:8080/media", logger)
	mem := cache.NewMemoryCache(time.Minute)
	pages := cache.NewPages(mem, time.Minute)
	sessions := session.New(db, true)

	h := New(queries, asm, pages, sessions, Payment{
		Handle:   "causeway@upi",
		Payee:    "Causeway Foundation",
		Currency: "INR",
	}, logger)

	r := chi.NewRouter()
	r.Use(middleware.Site(testutil.TestSite))
	r.Mount("/", h.Routes(db, version.Info{Version: "test"}, nil))

	srv := httptest.NewServer(r)
	return srv, db, func() {
		srv.Close()
		_ = mem.Close()
		dbCleanup()
	}
}

// wizardClient carries the session cookie across wizard steps.
func wizardClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHomeEndpoint(t *testing.T) {
	srv, _, cleanup := newTestServer(t)
	defer cleanup()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	body := decodeBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	site, ok := body["site"].(map[string]any)
	require.True(t, ok, "site block missing: %v", body)
	assert.Equal(t, "Causeway Foundation", site["name"])
}

func TestCampaignDetailNotFound(t *testing.T) {
	srv, _, cleanup := newTestServer(t)
	defer cleanup()

	resp, err := http.Get(srv.URL + "/campaigns/no-such-campaign")
	require.NoError(t, err)
	body := decodeBody(t, resp)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestCampaignDetailInvalidSlug(t *testing.T) {
	srv, _, cleanup := newTestServer(t)
	defer cleanup()

	resp, err := http.Get(srv.URL + "/campaigns/Bad%20Slug")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPagePayloadCached(t *testing.T) {
	srv, db, cleanup := newTestServer(t)
	defer cleanup()

	resp, err := http.Get(srv.URL + "/campaigns")
	require.NoError(t, err)
	first := decodeBody(t, resp)
	require.NotNil(t, first["empty_state"], "expected empty state with no campaigns")

	// New content does not appear until the cached payload expires.
	_, err = db.Exec(`
INSERT INTO campaigns (site, slug, title, short_description, long_description, is_active)
VALUES (?, 'new', 'New', 's', 'l', 1)`, testutil.TestSite)
	require.NoError(t, err)

	resp, err = http.Get(srv.URL + "/campaigns")
	require.NoError(t, err)
	second := decodeBody(t, resp)
	assert.NotNil(t, second["empty_state"], "cached payload should still be served")
}

func TestContactFormValidation(t *testing.T) {
	srv, db, cleanup := newTestServer(t)
	defer cleanup()
	client := &http.Client{}

	resp := postJSON(t, client, srv.URL+"/api/contact", map[string]string{
		"name":    "Ravi",
		"email":   "not-an-email",
		"message": "Hello",
	})
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM contact_submissions`).Scan(&n))
	assert.Equal(t, 0, n, "invalid form must not write a row")

	resp = postJSON(t, client, srv.URL+"/api/contact", map[string]string{
		"name":    "Ravi",
		"email":   "ravi@example.com",
		"message": "Hello",
	})
	body = decodeBody(t, resp)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, body["id"])

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM contact_submissions`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestWizardDonationFlow(t *testing.T) {
	srv, db, cleanup := newTestServer(t)
	defer cleanup()
	client := wizardClient(t)

	// Fresh session starts at choosing.
	resp, err := client.Get(srv.URL + "/get-involved")
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, "choosing", body["state"])

	resp = postJSON(t, client, srv.URL+"/get-involved/choose", map[string]string{"path": "donate"})
	body = decodeBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "donate_form", body["state"])

	// A junk amount is rejected before any row is written.
	for _, bad := range []string{"0", "-5", "abc", ""} {
		resp = postJSON(t, client, srv.URL+"/get-involved/donate", map[string]string{
			"name": "Asha", "email": "asha@example.com", "amount": bad,
		})
		resp.Body.Close()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "amount %q", bad)
	}
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM donations`).Scan(&n))
	require.Equal(t, 0, n, "rejected amounts must not write pledges")

	// State is untouched by the rejections.
	resp, err = client.Get(srv.URL + "/get-involved")
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Equal(t, "donate_form", body["state"])

	resp = postJSON(t, client, srv.URL+"/get-involved/donate", map[string]string{
		"name": "Asha", "email": "asha@example.com", "amount": "500",
	})
	body = decodeBody(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "payment_instructions", body["state"])
	uri, _ := body["payment_uri"].(string)
	assert.True(t, strings.HasPrefix(uri, "upi://pay?"), "payment_uri = %q", uri)
	assert.Contains(t, uri, "am=500")
	assert.Contains(t, uri, "cu=INR")
	require.NotEmpty(t, body["id"])

	// The QR endpoint serves a PNG for the pledge.
	resp, err = client.Get(srv.URL + "/get-involved/qr/" + body["id"].(string) + ".png")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM donations WHERE payment_status = 'pending'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestWizardVolunteerFlow(t *testing.T) {
	srv, db, cleanup := newTestServer(t)
	defer cleanup()
	client := wizardClient(t)

	resp := postJSON(t, client, srv.URL+"/get-involved/choose", map[string]string{"path": "volunteer"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, client, srv.URL+"/get-involved/volunteer", map[string]string{
		"name": "Meera", "email": "meera@example.com", "skills": "teaching",
	})
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "submission_acknowledged", body["state"])

	// Terminal state: back is refused, reset returns to the start.
	resp = postJSON(t, client, srv.URL+"/get-involved/back", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = postJSON(t, client, srv.URL+"/get-involved/reset", nil)
	body = decodeBody(t, resp)
	assert.Equal(t, "choosing", body["state"])

	// Reset never deletes the lead.
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM volunteer_applications`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestWizardSubmitInWrongState(t *testing.T) {
	srv, db, cleanup := newTestServer(t)
	defer cleanup()
	client := wizardClient(t)

	// Fresh session is in choosing; a direct volunteer POST is refused.
	resp := postJSON(t, client, srv.URL+"/get-involved/volunteer", map[string]string{
		"name": "Meera", "email": "meera@example.com",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM volunteer_applications`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestWizardQRUnknownPledge(t *testing.T) {
	srv, _, cleanup := newTestServer(t)
	defer cleanup()
	client := wizardClient(t)

	resp, err := client.Get(srv.URL + "/get-involved/qr/11111111-2222-3333-4444-555555555555.png")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = client.Get(srv.URL + "/get-involved/qr/not-a-uuid.png")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	srv, _, cleanup := newTestServer(t)
	defer cleanup()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])

	resp, err = http.Get(srv.URL + "/health/ready")
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", body["status"])
}
