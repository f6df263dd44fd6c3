// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/causewayhq/causeway/internal/store"
)

func TestNewCampaignView(t *testing.T) {
	c := store.Campaign{
		Slug:             "wells",
		Title:            "Clean Water Wells",
		ShortDescription: "Bore wells for two hamlets.",
		BannerImagePath:  "uploads/wells.jpg",
		GoalAmount:       valid(500000),
		RaisedAmount:     valid(125000),
		IsActive:         1,
	}

	v := NewCampaignView(base, "INR", c)

	if v.Percent != 25 {
		t.Errorf("Percent = %v, want 25", v.Percent)
	}
	if v.ProgressLabel != "₹1,25,000 of ₹5,00,000" {
		t.Errorf("ProgressLabel = %q", v.ProgressLabel)
	}
	if !v.IsActive {
		t.Error("IsActive = false")
	}
	if v.BannerImageURL != base+"/uploads/wells.jpg" {
		t.Errorf("BannerImageURL = %q", v.BannerImageURL)
	}
}

func TestNewPostViewTags(t *testing.T) {
	media := map[int64]store.Media{}

	p := store.BlogPost{Slug: "a", Tags: `["news","impact"]`}
	v := NewPostView(base, p, media)
	if len(v.Tags) != 2 || v.Tags[0] != "news" {
		t.Errorf("Tags = %v", v.Tags)
	}

	// Malformed tag JSON degrades to an empty list, never nil.
	p.Tags = `{bad`
	v = NewPostView(base, p, media)
	if v.Tags == nil || len(v.Tags) != 0 {
		t.Errorf("malformed Tags = %#v, want empty slice", v.Tags)
	}

	p.Tags = `null`
	v = NewPostView(base, p, media)
	if v.Tags == nil {
		t.Error("null Tags decoded to nil slice")
	}
}

func TestNewProgramViewNullDates(t *testing.T) {
	p := store.Program{Slug: "edu", IsOngoing: 1}
	v := NewProgramView(base, p, nil)
	if v.StartDate != nil || v.EndDate != nil {
		t.Error("null dates should map to nil pointers")
	}
	if !v.IsOngoing {
		t.Error("IsOngoing = false")
	}
}

func TestRenderBody(t *testing.T) {
	html := RenderBody("## Heading\n\nSome *emphasis*.")
	if !strings.Contains(html, "<h2") || !strings.Contains(html, "<em>") {
		t.Errorf("markdown not rendered: %q", html)
	}

	html = RenderBody(`Hello <script>alert(1)</script> world`)
	if strings.Contains(html, "<script>") {
		t.Errorf("script tag survived sanitization: %q", html)
	}
	if !strings.Contains(html, "Hello") {
		t.Errorf("content lost in sanitization: %q", html)
	}
}

func TestNewReportViewFileURL(t *testing.T) {
	idx := MediaIndex([]store.Media{{ID: 5, FilePath: "reports/2025.pdf"}})
	r := store.Report{
		Title:  "Annual Report 2025",
		FileID: sql.NullInt64{Int64: 5, Valid: true},
		Year:   sql.NullInt64{Int64: 2025, Valid: true},
	}
	v := NewReportView(base, r, idx)
	if v.FileURL != base+"/reports/2025.pdf" {
		t.Errorf("FileURL = %q", v.FileURL)
	}
	if v.Year == nil || *v.Year != 2025 {
		t.Errorf("Year = %v", v.Year)
	}
}
