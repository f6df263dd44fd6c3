// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/causewayhq/causeway/internal/store"
)

// View types are the JSON shapes served to the public site. They carry real
// booleans and resolved URLs instead of the raw row encodings.

// SiteView is the tenant branding block included on every page.
type SiteView struct {
	Name         string `json:"name"`
	Tagline      string `json:"tagline"`
	LogoURL      string `json:"logo_url,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Address      string `json:"address,omitempty"`
}

// HeroView is the home page hero block.
type HeroView struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	CTALabel string `json:"cta_label,omitempty"`
	CTAURL   string `json:"cta_url,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// CampaignView is a campaign card.
type CampaignView struct {
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	BannerImageURL   string   `json:"banner_image_url,omitempty"`
	Progress         Progress `json:"progress"`
	Percent          float64  `json:"percent"`
	ProgressLabel    string   `json:"progress_label"`
	IsActive         bool     `json:"is_active"`
}

// CampaignDetailView is a campaign page.
type CampaignDetailView struct {
	CampaignView
	BodyHTML string `json:"body_html"`
}

// ProgramView is a program card.
type ProgramView struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	IsFeatured  bool       `json:"is_featured"`
	IsOngoing   bool       `json:"is_ongoing"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// ProgramDetailView is a program page.
type ProgramDetailView struct {
	ProgramView
	BodyHTML string `json:"body_html"`
}

// EventView is an event card or page.
type EventView struct {
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Location        string     `json:"location,omitempty"`
	MapURL          string     `json:"map_url,omitempty"`
	RegistrationURL string     `json:"registration_url,omitempty"`
	IsFeatured      bool       `json:"is_featured"`
}

// PostView is a blog card.
type PostView struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Category    string     `json:"category,omitempty"`
	Tags        []string   `json:"tags"`
	ImageURL    string     `json:"image_url,omitempty"`
	AuthorName  string     `json:"author_name,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// PostDetailView is a blog article page.
type PostDetailView struct {
	PostView
	BodyHTML string `json:"body_html"`
}

// TeamMemberView is an about page card.
type TeamMemberView struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// PartnerView is a partner logo card.
type PartnerView struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	WebsiteURL  string `json:"website_url,omitempty"`
	Category    string `json:"category,omitempty"`
}

// TestimonialView is a quote card.
type TestimonialView struct {
	Author   string `json:"author"`
	Role     string `json:"role,omitempty"`
	Quote    string `json:"quote"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// ImpactStatView is a counter card.
type ImpactStatView struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Icon     string `json:"icon,omitempty"`
	Year     *int64 `json:"year,omitempty"`
	Category string `json:"category,omitempty"`
}

// GalleryImageView is a gallery tile.
type GalleryImageView struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Category string `json:"category,omitempty"`
}

// TimelineItemView is a history milestone.
type TimelineItemView struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CaseStudyView is an impact page case study.
type CaseStudyView struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	BodyHTML    string `json:"body_html,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Location    string `json:"location,omitempty"`
	Year        *int64 `json:"year,omitempty"`
}

// ReportView is a downloadable report entry.
type ReportView struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"file_url,omitempty"`
	Year        *int64 `json:"year,omitempty"`
	Category    string `json:"category,omitempty"`
}

// NewSiteView builds the branding block from the tenant row.
func NewSiteView(baseURL string, s store.Site) SiteView {
	return SiteView{
		Name:         s.Name,
		Tagline:      s.Tagline,
		LogoURL:      ImageURL(baseURL, s.LogoPath),
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Address:      s.Address,
	}
}

// NewHeroView builds the hero block.
func NewHeroView(baseURL string, h store.HeroSection) HeroView {
	return HeroView{
		Title:    h.Title,
		Subtitle: h.Subtitle,
		CTALabel: h.CtaLabel,
		CTAURL:   h.CtaUrl,
		ImageURL: ImageURL(baseURL, h.ImagePath),
	}
}

// NewCampaignView builds a campaign card. The progress value computed here
// is the one every field derives from.
func NewCampaignView(baseURL, currency string, c store.Campaign) CampaignView {
	p := CampaignProgress(c)
	return CampaignView{
		Slug:             c.Slug,
		Title:            c.Title,
		ShortDescription: c.ShortDescription,
		BannerImageURL:   ImageURL(baseURL, c.BannerImagePath),
		Progress:         p,
		Percent:          p.Percent(),
		ProgressLabel:    p.Display(currency),
		IsActive:         c.IsActive != 0,
	}
}

// NewCampaignDetailView builds a campaign page with rendered body.
func NewCampaignDetailView(baseURL, currency string, c store.Campaign) CampaignDetailView {
	return CampaignDetailView{
		CampaignView: NewCampaignView(baseURL, currency, c),
		BodyHTML:     RenderBody(c.LongDescription),
	}
}

// NewProgramView builds a program card.
func NewProgramView(baseURL string, p store.Program, media map[int64]store.Media) ProgramView {
	return ProgramView{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		ImageURL:    MediaURL(baseURL, p.FeaturedImageID, media),
		IsFeatured:  p.IsFeatured != 0,
		IsOngoing:   p.IsOngoing != 0,
		StartDate:   nullTimePtr(p.StartDate),
		EndDate:     nullTimePtr(p.EndDate),
	}
}

// NewProgramDetailView builds a program page with rendered body.
func NewProgramDetailView(baseURL string, p store.Program, media map[int64]store.Media) ProgramDetailView {
	return ProgramDetailView{
		ProgramView: NewProgramView(baseURL, p, media),
		BodyHTML:    RenderBody(p.Content),
	}
}

// NewEventView builds an event card.
func NewEventView(e store.Event) EventView {
	return EventView{
		Slug:            e.Slug,
		Title:           e.Title,
		Description:     e.Description,
		StartDate:       e.StartDate,
		EndDate:         nullTimePtr(e.EndDate),
		Location:        e.Location,
		MapURL:          e.MapUrl,
		RegistrationURL: e.RegistrationUrl,
		IsFeatured:      e.IsFeatured != 0,
	}
}

// NewPostView builds a blog card. Tags stored as malformed JSON decode to an
// empty list rather than failing the page.
func NewPostView(baseURL string, p store.BlogPost, media map[int64]store.Media) PostView {
	var tags []string
	if err := json.Unmarshal([]byte(p.Tags), &tags); err != nil || tags == nil {
		tags = []string{}
	}
	return PostView{
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Category:    p.Category,
		Tags:        tags,
		ImageURL:    MediaURL(baseURL, p.FeaturedImageID, media),
		AuthorName:  p.AuthorName,
		PublishedAt: nullTimePtr(p.PublishedAt),
	}
}

// NewPostDetailView builds a blog article page with rendered body.
func NewPostDetailView(baseURL string, p store.BlogPost, media map[int64]store.Media) PostDetailView {
	return PostDetailView{
		PostView: NewPostView(baseURL, p, media),
		BodyHTML: RenderBody(p.Content),
	}
}

// NewTeamMemberView builds an about page card.
func NewTeamMemberView(baseURL string, m store.TeamMember, media map[int64]store.Media) TeamMemberView {
	return TeamMemberView{
		Name:     m.Name,
		Role:     m.Role,
		Bio:      m.Bio,
		PhotoURL: MediaURL(baseURL, m.PhotoID, media),
	}
}

// NewPartnerView builds a partner card.
func NewPartnerView(baseURL string, p store.Partner, media map[int64]store.Media) PartnerView {
	return PartnerView{
		Name:        p.Name,
		Description: p.Description,
		LogoURL:     MediaURL(baseURL, p.LogoID, media),
		WebsiteURL:  p.WebsiteUrl,
		Category:    p.Category,
	}
}

// NewTestimonialView builds a quote card.
func NewTestimonialView(baseURL string, t store.Testimonial, media map[int64]store.Media) TestimonialView {
	return TestimonialView{
		Author:   t.Author,
		Role:     t.Role,
		Quote:    t.Quote,
		PhotoURL: MediaURL(baseURL, t.PhotoID, media),
	}
}

// NewImpactStatView builds a counter card.
func NewImpactStatView(s store.ImpactStat) ImpactStatView {
	return ImpactStatView{
		Label:    s.Label,
		Value:    s.Value,
		Icon:     s.Icon,
		Year:     nullInt64Ptr(s.Year),
		Category: s.Category,
	}
}

// NewGalleryImageView builds a gallery tile.
func NewGalleryImageView(baseURL string, g store.GalleryImage) GalleryImageView {
	return GalleryImageView{
		Title:    g.Title,
		ImageURL: ImageURL(baseURL, g.ImagePath),
		Category: g.Category,
	}
}

// NewTimelineItemView builds a history milestone.
func NewTimelineItemView(t store.TimelineItem) TimelineItemView {
	return TimelineItemView{
		Year:        t.Year,
		Title:       t.Title,
		Description: t.Description,
	}
}

// NewCaseStudyView builds an impact case study with rendered body.
func NewCaseStudyView(baseURL string, c store.CaseStudy, media map[int64]store.Media) CaseStudyView {
	return CaseStudyView{
		Slug:        c.Slug,
		Title:       c.Title,
		Description: c.Description,
		BodyHTML:    RenderBody(c.Content),
		ImageURL:    MediaURL(baseURL, c.FeaturedImageID, media),
		Location:    c.Location,
		Year:        nullInt64Ptr(c.Year),
	}
}

// NewReportView builds a downloadable report entry.
func NewReportView(baseURL string, r store.Report, media map[int64]store.Media) ReportView {
	return ReportView{
		Title:       r.Title,
		Description: r.Description,
		FileURL:     MediaURL(baseURL, r.FileID, media),
		Year:        nullInt64Ptr(r.Year),
		Category:    r.Category,
	}
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullInt64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
