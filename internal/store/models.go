// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"
)

// Content visibility statuses shared by programs, blog posts, case studies
// and reports.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Lead record statuses. Pledges stay pending until back-office tooling
// verifies payment out of band.
const (
	LeadStatusNew        = "new"
	PaymentStatusPending = "pending"
)

// Site is the tenant configuration record. One row per branded site sharing
// the schema.
type Site struct {
	ID               int64     `json:"id"`
	SiteKey          string    `json:"site_key"`
	Name             string    `json:"name"`
	Tagline          string    `json:"tagline"`
	LogoPath         string    `json:"logo_path"`
	ContactEmail     string    `json:"contact_email"`
	ContactPhone     string    `json:"contact_phone"`
	Address          string    `json:"address"`
	PaymentHandle    string    `json:"payment_handle"`
	PaymentPayeeName string    `json:"payment_payee_name"`
	Currency         string    `json:"currency"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HeroSection is the singleton-per-site hero configuration.
type HeroSection struct {
	ID        int64     `json:"id"`
	Site      string    `json:"site"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	CtaLabel  string    `json:"cta_label"`
	CtaUrl    string    `json:"cta_url"`
	ImagePath string    `json:"image_path"`
	IsVisible int64     `json:"is_visible"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Media is a row in the shared media table.
type Media struct {
	ID        int64     `json:"id"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	FileUrl   string    `json:"file_url"`
	MimeType  string    `json:"mime_type"`
	AltText   string    `json:"alt_text"`
	CreatedAt time.Time `json:"created_at"`
}

// Campaign is a fundraising campaign.
type Campaign struct {
	ID               int64           `json:"id"`
	Site             string          `json:"site"`
	Slug             string          `json:"slug"`
	Title            string          `json:"title"`
	ShortDescription string          `json:"short_description"`
	LongDescription  string          `json:"long_description"`
	BannerImagePath  string          `json:"banner_image_path"`
	GoalAmount       sql.NullFloat64 `json:"goal_amount"`
	RaisedAmount     sql.NullFloat64 `json:"raised_amount"`
	IsActive         int64           `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Program is a long-running program or project.
type Program struct {
	ID              int64         `json:"id"`
	Site            string        `json:"site"`
	Slug            string        `json:"slug"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Content         string        `json:"content"`
	Category        string        `json:"category"`
	FeaturedImageID sql.NullInt64 `json:"featured_image_id"`
	Status          string        `json:"status"`
	IsFeatured      int64         `json:"is_featured"`
	OrderIndex      int64         `json:"order_index"`
	StartDate       sql.NullTime  `json:"start_date"`
	EndDate         sql.NullTime  `json:"end_date"`
	IsOngoing       int64         `json:"is_ongoing"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Event is a scheduled community event.
type Event struct {
	ID              int64        `json:"id"`
	Site            string       `json:"site"`
	Slug            string       `json:"slug"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	StartDate       time.Time    `json:"start_date"`
	EndDate         sql.NullTime `json:"end_date"`
	Location        string       `json:"location"`
	MapUrl          string       `json:"map_url"`
	RegistrationUrl string       `json:"registration_url"`
	IsActive        int64        `json:"is_active"`
	IsFeatured      int64        `json:"is_featured"`
	CreatedAt       time.Time    `json:"created_at"`
}

// BlogPost is a blog article. Tags is a JSON-encoded string array.
type BlogPost struct {
	ID              int64         `json:"id"`
	Site            string        `json:"site"`
	Slug            string        `json:"slug"`
	Title           string        `json:"title"`
	Excerpt         string        `json:"excerpt"`
	Content         string        `json:"content"`
	FeaturedImageID sql.NullInt64 `json:"featured_image_id"`
	Tags            string        `json:"tags"`
	Category        string        `json:"category"`
	Status          string        `json:"status"`
	PublishedAt     sql.NullTime  `json:"published_at"`
	AuthorName      string        `json:"author_name"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// TeamMember is a display record for the about page.
type TeamMember struct {
	ID         int64         `json:"id"`
	Site       string        `json:"site"`
	Name       string        `json:"name"`
	Role       string        `json:"role"`
	Bio        string        `json:"bio"`
	PhotoID    sql.NullInt64 `json:"photo_id"`
	OrderIndex int64         `json:"order_index"`
	IsVisible  int64         `json:"is_visible"`
}

// Partner is a partner organization display record.
type Partner struct {
	ID          int64         `json:"id"`
	Site        string        `json:"site"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	LogoID      sql.NullInt64 `json:"logo_id"`
	WebsiteUrl  string        `json:"website_url"`
	Category    string        `json:"category"`
	OrderIndex  int64         `json:"order_index"`
	IsVisible   int64         `json:"is_visible"`
}

// Testimonial is a quote display record.
type Testimonial struct {
	ID         int64         `json:"id"`
	Site       string        `json:"site"`
	Author     string        `json:"author"`
	Role       string        `json:"role"`
	Quote      string        `json:"quote"`
	PhotoID    sql.NullInt64 `json:"photo_id"`
	OrderIndex int64         `json:"order_index"`
	IsVisible  int64         `json:"is_visible"`
}

// ImpactStat is an animated-counter display record.
type ImpactStat struct {
	ID         int64         `json:"id"`
	Site       string        `json:"site"`
	Label      string        `json:"label"`
	Value      string        `json:"value"`
	Icon       string        `json:"icon"`
	Year       sql.NullInt64 `json:"year"`
	Category   string        `json:"category"`
	OrderIndex int64         `json:"order_index"`
	IsVisible  int64         `json:"is_visible"`
}

// GalleryImage is a gallery display record with an inline storage path.
type GalleryImage struct {
	ID         int64  `json:"id"`
	Site       string `json:"site"`
	Title      string `json:"title"`
	ImagePath  string `json:"image_path"`
	Category   string `json:"category"`
	OrderIndex int64  `json:"order_index"`
	IsVisible  int64  `json:"is_visible"`
}

// TimelineItem is an organizational-history display record.
type TimelineItem struct {
	ID          int64  `json:"id"`
	Site        string `json:"site"`
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int64  `json:"order_index"`
	IsVisible   int64  `json:"is_visible"`
}

// CaseStudy is an impact-page case study.
type CaseStudy struct {
	ID              int64         `json:"id"`
	Site            string        `json:"site"`
	Slug            string        `json:"slug"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Content         string        `json:"content"`
	FeaturedImageID sql.NullInt64 `json:"featured_image_id"`
	Location        string        `json:"location"`
	Year            sql.NullInt64 `json:"year"`
	Status          string        `json:"status"`
	OrderIndex      int64         `json:"order_index"`
}

// Report is a downloadable annual/financial report.
type Report struct {
	ID          int64         `json:"id"`
	Site        string        `json:"site"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	FileID      sql.NullInt64 `json:"file_id"`
	Year        sql.NullInt64 `json:"year"`
	Category    string        `json:"category"`
	Status      string        `json:"status"`
	OrderIndex  int64         `json:"order_index"`
}

// ContactSubmission is a write-only lead record from the contact and
// get-involved forms.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Site      string    `json:"site"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// VolunteerApplication is a write-only lead record from the volunteer form.
type VolunteerApplication struct {
	ID           string    `json:"id"`
	Site         string    `json:"site"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Skills       string    `json:"skills"`
	Availability string    `json:"availability"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Donation is a pledge created by the donation wizard. Payment stays pending
// until a back-office process verifies it out of band.
type Donation struct {
	ID            string    `json:"id"`
	Site          string    `json:"site"`
	DonorName     string    `json:"donor_name"`
	DonorEmail    string    `json:"donor_email"`
	DonorPhone    string    `json:"donor_phone"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	PaymentStatus string    `json:"payment_status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// EventLogEntry is a row in the event_log table written by the logging handler.
type EventLogEntry struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}
