// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

// All content reads are scoped by site and by the public-visibility predicate
// for the entity. Ordering is fixed per entity: manual order_index ascending
// for curated records, the chronological column otherwise.

const getSiteByKey = `
SELECT id, site_key, name, tagline, logo_path, contact_email, contact_phone,
       address, payment_handle, payment_payee_name, currency, created_at, updated_at
FROM sites
WHERE site_key = ?`

// GetSiteByKey returns the tenant configuration row for the given site key.
func (q *Queries) GetSiteByKey(ctx context.Context, siteKey string) (Site, error) {
	row := q.db.QueryRowContext(ctx, getSiteByKey, siteKey)
	var s Site
	err := row.Scan(&s.ID, &s.SiteKey, &s.Name, &s.Tagline, &s.LogoPath,
		&s.ContactEmail, &s.ContactPhone, &s.Address, &s.PaymentHandle,
		&s.PaymentPayeeName, &s.Currency, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

const getHeroSection = `
SELECT id, site, title, subtitle, cta_label, cta_url, image_path, is_visible, updated_at
FROM hero_sections
WHERE site = ? AND is_visible = 1`

// GetHeroSection returns the visible hero for a site.
func (q *Queries) GetHeroSection(ctx context.Context, site string) (HeroSection, error) {
	row := q.db.QueryRowContext(ctx, getHeroSection, site)
	var h HeroSection
	err := row.Scan(&h.ID, &h.Site, &h.Title, &h.Subtitle, &h.CtaLabel,
		&h.CtaUrl, &h.ImagePath, &h.IsVisible, &h.UpdatedAt)
	return h, err
}

const listCampaigns = `
SELECT id, site, slug, title, short_description, long_description,
       banner_image_path, goal_amount, raised_amount, is_active, created_at
FROM campaigns
WHERE site = ?
ORDER BY created_at DESC`

// ListCampaigns returns all campaigns for a site, newest first. Activity
// partitioning happens in the resolver, not here: completed campaigns still
// render on the list page.
func (q *Queries) ListCampaigns(ctx context.Context, site string) ([]Campaign, error) {
	rows, err := q.db.QueryContext(ctx, listCampaigns, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Campaign
	for rows.Next() {
		var c Campaign
		if err := rows.Scan(&c.ID, &c.Site, &c.Slug, &c.Title, &c.ShortDescription,
			&c.LongDescription, &c.BannerImagePath, &c.GoalAmount, &c.RaisedAmount,
			&c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const getCampaignBySlug = `
SELECT id, site, slug, title, short_description, long_description,
       banner_image_path, goal_amount, raised_amount, is_active, created_at
FROM campaigns
WHERE site = ? AND slug = ?`

// GetCampaignBySlugParams holds parameters for GetCampaignBySlug.
type GetCampaignBySlugParams struct {
	Site string
	Slug string
}

// GetCampaignBySlug returns one campaign by slug.
func (q *Queries) GetCampaignBySlug(ctx context.Context, arg GetCampaignBySlugParams) (Campaign, error) {
	row := q.db.QueryRowContext(ctx, getCampaignBySlug, arg.Site, arg.Slug)
	var c Campaign
	err := row.Scan(&c.ID, &c.Site, &c.Slug, &c.Title, &c.ShortDescription,
		&c.LongDescription, &c.BannerImagePath, &c.GoalAmount, &c.RaisedAmount,
		&c.IsActive, &c.CreatedAt)
	return c, err
}

const listPublishedPrograms = `
SELECT id, site, slug, title, description, content, category, featured_image_id,
       status, is_featured, order_index, start_date, end_date, is_ongoing,
       created_at, updated_at
FROM programs
WHERE site = ? AND status = 'published'
ORDER BY order_index ASC, id ASC`

// ListPublishedPrograms returns published programs in manual order.
func (q *Queries) ListPublishedPrograms(ctx context.Context, site string) ([]Program, error) {
	rows, err := q.db.QueryContext(ctx, listPublishedPrograms, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPrograms(rows)
}

const listFeaturedPrograms = `
SELECT id, site, slug, title, description, content, category, featured_image_id,
       status, is_featured, order_index, start_date, end_date, is_ongoing,
       created_at, updated_at
FROM programs
WHERE site = ? AND status = 'published' AND is_featured = 1
ORDER BY order_index ASC, id ASC
LIMIT ?`

// ListFeaturedProgramsParams holds parameters for ListFeaturedPrograms.
type ListFeaturedProgramsParams struct {
	Site  string
	Limit int64
}

// ListFeaturedPrograms returns up to Limit featured published programs.
func (q *Queries) ListFeaturedPrograms(ctx context.Context, arg ListFeaturedProgramsParams) ([]Program, error) {
	rows, err := q.db.QueryContext(ctx, listFeaturedPrograms, arg.Site, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPrograms(rows)
}

const getPublishedProgramBySlug = `
SELECT id, site, slug, title, description, content, category, featured_image_id,
       status, is_featured, order_index, start_date, end_date, is_ongoing,
       created_at, updated_at
FROM programs
WHERE site = ? AND slug = ? AND status = 'published'`

// GetPublishedProgramBySlugParams holds parameters for GetPublishedProgramBySlug.
type GetPublishedProgramBySlugParams struct {
	Site string
	Slug string
}

// GetPublishedProgramBySlug returns one published program by slug. Drafts and
// archived programs are invisible here so the detail route cannot leak them.
func (q *Queries) GetPublishedProgramBySlug(ctx context.Context, arg GetPublishedProgramBySlugParams) (Program, error) {
	row := q.db.QueryRowContext(ctx, getPublishedProgramBySlug, arg.Site, arg.Slug)
	return scanProgramRow(row)
}

const listActiveEvents = `
SELECT id, site, slug, title, description, start_date, end_date, location,
       map_url, registration_url, is_active, is_featured, created_at
FROM events
WHERE site = ? AND is_active = 1
ORDER BY start_date ASC`

// ListActiveEvents returns active events in chronological order. This query
// is the only ordering authority; the temporal partition downstream must not
// re-sort.
func (q *Queries) ListActiveEvents(ctx context.Context, site string) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, listActiveEvents, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Site, &e.Slug, &e.Title, &e.Description,
			&e.StartDate, &e.EndDate, &e.Location, &e.MapUrl, &e.RegistrationUrl,
			&e.IsActive, &e.IsFeatured, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const getActiveEventBySlug = `
SELECT id, site, slug, title, description, start_date, end_date, location,
       map_url, registration_url, is_active, is_featured, created_at
FROM events
WHERE site = ? AND slug = ? AND is_active = 1`

// GetActiveEventBySlugParams holds parameters for GetActiveEventBySlug.
type GetActiveEventBySlugParams struct {
	Site string
	Slug string
}

// GetActiveEventBySlug returns one active event by slug.
func (q *Queries) GetActiveEventBySlug(ctx context.Context, arg GetActiveEventBySlugParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, getActiveEventBySlug, arg.Site, arg.Slug)
	var e Event
	err := row.Scan(&e.ID, &e.Site, &e.Slug, &e.Title, &e.Description,
		&e.StartDate, &e.EndDate, &e.Location, &e.MapUrl, &e.RegistrationUrl,
		&e.IsActive, &e.IsFeatured, &e.CreatedAt)
	return e, err
}

const listPublishedPosts = `
SELECT id, site, slug, title, excerpt, content, featured_image_id, tags,
       category, status, published_at, author_name, created_at, updated_at
FROM blog_posts
WHERE site = ? AND status = 'published'
  AND published_at IS NOT NULL AND published_at <= ?
ORDER BY published_at DESC`

// ListPublishedPostsParams holds parameters for ListPublishedPosts.
type ListPublishedPostsParams struct {
	Site string
	Now  time.Time
}

// ListPublishedPosts returns publicly visible blog posts, newest first.
// A post is visible only when published AND its publish timestamp has passed.
func (q *Queries) ListPublishedPosts(ctx context.Context, arg ListPublishedPostsParams) ([]BlogPost, error) {
	rows, err := q.db.QueryContext(ctx, listPublishedPosts, arg.Site, arg.Now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBlogPosts(rows)
}

const listRecentPosts = listPublishedPosts + `
LIMIT ?`

// ListRecentPostsParams holds parameters for ListRecentPosts.
type ListRecentPostsParams struct {
	Site  string
	Now   time.Time
	Limit int64
}

// ListRecentPosts returns up to Limit publicly visible posts for preview cards.
func (q *Queries) ListRecentPosts(ctx context.Context, arg ListRecentPostsParams) ([]BlogPost, error) {
	rows, err := q.db.QueryContext(ctx, listRecentPosts, arg.Site, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBlogPosts(rows)
}

const getPublishedPostBySlug = `
SELECT id, site, slug, title, excerpt, content, featured_image_id, tags,
       category, status, published_at, author_name, created_at, updated_at
FROM blog_posts
WHERE site = ? AND slug = ? AND status = 'published'
  AND published_at IS NOT NULL AND published_at <= ?`

// GetPublishedPostBySlugParams holds parameters for GetPublishedPostBySlug.
type GetPublishedPostBySlugParams struct {
	Site string
	Slug string
	Now  time.Time
}

// GetPublishedPostBySlug returns one publicly visible post by slug.
func (q *Queries) GetPublishedPostBySlug(ctx context.Context, arg GetPublishedPostBySlugParams) (BlogPost, error) {
	row := q.db.QueryRowContext(ctx, getPublishedPostBySlug, arg.Site, arg.Slug, arg.Now)
	var p BlogPost
	err := row.Scan(&p.ID, &p.Site, &p.Slug, &p.Title, &p.Excerpt, &p.Content,
		&p.FeaturedImageID, &p.Tags, &p.Category, &p.Status, &p.PublishedAt,
		&p.AuthorName, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const listVisibleTeamMembers = `
SELECT id, site, name, role, bio, photo_id, order_index, is_visible
FROM team_members
WHERE site = ? AND is_visible = 1
ORDER BY order_index ASC, id ASC`

// ListVisibleTeamMembers returns visible team members in manual order.
func (q *Queries) ListVisibleTeamMembers(ctx context.Context, site string) ([]TeamMember, error) {
	rows, err := q.db.QueryContext(ctx, listVisibleTeamMembers, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TeamMember
	for rows.Next() {
		var m TeamMember
		if err := rows.Scan(&m.ID, &m.Site, &m.Name, &m.Role, &m.Bio,
			&m.PhotoID, &m.OrderIndex, &m.IsVisible); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

const listVisiblePartners = `
SELECT id, site, name, description, logo_id, website_url, category, order_index, is_visible
FROM partners
WHERE site = ? AND is_visible = 1
ORDER BY order_index ASC, id ASC`

// ListVisiblePartners returns visible partners in manual order.
func (q *Queries) ListVisiblePartners(ctx context.Context, site string) ([]Partner, error) {
	rows, err := q.db.QueryContext(ctx, listVisiblePartners, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Partner
	for rows.Next() {
		var p Partner
		if err := rows.Scan(&p.ID, &p.Site, &p.Name, &p.Description, &p.LogoID,
			&p.WebsiteUrl, &p.Category, &p.OrderIndex, &p.IsVisible); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const listVisibleTestimonials = `
SELECT id, site, author, role, quote, photo_id, order_index, is_visible
FROM testimonials
WHERE site = ? AND is_visible = 1
ORDER BY order_index ASC, id ASC`

// ListVisibleTestimonials returns visible testimonials in manual order.
func (q *Queries) ListVisibleTestimonials(ctx context.Context, site string) ([]Testimonial, error) {
	rows, err := q.db.QueryContext(ctx, listVisibleTestimonials, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Testimonial
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.ID, &t.Site, &t.Author, &t.Role, &t.Quote,
			&t.PhotoID, &t.OrderIndex, &t.IsVisible); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const listVisibleImpactStats = `
SELECT id, site, label, value, icon, year, category, order_index, is_visible
FROM impact_stats
WHERE site = ? AND is_visible = 1
ORDER BY order_index ASC, id ASC`

// ListVisibleImpactStats returns visible impact stats in manual order.
func (q *Queries) ListVisibleImpactStats(ctx context.Context, site string) ([]ImpactStat, error) {
	rows, err := q.db.QueryContext(ctx, listVisibleImpactStats, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ImpactStat
	for rows.Next() {
		var s ImpactStat
		if err := rows.Scan(&s.ID, &s.Site, &s.Label, &s.Value, &s.Icon,
			&s.Year, &s.Category, &s.OrderIndex, &s.IsVisible); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const listVisibleGalleryImages = `
SELECT id, site, title, image_path, category, order_index, is_visible
FROM gallery_images
WHERE site = ? AND is_visible = 1
ORDER BY order_index ASC, id ASC`

// ListVisibleGalleryImages returns visible gallery images in manual order.
func (q *Queries) ListVisibleGalleryImages(ctx context.Context, site string) ([]GalleryImage, error) {
	rows, err := q.db.QueryContext(ctx, listVisibleGalleryImages, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GalleryImage
	for rows.Next() {
		var g GalleryImage
		if err := rows.Scan(&g.ID, &g.Site, &g.Title, &g.ImagePath,
			&g.Category, &g.OrderIndex, &g.IsVisible); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

const listVisibleTimelineItems = `
SELECT id, site, year, title, description, order_index, is_visible
FROM timeline_items
WHERE site = ? AND is_visible = 1
ORDER BY order_index ASC, id ASC`

// ListVisibleTimelineItems returns visible timeline items in manual order.
func (q *Queries) ListVisibleTimelineItems(ctx context.Context, site string) ([]TimelineItem, error) {
	rows, err := q.db.QueryContext(ctx, listVisibleTimelineItems, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TimelineItem
	for rows.Next() {
		var t TimelineItem
		if err := rows.Scan(&t.ID, &t.Site, &t.Year, &t.Title,
			&t.Description, &t.OrderIndex, &t.IsVisible); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const listPublishedCaseStudies = `
SELECT id, site, slug, title, description, content, featured_image_id,
       location, year, status, order_index
FROM case_studies
WHERE site = ? AND status = 'published'
ORDER BY order_index ASC, id ASC`

// ListPublishedCaseStudies returns published case studies in manual order.
func (q *Queries) ListPublishedCaseStudies(ctx context.Context, site string) ([]CaseStudy, error) {
	rows, err := q.db.QueryContext(ctx, listPublishedCaseStudies, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CaseStudy
	for rows.Next() {
		var c CaseStudy
		if err := rows.Scan(&c.ID, &c.Site, &c.Slug, &c.Title, &c.Description,
			&c.Content, &c.FeaturedImageID, &c.Location, &c.Year, &c.Status,
			&c.OrderIndex); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const listPublishedReports = `
SELECT id, site, title, description, file_id, year, category, status, order_index
FROM reports
WHERE site = ? AND status = 'published'
ORDER BY order_index ASC, id ASC`

// ListPublishedReports returns published reports in manual order.
func (q *Queries) ListPublishedReports(ctx context.Context, site string) ([]Report, error) {
	rows, err := q.db.QueryContext(ctx, listPublishedReports, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Report
	for rows.Next() {
		var r Report
		if err := rows.Scan(&r.ID, &r.Site, &r.Title, &r.Description, &r.FileID,
			&r.Year, &r.Category, &r.Status, &r.OrderIndex); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

func scanPrograms(rows *sql.Rows) ([]Program, error) {
	var items []Program
	for rows.Next() {
		var p Program
		if err := rows.Scan(&p.ID, &p.Site, &p.Slug, &p.Title, &p.Description,
			&p.Content, &p.Category, &p.FeaturedImageID, &p.Status, &p.IsFeatured,
			&p.OrderIndex, &p.StartDate, &p.EndDate, &p.IsOngoing,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func scanProgramRow(row *sql.Row) (Program, error) {
	var p Program
	err := row.Scan(&p.ID, &p.Site, &p.Slug, &p.Title, &p.Description,
		&p.Content, &p.Category, &p.FeaturedImageID, &p.Status, &p.IsFeatured,
		&p.OrderIndex, &p.StartDate, &p.EndDate, &p.IsOngoing,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanBlogPosts(rows *sql.Rows) ([]BlogPost, error) {
	var items []BlogPost
	for rows.Next() {
		var p BlogPost
		if err := rows.Scan(&p.ID, &p.Site, &p.Slug, &p.Title, &p.Excerpt,
			&p.Content, &p.FeaturedImageID, &p.Tags, &p.Category, &p.Status,
			&p.PublishedAt, &p.AuthorName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
