// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/causewayhq/causeway/internal/util"
)

// Default site values used when the configured site has no row yet.
const (
	DefaultSiteName    = "Causeway Foundation"
	DefaultSiteTagline = "Building pathways out of poverty"
)

// Seed ensures the configured site row exists. Content editing happens in
// back-office tooling, so the public binary only guarantees the tenant row
// the resolver needs on every request.
func Seed(ctx context.Context, db *sql.DB, siteKey, paymentHandle, payeeName, currency string) error {
	queries := New(db)

	_, err := queries.GetSiteByKey(ctx, siteKey)
	if err == nil {
		slog.Info("site already exists, skipping seed", "site", siteKey)
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for site: %w", err)
	}

	_, err = db.ExecContext(ctx, `
INSERT INTO sites (site_key, name, tagline, payment_handle, payment_payee_name, currency)
VALUES (?, ?, ?, ?, ?, ?)`,
		siteKey, DefaultSiteName, DefaultSiteTagline, paymentHandle, payeeName, currency)
	if err != nil {
		return fmt.Errorf("creating site: %w", err)
	}

	slog.Info("created default site", "site", siteKey)
	return nil
}

// SeedDemo creates demo content for showcasing a freshly provisioned site.
// Runs only when CAUSEWAY_DO_SEED=true; a site that already has campaigns
// is left untouched. All demo rows land in one transaction so a failed seed
// leaves no partial content behind.
func SeedDemo(ctx context.Context, db *sql.DB, siteKey string, enabled bool) error {
	if !enabled {
		return nil
	}

	queries := New(db)
	existing, err := queries.ListCampaigns(ctx, siteKey)
	if err != nil {
		return fmt.Errorf("checking for demo content: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("demo content already exists, skipping", "site", siteKey)
		return nil
	}

	slog.Info("seeding demo content", "site", siteKey)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting demo seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	q := queries.WithTx(tx)

	if err := seedDemoHero(ctx, tx, siteKey); err != nil {
		return fmt.Errorf("seeding demo hero: %w", err)
	}
	if err := seedDemoCampaigns(ctx, tx, siteKey); err != nil {
		return fmt.Errorf("seeding demo campaigns: %w", err)
	}
	if err := seedDemoPrograms(ctx, tx, siteKey); err != nil {
		return fmt.Errorf("seeding demo programs: %w", err)
	}
	if err := seedDemoEvents(ctx, tx, siteKey); err != nil {
		return fmt.Errorf("seeding demo events: %w", err)
	}
	if err := seedDemoAbout(ctx, tx, q, siteKey); err != nil {
		return fmt.Errorf("seeding demo about content: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing demo seed: %w", err)
	}
	slog.Info("demo content seeded successfully", "site", siteKey)
	return nil
}

func seedDemoHero(ctx context.Context, db DBTX, siteKey string) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO hero_sections (site, title, subtitle, cta_label, cta_url, is_visible)
VALUES (?, 'Every child deserves a chance', 'Join us in transforming rural communities', 'Get Involved', '/get-involved', 1)`,
		siteKey)
	return err
}

func seedDemoCampaigns(ctx context.Context, db DBTX, siteKey string) error {
	campaigns := []struct {
		title, short string
		goal, raised float64
		active       int64
	}{
		{"School Library Fund", "Books and reading rooms for three village schools.", 200000, 85000, 1},
		{"Clean Water Wells", "Bore wells for two drought-affected hamlets.", 500000, 500000, 0},
	}
	for _, c := range campaigns {
		_, err := db.ExecContext(ctx, `
INSERT INTO campaigns (site, slug, title, short_description, long_description, goal_amount, raised_amount, is_active)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			siteKey, util.Slugify(c.title), c.title, c.short,
			"## About this campaign\n\n"+c.short, c.goal, c.raised, c.active)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedDemoPrograms(ctx context.Context, db DBTX, siteKey string) error {
	programs := []struct {
		title, desc, category, status string
		featured, order               int64
	}{
		{"Education Support", "After-school tutoring and scholarships for first-generation learners.", "Education", StatusPublished, 1, 1},
		{"Rural Health Camps", "Monthly medical camps with partner hospitals.", "Health", StatusPublished, 1, 2},
		{"Women's Livelihood", "Tailoring and micro-enterprise training for self-help groups.", "Livelihood", StatusPublished, 0, 3},
		{"Digital Literacy", "Computer classes planned for the next school year.", "Education", StatusDraft, 0, 4},
		{"Flood Relief 2019", "Emergency relief drive, wound down after the waters receded.", "Relief", StatusArchived, 0, 5},
	}
	for _, p := range programs {
		_, err := db.ExecContext(ctx, `
INSERT INTO programs (site, slug, title, description, content, category, status, is_featured, order_index, is_ongoing)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
			siteKey, util.Slugify(p.title), p.title, p.desc,
			"## "+p.title+"\n\n"+p.desc, p.category, p.status, p.featured, p.order)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedDemoEvents(ctx context.Context, db DBTX, siteKey string) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO events (site, slug, title, description, start_date, location, is_active)
VALUES (?, ?, 'Annual Charity Run', 'A 5K run to raise funds for the school library.', datetime('now', '+30 days'), 'City Sports Ground', 1)`,
		siteKey, util.Slugify("Annual Charity Run"))
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO events (site, slug, title, description, start_date, location, is_active)
VALUES (?, ?, 'Volunteer Orientation', 'Introduction session for new volunteers.', datetime('now', '-14 days'), 'Community Hall', 1)`,
		siteKey, util.Slugify("Volunteer Orientation"))
	return err
}

func seedDemoAbout(ctx context.Context, db DBTX, q *Queries, siteKey string) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO timeline_items (site, year, title, description, order_index, is_visible)
VALUES (?, '2015', 'Founded', 'Started with a single after-school class of twelve children.', 1, 1),
       (?, '2020', 'First health camp', 'Partnered with the district hospital for monthly camps.', 2, 1)`,
		siteKey, siteKey)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO impact_stats (site, label, value, order_index, is_visible)
VALUES (?, 'Children supported', '1200+', 1, 1),
       (?, 'Villages reached', '18', 2, 1)`,
		siteKey, siteKey)
	if err != nil {
		return err
	}

	photoID, err := q.CreateMedia(ctx, CreateMediaParams{
		FileName: "anita-rao.jpg",
		FilePath: "team/anita-rao.jpg",
		MimeType: "image/jpeg",
		AltText:  "Anita Rao, founder",
	})
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO team_members (site, name, role, bio, photo_id, order_index, is_visible)
VALUES (?, 'Anita Rao', 'Founder', 'Former schoolteacher who started the first tutoring class.', ?, 1, 1)`,
		siteKey, photoID)
	return err
}
