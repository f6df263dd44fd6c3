// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package assembler

import (
	"context"
	"database/sql"
	"errors"

	"github.com/causewayhq/causeway/internal/resolver"
	"github.com/causewayhq/causeway/internal/store"
)

const (
	homeFeaturedPrograms = 3
	homeRecentPosts      = 3
	homeUpcomingEvents   = 3
)

// HomePage is the landing page payload.
type HomePage struct {
	Site             resolver.SiteView          `json:"site"`
	Hero             *resolver.HeroView         `json:"hero,omitempty"`
	FeaturedPrograms []resolver.ProgramView     `json:"featured_programs"`
	ActiveCampaigns  []resolver.CampaignView    `json:"active_campaigns"`
	ImpactStats      []resolver.ImpactStatView  `json:"impact_stats"`
	Testimonials     []resolver.TestimonialView `json:"testimonials"`
	RecentPosts      []resolver.PostView        `json:"recent_posts"`
	UpcomingEvents   []resolver.EventView       `json:"upcoming_events"`
	EmptyState       *EmptyState                `json:"empty_state,omitempty"`
}

// HomePage assembles the landing page. Every section besides the tenant row
// is secondary.
func (a *Assembler) HomePage(ctx context.Context, siteKey string) (HomePage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return HomePage{}, err
	}
	now := a.now()

	var (
		hero      store.HeroSection
		heroOK    bool
		programs  []store.Program
		campaigns []store.Campaign
		stats     []store.ImpactStat
		quotes    []store.Testimonial
		posts     []store.BlogPost
		events    []store.Event
	)

	gather(ctx,
		func() error {
			h, err := a.queries.GetHeroSection(ctx, siteKey)
			if err != nil {
				if !errors.Is(err, sql.ErrNoRows) {
					a.logger.Warn("page section unavailable", "section", "hero", "error", err)
				}
				return nil
			}
			hero, heroOK = h, true
			return nil
		},
		section(a, "featured_programs", &programs, func() ([]store.Program, error) {
			return a.queries.ListFeaturedPrograms(ctx, store.ListFeaturedProgramsParams{
				Site: siteKey, Limit: homeFeaturedPrograms,
			})
		}),
		section(a, "campaigns", &campaigns, func() ([]store.Campaign, error) {
			return a.queries.ListCampaigns(ctx, siteKey)
		}),
		section(a, "impact_stats", &stats, func() ([]store.ImpactStat, error) {
			return a.queries.ListVisibleImpactStats(ctx, siteKey)
		}),
		section(a, "testimonials", &quotes, func() ([]store.Testimonial, error) {
			return a.queries.ListVisibleTestimonials(ctx, siteKey)
		}),
		section(a, "recent_posts", &posts, func() ([]store.BlogPost, error) {
			return a.queries.ListRecentPosts(ctx, store.ListRecentPostsParams{
				Site: siteKey, Now: now, Limit: homeRecentPosts,
			})
		}),
		section(a, "upcoming_events", &events, func() ([]store.Event, error) {
			return a.queries.ListActiveEvents(ctx, siteKey)
		}),
	)

	var refs []sql.NullInt64
	for _, p := range programs {
		refs = append(refs, p.FeaturedImageID)
	}
	for _, p := range posts {
		refs = append(refs, p.FeaturedImageID)
	}
	for _, t := range quotes {
		refs = append(refs, t.PhotoID)
	}
	media := a.media(ctx, refs...)

	page := HomePage{
		Site:             resolver.NewSiteView(a.baseURL, site),
		FeaturedPrograms: []resolver.ProgramView{},
		ActiveCampaigns:  []resolver.CampaignView{},
		ImpactStats:      []resolver.ImpactStatView{},
		Testimonials:     []resolver.TestimonialView{},
		RecentPosts:      []resolver.PostView{},
		UpcomingEvents:   []resolver.EventView{},
	}
	if heroOK {
		h := resolver.NewHeroView(a.baseURL, hero)
		page.Hero = &h
	}
	for _, p := range programs {
		page.FeaturedPrograms = append(page.FeaturedPrograms, resolver.NewProgramView(a.baseURL, p, media))
	}
	active, _ := resolver.PartitionCampaignsByActivity(campaigns)
	for _, c := range active {
		page.ActiveCampaigns = append(page.ActiveCampaigns, resolver.NewCampaignView(a.baseURL, site.Currency, c))
	}
	for _, s := range stats {
		page.ImpactStats = append(page.ImpactStats, resolver.NewImpactStatView(s))
	}
	for _, t := range quotes {
		page.Testimonials = append(page.Testimonials, resolver.NewTestimonialView(a.baseURL, t, media))
	}
	for _, p := range posts {
		page.RecentPosts = append(page.RecentPosts, resolver.NewPostView(a.baseURL, p, media))
	}
	upcoming, _ := resolver.PartitionEventsByTime(events, now)
	for i, e := range upcoming {
		if i == homeUpcomingEvents {
			break
		}
		page.UpcomingEvents = append(page.UpcomingEvents, resolver.NewEventView(e))
	}

	if page.Hero == nil && len(page.FeaturedPrograms) == 0 && len(page.ActiveCampaigns) == 0 &&
		len(page.ImpactStats) == 0 && len(page.Testimonials) == 0 &&
		len(page.RecentPosts) == 0 && len(page.UpcomingEvents) == 0 {
		page.EmptyState = emptyState("Content is on its way. Check back soon.")
	}

	return page, nil
}
