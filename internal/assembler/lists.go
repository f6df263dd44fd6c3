// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package assembler

import (
	"context"
	"database/sql"

	"github.com/causewayhq/causeway/internal/resolver"
	"github.com/causewayhq/causeway/internal/store"
)

// CampaignsPage lists active and completed campaigns.
type CampaignsPage struct {
	Site       resolver.SiteView       `json:"site"`
	Active     []resolver.CampaignView `json:"active"`
	Completed  []resolver.CampaignView `json:"completed"`
	EmptyState *EmptyState             `json:"empty_state,omitempty"`
}

// CampaignsPage assembles the campaign listing. Completed campaigns stay on
// the page below the active ones.
func (a *Assembler) CampaignsPage(ctx context.Context, siteKey string) (CampaignsPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return CampaignsPage{}, err
	}

	var campaigns []store.Campaign
	gather(ctx, section(a, "campaigns", &campaigns, func() ([]store.Campaign, error) {
		return a.queries.ListCampaigns(ctx, siteKey)
	}))

	page := CampaignsPage{
		Site:      resolver.NewSiteView(a.baseURL, site),
		Active:    []resolver.CampaignView{},
		Completed: []resolver.CampaignView{},
	}
	active, completed := resolver.PartitionCampaignsByActivity(campaigns)
	for _, c := range active {
		page.Active = append(page.Active, resolver.NewCampaignView(a.baseURL, site.Currency, c))
	}
	for _, c := range completed {
		page.Completed = append(page.Completed, resolver.NewCampaignView(a.baseURL, site.Currency, c))
	}
	if len(campaigns) == 0 {
		page.EmptyState = emptyState("No campaigns are running right now.")
	}
	return page, nil
}

// ProgramsPage lists published programs with category filters.
type ProgramsPage struct {
	Site       resolver.SiteView      `json:"site"`
	Programs   []resolver.ProgramView `json:"programs"`
	Categories []string               `json:"categories"`
	EmptyState *EmptyState            `json:"empty_state,omitempty"`
}

// ProgramsPage assembles the program listing.
func (a *Assembler) ProgramsPage(ctx context.Context, siteKey string) (ProgramsPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return ProgramsPage{}, err
	}

	var programs []store.Program
	gather(ctx, section(a, "programs", &programs, func() ([]store.Program, error) {
		return a.queries.ListPublishedPrograms(ctx, siteKey)
	}))

	var refs []sql.NullInt64
	var categories []string
	for _, p := range programs {
		refs = append(refs, p.FeaturedImageID)
		categories = append(categories, p.Category)
	}
	media := a.media(ctx, refs...)

	page := ProgramsPage{
		Site:       resolver.NewSiteView(a.baseURL, site),
		Programs:   []resolver.ProgramView{},
		Categories: []string{},
	}
	for _, p := range programs {
		page.Programs = append(page.Programs, resolver.NewProgramView(a.baseURL, p, media))
	}
	if cats := resolver.DistinctCategories(categories); cats != nil {
		page.Categories = cats
	}
	if len(programs) == 0 {
		page.EmptyState = emptyState("Programs will be announced soon.")
	}
	return page, nil
}

// EventsPage lists active events split by time.
type EventsPage struct {
	Site       resolver.SiteView    `json:"site"`
	Upcoming   []resolver.EventView `json:"upcoming"`
	Past       []resolver.EventView `json:"past"`
	EmptyState *EmptyState          `json:"empty_state,omitempty"`
}

// EventsPage assembles the event listing. The store delivers events in
// chronological order and the partition keeps it.
func (a *Assembler) EventsPage(ctx context.Context, siteKey string) (EventsPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return EventsPage{}, err
	}

	var events []store.Event
	gather(ctx, section(a, "events", &events, func() ([]store.Event, error) {
		return a.queries.ListActiveEvents(ctx, siteKey)
	}))

	page := EventsPage{
		Site:     resolver.NewSiteView(a.baseURL, site),
		Upcoming: []resolver.EventView{},
		Past:     []resolver.EventView{},
	}
	upcoming, past := resolver.PartitionEventsByTime(events, a.now())
	for _, e := range upcoming {
		page.Upcoming = append(page.Upcoming, resolver.NewEventView(e))
	}
	for _, e := range past {
		page.Past = append(page.Past, resolver.NewEventView(e))
	}
	if len(events) == 0 {
		page.EmptyState = emptyState("No events are scheduled right now.")
	}
	return page, nil
}

// BlogPage lists published posts with category filters.
type BlogPage struct {
	Site       resolver.SiteView   `json:"site"`
	Posts      []resolver.PostView `json:"posts"`
	Categories []string            `json:"categories"`
	EmptyState *EmptyState         `json:"empty_state,omitempty"`
}

// BlogPage assembles the blog listing.
func (a *Assembler) BlogPage(ctx context.Context, siteKey string) (BlogPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return BlogPage{}, err
	}

	var posts []store.BlogPost
	gather(ctx, section(a, "posts", &posts, func() ([]store.BlogPost, error) {
		return a.queries.ListPublishedPosts(ctx, store.ListPublishedPostsParams{
			Site: siteKey, Now: a.now(),
		})
	}))

	var refs []sql.NullInt64
	var categories []string
	for _, p := range posts {
		refs = append(refs, p.FeaturedImageID)
		categories = append(categories, p.Category)
	}
	media := a.media(ctx, refs...)

	page := BlogPage{
		Site:       resolver.NewSiteView(a.baseURL, site),
		Posts:      []resolver.PostView{},
		Categories: []string{},
	}
	for _, p := range posts {
		page.Posts = append(page.Posts, resolver.NewPostView(a.baseURL, p, media))
	}
	if cats := resolver.DistinctCategories(categories); cats != nil {
		page.Categories = cats
	}
	if len(posts) == 0 {
		page.EmptyState = emptyState("No stories published yet.")
	}
	return page, nil
}

// AboutPage carries the organizational sections.
type AboutPage struct {
	Site         resolver.SiteView           `json:"site"`
	TeamMembers  []resolver.TeamMemberView   `json:"team_members"`
	Timeline     []resolver.TimelineItemView `json:"timeline"`
	Partners     []resolver.PartnerView      `json:"partners"`
	Testimonials []resolver.TestimonialView  `json:"testimonials"`
	EmptyState   *EmptyState                 `json:"empty_state,omitempty"`
}

// AboutPage assembles the about page. All sections are secondary; an about
// page with no content still renders the branding block.
func (a *Assembler) AboutPage(ctx context.Context, siteKey string) (AboutPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return AboutPage{}, err
	}

	var (
		team     []store.TeamMember
		timeline []store.TimelineItem
		partners []store.Partner
		quotes   []store.Testimonial
	)
	gather(ctx,
		section(a, "team_members", &team, func() ([]store.TeamMember, error) {
			return a.queries.ListVisibleTeamMembers(ctx, siteKey)
		}),
		section(a, "timeline", &timeline, func() ([]store.TimelineItem, error) {
			return a.queries.ListVisibleTimelineItems(ctx, siteKey)
		}),
		section(a, "partners", &partners, func() ([]store.Partner, error) {
			return a.queries.ListVisiblePartners(ctx, siteKey)
		}),
		section(a, "testimonials", &quotes, func() ([]store.Testimonial, error) {
			return a.queries.ListVisibleTestimonials(ctx, siteKey)
		}),
	)

	var refs []sql.NullInt64
	for _, m := range team {
		refs = append(refs, m.PhotoID)
	}
	for _, p := range partners {
		refs = append(refs, p.LogoID)
	}
	for _, t := range quotes {
		refs = append(refs, t.PhotoID)
	}
	media := a.media(ctx, refs...)

	page := AboutPage{
		Site:         resolver.NewSiteView(a.baseURL, site),
		TeamMembers:  []resolver.TeamMemberView{},
		Timeline:     []resolver.TimelineItemView{},
		Partners:     []resolver.PartnerView{},
		Testimonials: []resolver.TestimonialView{},
	}
	for _, m := range team {
		page.TeamMembers = append(page.TeamMembers, resolver.NewTeamMemberView(a.baseURL, m, media))
	}
	for _, t := range timeline {
		page.Timeline = append(page.Timeline, resolver.NewTimelineItemView(t))
	}
	for _, p := range partners {
		page.Partners = append(page.Partners, resolver.NewPartnerView(a.baseURL, p, media))
	}
	for _, t := range quotes {
		page.Testimonials = append(page.Testimonials, resolver.NewTestimonialView(a.baseURL, t, media))
	}
	if len(team) == 0 && len(timeline) == 0 && len(partners) == 0 && len(quotes) == 0 {
		page.EmptyState = emptyState("Our story is still being written.")
	}
	return page, nil
}

// ImpactPage carries stats, case studies and downloadable reports.
type ImpactPage struct {
	Site        resolver.SiteView         `json:"site"`
	ImpactStats []resolver.ImpactStatView `json:"impact_stats"`
	CaseStudies []resolver.CaseStudyView  `json:"case_studies"`
	Reports     []resolver.ReportView     `json:"reports"`
	EmptyState  *EmptyState               `json:"empty_state,omitempty"`
}

// ImpactPage assembles the impact page.
func (a *Assembler) ImpactPage(ctx context.Context, siteKey string) (ImpactPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return ImpactPage{}, err
	}

	var (
		stats   []store.ImpactStat
		studies []store.CaseStudy
		reports []store.Report
	)
	gather(ctx,
		section(a, "impact_stats", &stats, func() ([]store.ImpactStat, error) {
			return a.queries.ListVisibleImpactStats(ctx, siteKey)
		}),
		section(a, "case_studies", &studies, func() ([]store.CaseStudy, error) {
			return a.queries.ListPublishedCaseStudies(ctx, siteKey)
		}),
		section(a, "reports", &reports, func() ([]store.Report, error) {
			return a.queries.ListPublishedReports(ctx, siteKey)
		}),
	)

	var refs []sql.NullInt64
	for _, c := range studies {
		refs = append(refs, c.FeaturedImageID)
	}
	for _, r := range reports {
		refs = append(refs, r.FileID)
	}
	media := a.media(ctx, refs...)

	page := ImpactPage{
		Site:        resolver.NewSiteView(a.baseURL, site),
		ImpactStats: []resolver.ImpactStatView{},
		CaseStudies: []resolver.CaseStudyView{},
		Reports:     []resolver.ReportView{},
	}
	for _, s := range stats {
		page.ImpactStats = append(page.ImpactStats, resolver.NewImpactStatView(s))
	}
	for _, c := range studies {
		page.CaseStudies = append(page.CaseStudies, resolver.NewCaseStudyView(a.baseURL, c, media))
	}
	for _, r := range reports {
		page.Reports = append(page.Reports, resolver.NewReportView(a.baseURL, r, media))
	}
	if len(stats) == 0 && len(studies) == 0 && len(reports) == 0 {
		page.EmptyState = emptyState("Impact reports are being compiled.")
	}
	return page, nil
}

// GalleryPage lists gallery images with category filters.
type GalleryPage struct {
	Site       resolver.SiteView          `json:"site"`
	Images     []resolver.GalleryImageView `json:"images"`
	Categories []string                   `json:"categories"`
	EmptyState *EmptyState                `json:"empty_state,omitempty"`
}

// GalleryPage assembles the gallery.
func (a *Assembler) GalleryPage(ctx context.Context, siteKey string) (GalleryPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return GalleryPage{}, err
	}

	var images []store.GalleryImage
	gather(ctx, section(a, "gallery", &images, func() ([]store.GalleryImage, error) {
		return a.queries.ListVisibleGalleryImages(ctx, siteKey)
	}))

	page := GalleryPage{
		Site:       resolver.NewSiteView(a.baseURL, site),
		Images:     []resolver.GalleryImageView{},
		Categories: []string{},
	}
	var categories []string
	for _, g := range images {
		page.Images = append(page.Images, resolver.NewGalleryImageView(a.baseURL, g))
		categories = append(categories, g.Category)
	}
	if cats := resolver.DistinctCategories(categories); cats != nil {
		page.Categories = cats
	}
	if len(images) == 0 {
		page.EmptyState = emptyState("The gallery is empty for now.")
	}
	return page, nil
}

// PartnersPage lists partner organizations.
type PartnersPage struct {
	Site       resolver.SiteView      `json:"site"`
	Partners   []resolver.PartnerView `json:"partners"`
	EmptyState *EmptyState            `json:"empty_state,omitempty"`
}

// PartnersPage assembles the partner listing.
func (a *Assembler) PartnersPage(ctx context.Context, siteKey string) (PartnersPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return PartnersPage{}, err
	}

	var partners []store.Partner
	gather(ctx, section(a, "partners", &partners, func() ([]store.Partner, error) {
		return a.queries.ListVisiblePartners(ctx, siteKey)
	}))

	var refs []sql.NullInt64
	for _, p := range partners {
		refs = append(refs, p.LogoID)
	}
	media := a.media(ctx, refs...)

	page := PartnersPage{
		Site:     resolver.NewSiteView(a.baseURL, site),
		Partners: []resolver.PartnerView{},
	}
	for _, p := range partners {
		page.Partners = append(page.Partners, resolver.NewPartnerView(a.baseURL, p, media))
	}
	if len(partners) == 0 {
		page.EmptyState = emptyState("Partner organizations will be listed here.")
	}
	return page, nil
}

// ContactPage carries the contact block.
type ContactPage struct {
	Site resolver.SiteView `json:"site"`
}

// ContactPage assembles the contact page payload.
func (a *Assembler) ContactPage(ctx context.Context, siteKey string) (ContactPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return ContactPage{}, err
	}
	return ContactPage{Site: resolver.NewSiteView(a.baseURL, site)}, nil
}
