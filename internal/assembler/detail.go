// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package assembler

import (
	"context"

	"github.com/causewayhq/causeway/internal/resolver"
	"github.com/causewayhq/causeway/internal/store"
)

// CampaignPage is a single campaign page.
type CampaignPage struct {
	Site     resolver.SiteView           `json:"site"`
	Campaign resolver.CampaignDetailView `json:"campaign"`
}

// CampaignPage assembles one campaign. A missing slug is ErrNotFound.
func (a *Assembler) CampaignPage(ctx context.Context, siteKey, slug string) (CampaignPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return CampaignPage{}, err
	}
	c, err := a.queries.GetCampaignBySlug(ctx, store.GetCampaignBySlugParams{Site: siteKey, Slug: slug})
	if err != nil {
		return CampaignPage{}, notFoundOr(err, "campaign")
	}
	return CampaignPage{
		Site:     resolver.NewSiteView(a.baseURL, site),
		Campaign: resolver.NewCampaignDetailView(a.baseURL, site.Currency, c),
	}, nil
}

// ProgramPage is a single program page.
type ProgramPage struct {
	Site    resolver.SiteView          `json:"site"`
	Program resolver.ProgramDetailView `json:"program"`
}

// ProgramPage assembles one published program. Drafts resolve to ErrNotFound.
func (a *Assembler) ProgramPage(ctx context.Context, siteKey, slug string) (ProgramPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return ProgramPage{}, err
	}
	p, err := a.queries.GetPublishedProgramBySlug(ctx, store.GetPublishedProgramBySlugParams{Site: siteKey, Slug: slug})
	if err != nil {
		return ProgramPage{}, notFoundOr(err, "program")
	}
	media := a.media(ctx, p.FeaturedImageID)
	return ProgramPage{
		Site:    resolver.NewSiteView(a.baseURL, site),
		Program: resolver.NewProgramDetailView(a.baseURL, p, media),
	}, nil
}

// EventPage is a single event page.
type EventPage struct {
	Site  resolver.SiteView  `json:"site"`
	Event resolver.EventView `json:"event"`
}

// EventPage assembles one active event.
func (a *Assembler) EventPage(ctx context.Context, siteKey, slug string) (EventPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return EventPage{}, err
	}
	e, err := a.queries.GetActiveEventBySlug(ctx, store.GetActiveEventBySlugParams{Site: siteKey, Slug: slug})
	if err != nil {
		return EventPage{}, notFoundOr(err, "event")
	}
	return EventPage{
		Site:  resolver.NewSiteView(a.baseURL, site),
		Event: resolver.NewEventView(e),
	}, nil
}

// BlogPostPage is a single article page.
type BlogPostPage struct {
	Site resolver.SiteView       `json:"site"`
	Post resolver.PostDetailView `json:"post"`
}

// BlogPostPage assembles one publicly visible post. Scheduled and draft
// posts resolve to ErrNotFound.
func (a *Assembler) BlogPostPage(ctx context.Context, siteKey, slug string) (BlogPostPage, error) {
	site, err := a.site(ctx, siteKey)
	if err != nil {
		return BlogPostPage{}, err
	}
	p, err := a.queries.GetPublishedPostBySlug(ctx, store.GetPublishedPostBySlugParams{
		Site: siteKey, Slug: slug, Now: a.now(),
	})
	if err != nil {
		return BlogPostPage{}, notFoundOr(err, "post")
	}
	media := a.media(ctx, p.FeaturedImageID)
	return BlogPostPage{
		Site: resolver.NewSiteView(a.baseURL, site),
		Post: resolver.NewPostDetailView(a.baseURL, p, media),
	}, nil
}
