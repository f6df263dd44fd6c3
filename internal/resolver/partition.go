// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"time"

	"github.com/causewayhq/causeway/internal/store"
)

// PartitionEventsByTime splits events into upcoming and past relative to now.
// An event starting exactly at now is upcoming. Input order is preserved in
// both halves; every event lands in exactly one.
func PartitionEventsByTime(events []store.Event, now time.Time) (upcoming, past []store.Event) {
	for _, e := range events {
		if e.StartDate.Before(now) {
			past = append(past, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming, past
}

// PartitionCampaignsByActivity splits campaigns by the is_active flag alone.
// Fundraising totals play no part here: a campaign that met its goal stays
// active until an editor closes it.
func PartitionCampaignsByActivity(campaigns []store.Campaign) (active, completed []store.Campaign) {
	for _, c := range campaigns {
		if c.IsActive != 0 {
			active = append(active, c)
		} else {
			completed = append(completed, c)
		}
	}
	return active, completed
}
