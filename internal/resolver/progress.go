// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package resolver turns raw database rows into the display values the
// public site serves. Everything here is a pure function over row data;
// handlers and the page assembler are the only callers.
package resolver

import (
	"fmt"

	"github.com/causewayhq/causeway/internal/store"
	"github.com/causewayhq/causeway/internal/util"
)

// Progress is the single source of truth for campaign fundraising math.
// All surfaces that show a campaign derive their numbers from this value,
// never from the raw row.
type Progress struct {
	Raised  float64 `json:"raised"`
	Goal    float64 `json:"goal"`
	HasGoal bool    `json:"has_goal"`
}

// CampaignProgress computes the fundraising progress for a campaign.
// A NULL amount counts as zero; a campaign without a positive goal has
// no meaningful percentage.
func CampaignProgress(c store.Campaign) Progress {
	p := Progress{Raised: util.NullFloat64Value(c.RaisedAmount)}
	if goal := util.NullFloat64Value(c.GoalAmount); goal > 0 {
		p.Goal = goal
		p.HasGoal = true
	}
	return p
}

// Percent returns the completion percentage capped at 100. Campaigns
// without a goal report 0 regardless of the raised amount.
func (p Progress) Percent() float64 {
	if !p.HasGoal {
		return 0
	}
	pct := p.Raised / p.Goal * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Display formats the progress for card captions, e.g. "₹85,000 of ₹2,00,000".
// Amounts are whole units; grouping follows the Indian numbering system when
// the currency is INR.
func (p Progress) Display(currency string) string {
	if !p.HasGoal {
		return formatAmount(p.Raised, currency) + " raised"
	}
	return fmt.Sprintf("%s of %s", formatAmount(p.Raised, currency), formatAmount(p.Goal, currency))
}

func formatAmount(amount float64, currency string) string {
	symbol := currency + " "
	if currency == "INR" {
		symbol = "₹"
	}
	return symbol + groupDigits(int64(amount), currency == "INR")
}

// groupDigits inserts thousand separators. Indian grouping places the first
// separator after three digits and every two digits after that (1,00,000).
func groupDigits(n int64, indian bool) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		if indian {
			for len(head) > 2 {
				tail = head[len(head)-2:] + "," + tail
				head = head[:len(head)-2]
			}
		} else {
			for len(head) > 3 {
				tail = head[len(head)-3:] + "," + tail
				head = head[:len(head)-3]
			}
		}
		s = head + "," + tail
	}
	if neg {
		return "-" + s
	}
	return s
}
