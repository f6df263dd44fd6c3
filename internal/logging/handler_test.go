// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/causewayhq/causeway/internal/store"
	"github.com/causewayhq/causeway/internal/testutil"
)

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func TestEventLogHandlerErrorLevel(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	logger := slog.New(NewEventLogHandler(discardHandler{}, db))
	logger.Error("database connection failed", "host", "localhost")

	q := store.New(db)
	events, err := q.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Level != EventLevelError {
		t.Errorf("Level = %q, want ERROR", events[0].Level)
	}
	if events[0].Message != "database connection failed" {
		t.Errorf("Message = %q", events[0].Message)
	}
	if events[0].Metadata != `{"host":"localhost"}` {
		t.Errorf("Metadata = %q", events[0].Metadata)
	}
}

func TestEventLogHandlerInfoNotPersisted(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	logger := slog.New(NewEventLogHandler(discardHandler{}, db))
	logger.Info("server started", "addr", ":8080")

	q := store.New(db)
	events, err := q.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("INFO record persisted: %+v", events)
	}
}

func TestEventLogHandlerCategory(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	logger := slog.New(NewEventLogHandler(discardHandler{}, db))
	logger.Warn("donation insert failed", "category", "lead")
	logger.Warn("page section unavailable", "section", "hero")

	q := store.New(db)
	events, err := q.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	byMessage := map[string]string{}
	for _, e := range events {
		byMessage[e.Message] = e.Category
	}
	if byMessage["donation insert failed"] != EventCategoryLead {
		t.Errorf("explicit category = %q, want lead", byMessage["donation insert failed"])
	}
	if byMessage["page section unavailable"] != EventCategoryContent {
		t.Errorf("inferred category = %q, want content", byMessage["page section unavailable"])
	}
}
