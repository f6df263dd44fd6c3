// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers for the Causeway project.
package testutil

import (
	"database/sql"
	"log/slog"
	"os"
	"testing"

	"github.com/causewayhq/causeway/internal/store"
)

// TestSite is the site key seeded into test databases.
const TestSite = "causeway"

// TestLogger creates a silent test logger that only outputs warnings and errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// TestDB creates a temporary test database with migrations applied and the
// test site row present. Returns the database and a cleanup function that
// should be deferred.
func TestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "causeway-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	_, err = db.Exec(`
INSERT INTO sites (site_key, name, tagline, payment_handle, payment_payee_name, currency)
VALUES (?, 'Causeway Foundation', 'Building pathways out of poverty', 'causeway@upi', 'Causeway Foundation', 'INR')`,
		TestSite)
	if err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("seeding test site: %v", err)
	}

	return db, func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}
}
