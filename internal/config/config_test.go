// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CAUSEWAY_SITE", "ngo")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SiteKey != "ngo" {
		t.Errorf("SiteKey = %q, want %q", cfg.SiteKey, "ngo")
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr(), "localhost:8080")
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment = false, want true for default env")
	}
	if cfg.Currency != "INR" {
		t.Errorf("Currency = %q, want INR", cfg.Currency)
	}
}

func TestLoadRequiresSite(t *testing.T) {
	t.Setenv("CAUSEWAY_SITE", "")
	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded with empty CAUSEWAY_SITE")
	}
}

func TestLoadMediaBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"absolute", "https://cdn.example.org/storage", "https://cdn.example.org/storage", false},
		{"trailing slash trimmed", "https://cdn.example.org/storage/", "https://cdn.example.org/storage", false},
		{"relative rejected", "/storage", "", true},
		{"garbage rejected", "::::", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("CAUSEWAY_MEDIA_BASE_URL", tt.value)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Load succeeded for %q", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.MediaBaseURL != tt.want {
				t.Errorf("MediaBaseURL = %q, want %q", cfg.MediaBaseURL, tt.want)
			}
		})
	}
}

func TestLoadPaymentHandle(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CAUSEWAY_PAYMENT_HANDLE", "no-at-sign")
	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded with malformed payment handle")
	}

	t.Setenv("CAUSEWAY_PAYMENT_HANDLE", "donate@upi")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PaymentHandle != "donate@upi" {
		t.Errorf("PaymentHandle = %q", cfg.PaymentHandle)
	}
}

func TestLoadCurrency(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CAUSEWAY_CURRENCY", "usd")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.Currency)
	}

	t.Setenv("CAUSEWAY_CURRENCY", "RUPEES")
	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded with 6-letter currency")
	}
}
