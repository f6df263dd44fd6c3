// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"CAUSEWAY_DB_PATH" envDefault:"./data/causeway.db"`
	ServerHost string `env:"CAUSEWAY_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"CAUSEWAY_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"CAUSEWAY_ENV" envDefault:"development"`
	LogLevel   string `env:"CAUSEWAY_LOG_LEVEL" envDefault:"info"`

	// SiteKey is the tenant discriminator. Every content read is scoped to it.
	SiteKey string `env:"CAUSEWAY_SITE,required"`

	// MediaBaseURL is the public base for inline storage paths. Image URL
	// resolution is a pure string transform against this base.
	MediaBaseURL string `env:"CAUSEWAY_MEDIA_BASE_URL" envDefault:"http://localhost:8080/media"`

	// Payment configuration for the donation deep link. The handle and payee
	// name here are fallbacks; the sites table takes priority when populated.
	PaymentHandle string `env:"CAUSEWAY_PAYMENT_HANDLE"`
	PaymentPayee  string `env:"CAUSEWAY_PAYMENT_PAYEE"`
	Currency      string `env:"CAUSEWAY_CURRENCY" envDefault:"INR"`

	// Cache configuration
	RedisURL    string `env:"CAUSEWAY_REDIS_URL"`                       // Optional Redis URL for the settings cache
	CachePrefix string `env:"CAUSEWAY_CACHE_PREFIX" envDefault:"cswy:"` // Redis key prefix
	CacheTTL    int    `env:"CAUSEWAY_CACHE_TTL" envDefault:"300"`      // Settings cache TTL in seconds

	// Seeding configuration
	DoSeed bool `env:"CAUSEWAY_DO_SEED" envDefault:"false"` // Enable demo content seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if strings.TrimSpace(cfg.SiteKey) == "" {
		return nil, fmt.Errorf("CAUSEWAY_SITE must not be blank")
	}

	u, err := url.Parse(cfg.MediaBaseURL)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("CAUSEWAY_MEDIA_BASE_URL must be an absolute URL, got %q", cfg.MediaBaseURL)
	}
	// Trailing slash would double up when joining storage paths
	cfg.MediaBaseURL = strings.TrimSuffix(cfg.MediaBaseURL, "/")

	if cfg.PaymentHandle != "" && !strings.Contains(cfg.PaymentHandle, "@") {
		return nil, fmt.Errorf("CAUSEWAY_PAYMENT_HANDLE must look like name@provider, got %q", cfg.PaymentHandle)
	}

	cfg.Currency = strings.ToUpper(cfg.Currency)
	if len(cfg.Currency) != 3 {
		return nil, fmt.Errorf("CAUSEWAY_CURRENCY must be a 3-letter code, got %q", cfg.Currency)
	}

	return cfg, nil
}
