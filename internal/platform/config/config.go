// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (client, session) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the console is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Playdeck admin console.
type Config struct {

	// APIBaseURL is the root of the remote platform admin API.
	APIBaseURL string `env:"PLAYDECK_API_URL" envDefault:"http://localhost:5000/admin"`

	// HTTPTimeout is the fixed per-call deadline for outbound requests.
	// There are no retries; a timed-out call is a failed operation.
	HTTPTimeout time.Duration `env:"PLAYDECK_HTTP_TIMEOUT" envDefault:"10s"`

	// TokenFile is where the bearer credential is persisted between runs.
	// Empty means the per-user default under os.UserConfigDir.
	TokenFile string `env:"PLAYDECK_TOKEN_FILE"`

	// PageLimit is the default page size for list commands.
	PageLimit int `env:"PLAYDECK_PAGE_LIMIT" envDefault:"10"`

	// Debug enables debug-level logging.
	Debug bool `env:"PLAYDECK_DEBUG" envDefault:"false"`

	// Mock API settings (playdeck mock)
	MockPort   string `env:"PLAYDECK_MOCK_PORT"   envDefault:"5000"`
	MockSecret string `env:"PLAYDECK_MOCK_SECRET" envDefault:"playdeck-mock-secret"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// CredentialPath resolves the filesystem location of the persisted token.
//
// An explicit PLAYDECK_TOKEN_FILE wins; otherwise the per-user config
// directory is used so tests can point each run at an isolated file.
func (c *Config) CredentialPath() (string, error) {
	if c.TokenFile != "" {
		return c.TokenFile, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "playdeck", "token"), nil
}
