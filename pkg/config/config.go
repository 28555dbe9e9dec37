// Copyright (C) 2025 Claimgate Project
//
// This file is part of claimgate-go.
//
// claimgate-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// claimgate-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with claimgate-go.  If not, see <https://www.gnu.org/licenses/>.

// Package config provides environment-driven configuration for the portal.
//
// The portal's own signing identity is deliberately validated lazily:
// endpoints that do not need the identity keep working when it is absent,
// and those that do surface a ConfigurationError (HTTP 500) on first use
// instead of crashing the process at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/claimgate/claimgate-go/pkg/protocol"
	"github.com/claimgate/claimgate-go/pkg/signer"
)

// init loads .env files during package initialization. godotenv.Load does
// not override already-set variables, so OS environment takes precedence.
func init() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load .env file: %v\n", err)
		}
	}
	if _, err := os.Stat(".env.local"); err == nil {
		if err := godotenv.Load(".env.local"); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load .env.local file: %v\n", err)
		}
	}
}

// Config captures environment-driven settings for the portal process.
type Config struct {
	Address  string // HTTP listen address
	BaseURL  string // Public base URL of this portal, used in generated links
	LogLevel string

	AppID     string // Portal identity registered with the proof network
	AppSecret string // Portal signing key (raw hex private key)

	SharePageURL     string // Proof-network hosted verification page
	ProviderAPIURL   string // Provider-detail lookup endpoint base
	UniversityAPIURL string // Remote university search endpoint

	HTTPTimeout time.Duration // Timeout for all outbound HTTP calls
}

const (
	defaultAddress       = ":3000"
	defaultSharePageURL  = "https://portal.verification-network.example/share"
	defaultProviderAPI   = "https://devapi.verification-network.example/api/provider-hunt/providers"
	defaultUniversityAPI = "https://api.providerhunt.xyz/api/bundle/verification-type/"
	defaultHTTPTimeout   = 15 * time.Second
)

// Load reads environment variables and produces a Config. Only structurally
// invalid values fail the load; missing identity settings are tolerated.
func Load() (Config, error) {
	cfg := Config{
		Address:          getEnv("CLAIMGATE_HTTP_ADDR", defaultAddress),
		BaseURL:          os.Getenv("CLAIMGATE_BASE_URL"),
		LogLevel:         os.Getenv("CLAIMGATE_LOG_LEVEL"),
		AppID:            os.Getenv("CLAIMGATE_APP_ID"),
		AppSecret:        os.Getenv("CLAIMGATE_APP_SECRET"),
		SharePageURL:     getEnv("CLAIMGATE_SHARE_URL", defaultSharePageURL),
		ProviderAPIURL:   getEnv("CLAIMGATE_PROVIDER_API", defaultProviderAPI),
		UniversityAPIURL: getEnv("CLAIMGATE_UNIVERSITY_API", defaultUniversityAPI),
		HTTPTimeout:      defaultHTTPTimeout,
	}

	if raw, exists := os.LookupEnv("CLAIMGATE_HTTP_TIMEOUT_SECONDS"); exists {
		seconds, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("invalid CLAIMGATE_HTTP_TIMEOUT_SECONDS: %q", raw)
		}
		cfg.HTTPTimeout = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}

// Identity returns the portal's signer built from AppSecret. A missing or
// unparseable secret is a ConfigurationError, reported where the identity is
// actually needed.
func (c *Config) Identity() (*signer.EthereumSigner, error) {
	if c.AppSecret == "" {
		return nil, &protocol.ConfigurationError{Setting: "CLAIMGATE_APP_SECRET"}
	}
	s, err := signer.NewEthereumSigner(c.AppSecret)
	if err != nil {
		return nil, &protocol.ConfigurationError{Setting: "CLAIMGATE_APP_SECRET"}
	}
	return s, nil
}

func getEnv(key, fallback string) string {
	if v, exists := os.LookupEnv(key); exists && v != "" {
		return v
	}
	return fallback
}
