// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package config

import (
	"fmt"
	"net/url"

	"github.com/tomtom215/tourguide/internal/logging"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateBreaker(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if c.Status.RateLimit < 0 {
		return fmt.Errorf("status.rate_limit must not be negative, got %d", c.Status.RateLimit)
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateApp()
}

func (c *Config) validateAPI() error {
	if err := validateHTTPURL("api.base_url", c.API.BaseURL); err != nil {
		return err
	}
	if err := validateHTTPURL("api.asset_url", c.API.AssetURL); err != nil {
		return err
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %v", c.API.Timeout)
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("api.rate_limit must not be negative, got %v", c.API.RateLimit)
	}
	if c.API.RateLimit > 0 && c.API.RateBurst < 1 {
		return fmt.Errorf("api.rate_burst must be at least 1 when rate limiting is enabled")
	}
	if c.API.CacheTTL < 0 {
		return fmt.Errorf("api.cache_ttl must not be negative, got %v", c.API.CacheTTL)
	}
	if c.API.CacheTTL > 0 && c.API.CacheSize < 1 {
		return fmt.Errorf("api.cache_size must be at least 1 when caching is enabled, got %d", c.API.CacheSize)
	}
	return nil
}

func validateHTTPURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", name, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host", name)
	}
	return nil
}

func (c *Config) validateBreaker() error {
	if !c.Breaker.Enabled {
		return nil
	}
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("breaker.failure_ratio must be in (0,1], got %v", c.Breaker.FailureRatio)
	}
	if c.Breaker.Timeout <= 0 {
		return fmt.Errorf("breaker.timeout must be positive, got %v", c.Breaker.Timeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
}

func (c *Config) validateApp() error {
	if len(c.App.Cities) == 0 {
		return fmt.Errorf("app.cities must list at least one city")
	}
	if len(c.App.Categories) == 0 {
		return fmt.Errorf("app.categories must list at least one category")
	}
	return nil
}

func (c *Config) validateStore() error {
	if c.Store.GCInterval < 0 {
		return fmt.Errorf("store.gc_interval must not be negative, got %v", c.Store.GCInterval)
	}
	if c.Store.GCInterval > 0 && (c.Store.GCDiscardRatio <= 0 || c.Store.GCDiscardRatio >= 1) {
		return fmt.Errorf("store.gc_discard_ratio must be between 0 and 1, got %v", c.Store.GCDiscardRatio)
	}
	return nil
}
