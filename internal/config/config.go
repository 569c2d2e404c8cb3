// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package config

import "time"

// Config holds all client configuration.
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	API     APIConfig     `koanf:"api"`
	Breaker BreakerConfig `koanf:"breaker"`
	Store   StoreConfig   `koanf:"store"`
	Logging LoggingConfig `koanf:"logging"`
	Status  StatusConfig  `koanf:"status"`
	App     AppConfig     `koanf:"app"`
}

// APIConfig describes how to reach the remote tourism service.
type APIConfig struct {
	// BaseURL is the API root, e.g. https://host/api. Endpoint paths are appended to it.
	BaseURL string `koanf:"base_url"`

	// AssetURL is the site root images are served from (<AssetURL>/images/<ref>).
	AssetURL string `koanf:"asset_url"`

	// Timeout bounds every HTTP request.
	Timeout time.Duration `koanf:"timeout"`

	// RateLimit is the sustained request rate in requests/second. 0 disables throttling.
	RateLimit float64 `koanf:"rate_limit"`

	// RateBurst is the token bucket size.
	RateBurst int `koanf:"rate_burst"`

	// UserAgent is sent with every request.
	UserAgent string `koanf:"user_agent"`

	// CacheTTL keeps catalog and review listings for this long. Zero disables caching.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// CacheSize bounds the number of cached listings.
	CacheSize int `koanf:"cache_size"`
}

// BreakerConfig configures the circuit breaker around the remote API.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests allowed through while half-open.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval after which closed-state counts are reset.
	Interval time.Duration `koanf:"interval"`

	// Timeout spent open before probing again.
	Timeout time.Duration `koanf:"timeout"`

	// MinRequests before the failure ratio is considered.
	MinRequests uint32 `koanf:"min_requests"`

	// FailureRatio at or above which the breaker opens.
	FailureRatio float64 `koanf:"failure_ratio"`
}

// StoreConfig configures local persistence.
type StoreConfig struct {
	// Path of the BadgerDB directory. Empty keeps the session in memory only.
	Path string `koanf:"path"`
	// GCInterval is how often the value log is compacted. Zero disables it.
	GCInterval time.Duration `koanf:"gc_interval"`
	// GCDiscardRatio is passed to badger's RunValueLogGC.
	GCDiscardRatio float64 `koanf:"gc_discard_ratio"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// StatusConfig configures the optional local status server.
type StatusConfig struct {
	// Addr to listen on, e.g. 127.0.0.1:9464. Empty disables the server.
	Addr string `koanf:"addr"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RateLimit is the number of requests per minute allowed per client IP.
	// Zero disables limiting.
	RateLimit int `koanf:"rate_limit"`

	// CORSOrigins may read the endpoints from a browser. Empty disables CORS.
	CORSOrigins []string `koanf:"cors_origins"`
}

// AppConfig holds the selectable values offered by the signup form.
type AppConfig struct {
	Cities     []string `koanf:"cities"`
	Categories []string `koanf:"categories"`
}

// HasCity reports whether city is one of the configured destination cities.
func (a AppConfig) HasCity(city string) bool {
	for _, c := range a.Cities {
		if c == city {
			return true
		}
	}
	return false
}
