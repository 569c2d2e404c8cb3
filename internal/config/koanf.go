// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file search.
const ConfigPathEnvVar = "TOURGUIDE_CONFIG"

// DotEnvPath is the .env file applied before environment variables are read.
var DotEnvPath = ".env"

// DefaultConfigPaths lists the config files searched in order.
var DefaultConfigPaths = []string{
	"tourguide.yaml",
	"tourguide.yml",
}

// DefaultCities are the destinations offered at signup.
var DefaultCities = []string{
	"Abu Dhabi", "Dubai", "Sharjah", "Ajman", "Ras Al Khaimah", "Al Ain", "Fujairah",
}

// DefaultCategories are the preference categories offered at signup.
var DefaultCategories = []string{
	"Religious", "Architecture", "History", "Cultural", "Museum",
	"Heritage", "Art", "Nature", "Oasis", "Agriculture",
	"Fort", "Mountain", "Archaeology", "Traditional", "Desert",
	"Performing", "Entertainment", "International", "Craftsmanship", "Trade",
	"Maritime", "Market", "Jewellery", "Culinary", "Education",
	"Shopping", "Leisure", "Family", "Canal", "Walk",
	"Calligraphy", "Restoration", "Wildlife", "Sheikh Zayed", "Conservation",
	"Adventure", "Motor", "National", "UAE", "Formation",
	"Technology", "Camel", "Racing", "Sports", "Landmark",
	"Modern", "Bird", "Watching", "Festival", "Eco-Tourism",
	"Biodome", "Experience", "UNESCO", "Sheikh Khalifa",
}

func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "https://smart-tourism-jgps.onrender.com/api",
			AssetURL:  "https://smart-tourism-jgps.onrender.com",
			Timeout:   30 * time.Second,
			RateLimit: 5,
			RateBurst: 5,
			UserAgent: "tourguide/1.0",
			CacheTTL:  time.Minute,
			CacheSize: 128,
		},
		Breaker: BreakerConfig{
			Enabled:      true,
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      30 * time.Second,
			MinRequests:  5,
			FailureRatio: 0.6,
		},
		Store: StoreConfig{
			Path:           defaultStorePath(),
			GCInterval:     10 * time.Minute,
			GCDiscardRatio: 0.5,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Status: StatusConfig{
			ShutdownTimeout: 5 * time.Second,
			RateLimit:       120,
		},
		App: AppConfig{
			Cities:     append([]string(nil), DefaultCities...),
			Categories: append([]string(nil), DefaultCategories...),
		},
	}
}

// defaultStorePath places the session database under the user config dir.
func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return filepath.Join(".tourguide", "session")
	}
	return filepath.Join(dir, "tourguide", "session")
}

// Load reads configuration from defaults, the config file and the environment.
func Load() (*Config, error) {
	if err := loadDotEnv(DotEnvPath); err != nil {
		return nil, err
	}
	return LoadWithKoanf()
}

// loadDotEnv applies a .env file if one exists. Variables already present in
// the environment win.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LoadWithKoanf builds the layered configuration and validates it.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	cfg.API.AssetURL = strings.TrimRight(cfg.API.AssetURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	paths := append([]string(nil), DefaultConfigPaths...)
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		paths = append(paths, filepath.Join(dir, "tourguide", "config.yaml"))
	}
	paths = append(paths, "/etc/tourguide/config.yaml")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"app.cities",
	"app.categories",
	"status.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	"tourguide_api_url":          "api.base_url",
	"tourguide_asset_url":        "api.asset_url",
	"tourguide_api_timeout":      "api.timeout",
	"tourguide_rate_limit":       "api.rate_limit",
	"tourguide_rate_burst":       "api.rate_burst",
	"tourguide_user_agent":       "api.user_agent",
	"tourguide_cache_ttl":        "api.cache_ttl",
	"tourguide_breaker_enabled":  "breaker.enabled",
	"tourguide_breaker_timeout":  "breaker.timeout",
	"tourguide_breaker_interval": "breaker.interval",
	"tourguide_breaker_ratio":    "breaker.failure_ratio",
	"tourguide_store_path":       "store.path",
	"tourguide_store_gc":         "store.gc_interval",
	"tourguide_status_addr":      "status.addr",
	"tourguide_status_cors":      "status.cors_origins",
	"tourguide_cities":           "app.cities",
	"tourguide_categories":       "app.categories",
	"log_level":                  "logging.level",
	"log_format":                 "logging.format",
	"log_caller":                 "logging.caller",
}

// envTransformFunc maps TOURGUIDE_API_URL -> api.base_url and so on.
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
