// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

/*
Package config loads Tourguide configuration with Koanf v2.

Sources are layered, highest priority last:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $TOURGUIDE_CONFIG, ./tourguide.yaml, ./tourguide.yml,
    <user config dir>/tourguide/config.yaml, /etc/tourguide/config.yaml
 3. Environment variables, after an optional .env file has been applied
    with godotenv (existing variables are never overwritten)

Only mapped environment variables are read (see envTransformFunc), for
example:

	TOURGUIDE_API_URL      -> api.base_url
	TOURGUIDE_API_TIMEOUT  -> api.timeout
	TOURGUIDE_STORE_PATH   -> store.path
	LOG_LEVEL              -> logging.level

Comma-separated values are accepted for list settings such as
TOURGUIDE_CITIES.
*/
package config
