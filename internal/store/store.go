// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

// Package store provides the local key/value persistence used to remember
// the signed-in user between runs.
package store

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// CurrentUserKey holds the persisted session ({email, preferences}).
const CurrentUserKey = "currentUser"

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("store: key not found")

// KeyValueStore is a minimal string-keyed byte store.
type KeyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// GetJSON loads key and decodes it into v.
func GetJSON(s KeyValueStore, key string, v any) error {
	data, err := s.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(s KeyValueStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(key, data)
}
