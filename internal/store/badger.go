// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// keyPrefix namespaces client keys inside the database.
const keyPrefix = "tourguide:"

// BadgerStore implements KeyValueStore using BadgerDB.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens a BadgerDB at path. An empty path opens an in-memory
// database that is discarded on Close.
func OpenBadger(path string) (*BadgerStore, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Get returns a copy of the value stored under key.
func (s *BadgerStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *BadgerStore) Set(key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyPrefix+key), value); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		return nil
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (s *BadgerStore) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(keyPrefix + key))
		if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		return nil
	})
}

// RunGC rewrites value log files until badger reports nothing left to
// reclaim. In-memory stores have no value log and return nil.
func (s *BadgerStore) RunGC(discardRatio float64) error {
	for {
		err := s.db.RunValueLogGC(discardRatio)
		switch {
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return nil
		case err != nil:
			return fmt.Errorf("run value log gc: %w", err)
		}
	}
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
