// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package store

import (
	"errors"
	"testing"
)

func openStores(t *testing.T) map[string]KeyValueStore {
	t.Helper()

	mem, err := OpenBadger("")
	if err != nil {
		t.Fatalf("OpenBadger(in-memory) error = %v", err)
	}
	disk, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger(dir) error = %v", err)
	}
	stores := map[string]KeyValueStore{
		"memory":        NewMemoryStore(),
		"badger-memory": mem,
		"badger-disk":   disk,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestKeyValueStore(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
			}

			if err := s.Set("k", []byte("v1")); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := s.Set("k", []byte("v2")); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}
			got, err := s.Get("k")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if string(got) != "v2" {
				t.Errorf("Get() = %q, want v2", got)
			}

			// Returned slices must not alias stored data.
			got[0] = 'x'
			again, _ := s.Get("k")
			if string(again) != "v2" {
				t.Errorf("stored value mutated through Get result: %q", again)
			}

			if err := s.Delete("k"); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get after Delete error = %v, want ErrNotFound", err)
			}
			if err := s.Delete("k"); err != nil {
				t.Errorf("Delete(missing) error = %v, want nil", err)
			}
		})
	}
}

func TestBadgerStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenBadger(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(CurrentUserKey, []byte(`{"email":"a@b.co"}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = OpenBadger(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, err := s.Get(CurrentUserKey)
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if string(got) != `{"email":"a@b.co"}` {
		t.Errorf("Get() = %s", got)
	}
}

func TestJSONHelpers(t *testing.T) {
	s := NewMemoryStore()

	type session struct {
		Email       string   `json:"email"`
		Preferences []string `json:"preferences"`
	}
	in := session{Email: "a@b.co", Preferences: []string{"History"}}
	if err := SetJSON(s, CurrentUserKey, in); err != nil {
		t.Fatalf("SetJSON() error = %v", err)
	}

	var out session
	if err := GetJSON(s, CurrentUserKey, &out); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if out.Email != in.Email || len(out.Preferences) != 1 || out.Preferences[0] != "History" {
		t.Errorf("GetJSON() = %+v, want %+v", out, in)
	}

	if err := s.Set("bad", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if err := GetJSON(s, "bad", &out); err == nil {
		t.Error("GetJSON(invalid) should fail")
	}
	if err := GetJSON(s, "missing", &out); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetJSON(missing) error = %v, want ErrNotFound", err)
	}
}

func TestBadgerStore_RunGC(t *testing.T) {
	s, err := OpenBadger("")
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	defer s.Close()
	if err := s.RunGC(0.5); err != nil {
		t.Errorf("RunGC() on in-memory store error = %v, want nil", err)
	}

	disk, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	defer disk.Close()
	if err := disk.Set("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := disk.RunGC(0.5); err != nil {
		t.Errorf("RunGC() on fresh store error = %v, want nil", err)
	}
}
