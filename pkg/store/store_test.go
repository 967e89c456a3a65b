package store

import (
	"errors"
	"testing"
)

type pathConfig string

func (p pathConfig) BasePath() string { return string(p) }

func TestDiskRoundTrip(t *testing.T) {
	s, err := Open(pathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, ok := s.Get("profiles"); ok {
		t.Fatalf("expected absent key")
	}

	if err := s.Set("data:abc-123", `{"version":3}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := s.Get("data:abc-123")
	if !ok {
		t.Fatalf("expected value after set")
	}
	if got != `{"version":3}` {
		t.Fatalf("unexpected value %q", got)
	}

	if err := s.Remove("data:abc-123"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := s.Get("data:abc-123"); ok {
		t.Fatalf("expected key gone after remove")
	}
}

func TestDiskRemoveAbsentKey(t *testing.T) {
	s, err := Open(pathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Remove("never-written"); err != nil {
		t.Fatalf("remove of absent key: %v", err)
	}
}

func TestKeyTransformsInvert(t *testing.T) {
	for _, key := range []string{"profiles", "data:abc", "handoff", "a:b:c"} {
		pk := keyToPathTransform(key)
		if got := pathToKeyTransform(pk); got != key {
			t.Fatalf("transform round trip: %q became %q", key, got)
		}
	}
}

func TestMemoryFailWrites(t *testing.T) {
	m := NewMemory()
	m.FailWrites = true
	if err := m.Set("k", "v"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if _, ok := m.Get("k"); ok {
		t.Fatalf("failed write must not be visible")
	}
}
