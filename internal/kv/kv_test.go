package kv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

// mediumRoundTrip exercises the shared Medium contract.
func mediumRoundTrip(t *testing.T, m Medium) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := m.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := m.Set(ctx, "store", `{"a":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := m.Get(ctx, "store")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if value != `{"a":1}` {
		t.Fatalf("expected stored value, got %q", value)
	}

	if err := m.Set(ctx, "store", `{"a":2}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = m.Get(ctx, "store")
	if value != `{"a":2}` {
		t.Fatalf("expected overwritten value, got %q", value)
	}

	if err := m.Delete(ctx, "store"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "store"); ok {
		t.Fatal("expected key to be gone after delete")
	}
	if err := m.Delete(ctx, "store"); err != nil {
		t.Fatalf("delete missing should be noop: %v", err)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	mediumRoundTrip(t, NewMemory(0))
}

func TestMemoryCeiling(t *testing.T) {
	m := NewMemory(16)
	ctx := context.Background()

	if err := m.Set(ctx, "k", "0123456789"); err != nil {
		t.Fatalf("set within ceiling: %v", err)
	}
	err := m.Set(ctx, "k2", "0123456789")
	if !errors.Is(err, ErrMediumFull) {
		t.Fatalf("expected ErrMediumFull, got %v", err)
	}

	// Overwriting the existing key within the ceiling still works.
	if err := m.Set(ctx, "k", "abcdefghij"); err != nil {
		t.Fatalf("overwrite within ceiling: %v", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	m, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("new file medium: %v", err)
	}
	mediumRoundTrip(t, m)
}

func TestFilePersistsAcrossReopen(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	first, err := NewFile(root)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set(ctx, "tierlist:store", "payload"); err != nil {
		t.Fatalf("set: %v", err)
	}

	second, err := NewFile(root)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	value, ok, err := second.Get(ctx, "tierlist:store")
	if err != nil || !ok || value != "payload" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestFileRejectsEscapingKeys(t *testing.T) {
	m, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("new file medium: %v", err)
	}
	if err := m.Set(context.Background(), "..", "x"); err == nil {
		t.Fatal("expected error for escaping key")
	}
	if err := m.Set(context.Background(), "  ", "x"); err == nil {
		t.Fatal("expected error for blank key")
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	m, err := NewSQLite(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("new sqlite medium: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	mediumRoundTrip(t, m)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	ctx := context.Background()

	first, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set(ctx, "tierlist:store", "payload"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { second.Close() })
	value, ok, err := second.Get(ctx, "tierlist:store")
	if err != nil || !ok || value != "payload" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", value, ok, err)
	}
}
