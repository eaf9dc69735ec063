package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFSStoreContract(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, ok, err := s.Get(ctx, "customers"); err != nil || ok {
		t.Fatalf("expected absent key without error, ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "customers", `[{"id":"c1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get(ctx, "customers")
	if err != nil || !ok || v != `[{"id":"c1"}]` {
		t.Fatalf("get after set: v=%q ok=%v err=%v", v, ok, err)
	}
	if err := s.Remove(ctx, "customers"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.Remove(ctx, "customers"); err != nil {
		t.Fatalf("expected removing a missing key to be a no-op, got %v", err)
	}
}

func TestFSStoreWritesSurviveReopen(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	first, err := New(root)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := first.Set(ctx, "service_contracts", `[]`); err != nil {
		t.Fatalf("set: %v", err)
	}

	second, err := New(root)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, ok, err := second.Get(ctx, "service_contracts")
	if err != nil || !ok || v != `[]` {
		t.Fatalf("expected payload to survive reopen, v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestFSStoreRejectsTraversalKeys(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := New(root)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for _, key := range []string{"", "  ", "../escape", "/absolute", "a/../../b"} {
		if err := s.Set(ctx, key, "x"); err == nil {
			t.Fatalf("expected key %q rejected", key)
		}
	}
	// Nothing may have leaked outside the root.
	entries, err := os.ReadDir(filepath.Dir(root))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if e.Name() == "escape.json" || e.Name() == "b.json" {
			t.Fatalf("traversal key escaped the root: %s", e.Name())
		}
	}
}

func TestFSStoreNoPartialWrites(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := New(root)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Set(ctx, "customers", `[{"id":"c1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	// The temp file used for the atomic rename must not linger.
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "customers.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only customers.json in root, got %v", names)
	}
}
