package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Both backends must satisfy the same contract, so the core tests run against
// each through this table.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Store{
		"file":   NewFileStore(t.TempDir()),
		"sqlite": sq,
	}
}

func TestLoad_AbsentPersistsDefault(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			got := []string{}
			if err := s.Load(ctx, "things", &got); err != nil {
				t.Fatalf("first load: %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("expected empty default, got %v", got)
			}

			// The default must have been persisted: a second load with a
			// different default must see the stored empty document, not keep
			// its own default.
			again := []string{"stale"}
			if err := s.Load(ctx, "things", &again); err != nil {
				t.Fatalf("second load: %v", err)
			}
			if len(again) != 0 {
				t.Fatalf("second load should see persisted empty default, got %v", again)
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			in := map[string][]string{"alice": {"a", "b"}, "bob": {"c"}}
			if err := s.Save(ctx, "things", in); err != nil {
				t.Fatalf("save: %v", err)
			}
			out := map[string][]string{}
			if err := s.Load(ctx, "things", &out); err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(out) != 2 || len(out["alice"]) != 2 || out["bob"][0] != "c" {
				t.Fatalf("round trip mismatch: %v", out)
			}
		})
	}
}

func TestSave_OverwritesWhole(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := s.Save(ctx, "things", map[string]int{"a": 1, "b": 2}); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := s.Save(ctx, "things", map[string]int{"a": 9}); err != nil {
				t.Fatalf("second save: %v", err)
			}
			out := map[string]int{}
			if err := s.Load(ctx, "things", &out); err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(out) != 1 || out["a"] != 9 {
				t.Fatalf("save should replace the whole document, got %v", out)
			}
		})
	}
}

func TestFileStore_CorruptFileResetsToDefault(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(dir, "things.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	got := map[string]int{}
	if err := s.Load(ctx, "things", &got); err != nil {
		t.Fatalf("load over corrupt file: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected default, got %v", got)
	}
	data, err := os.ReadFile(filepath.Join(dir, "things.json"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var check map[string]int
	if err := json.Unmarshal(data, &check); err != nil {
		t.Fatalf("file should hold valid json after reset: %v", err)
	}
}

func TestFileStore_UnreadableDirIsUnavailable(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	s := NewFileStore(filepath.Join(dir, "nested"))
	err := s.Save(context.Background(), "things", map[string]int{})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
