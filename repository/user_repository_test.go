package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tasktracker/internal/store"
)

func TestUserRepository_CreateGetVerify(t *testing.T) {
	repo := NewUserRepository(store.NewFileStore(t.TempDir()))
	ctx := context.Background()

	u, err := repo.Create(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Username != "alice" || u.CreatedAt == "" {
		t.Fatalf("unexpected created user: %+v", u)
	}
	if u.Password == "pw1" {
		t.Fatalf("password stored in plaintext")
	}

	g, err := repo.Get(ctx, "alice")
	if err != nil || g == nil || g.Username != "alice" {
		t.Fatalf("get: %v %+v", err, g)
	}
	if g2, err := repo.Get(ctx, "Alice"); err != nil || g2 != nil {
		t.Fatalf("lookup must be case-sensitive: %v %+v", err, g2)
	}

	cases := []struct {
		username, password string
		want               VerifyResult
	}{
		{"alice", "pw1", VerifyValid},
		{"alice", "wrong", VerifyInvalid},
		{"bob", "x", VerifyNotFound},
	}
	for _, c := range cases {
		got, err := repo.Verify(ctx, c.username, c.password)
		if err != nil {
			t.Fatalf("verify %s: %v", c.username, err)
		}
		if got != c.want {
			t.Errorf("verify(%q,%q) = %v, want %v", c.username, c.password, got, c.want)
		}
	}
}

func TestVerifyResult_Err(t *testing.T) {
	if VerifyValid.Err() != nil {
		t.Fatalf("valid should map to nil error")
	}
	if !errors.Is(VerifyInvalid.Err(), ErrInvalidCredentials) {
		t.Fatalf("invalid should map to ErrInvalidCredentials")
	}
	if !errors.Is(VerifyNotFound.Err(), ErrNotFound) {
		t.Fatalf("notfound should map to ErrNotFound")
	}
}

func TestUserRepository_DuplicateCreate(t *testing.T) {
	repo := NewUserRepository(store.NewFileStore(t.TempDir()))
	ctx := context.Background()

	if _, err := repo.Create(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := repo.Create(ctx, "alice", "other")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUserRepository_ValidatesInput(t *testing.T) {
	repo := NewUserRepository(store.NewFileStore(t.TempDir()))
	ctx := context.Background()

	for _, c := range [][2]string{{"", "pw"}, {"alice", ""}, {"", ""}} {
		if _, err := repo.Create(ctx, c[0], c[1]); !errors.Is(err, ErrValidation) {
			t.Errorf("create(%q,%q): expected ErrValidation, got %v", c[0], c[1], err)
		}
	}
}

func TestUserRepository_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	if _, err := NewUserRepository(store.NewFileStore(dir)).Create(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	res, err := NewUserRepository(store.NewFileStore(dir)).Verify(ctx, "alice", "pw1")
	if err != nil || res != VerifyValid {
		t.Fatalf("verify after reload: %v %v", res, err)
	}
}

// Files written by the first version held a bare array of user records and
// plaintext passwords. Loading must convert the shape and keep verifying.
func TestUserRepository_LegacyArrayFile(t *testing.T) {
	dir := t.TempDir()
	legacy := `[{"username":"alice","password":"pw1"},{"username":"bob","password":"pw2"},{"password":"orphan"}]`
	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte(legacy), 0o644); err != nil {
		t.Fatalf("seed legacy file: %v", err)
	}
	repo := NewUserRepository(store.NewFileStore(dir))
	ctx := context.Background()

	u, err := repo.Get(ctx, "alice")
	if err != nil || u == nil {
		t.Fatalf("get after conversion: %v %+v", err, u)
	}
	res, err := repo.Verify(ctx, "alice", "pw1")
	if err != nil || res != VerifyValid {
		t.Fatalf("legacy plaintext verify: %v %v", res, err)
	}

	// The file must now hold the keyed map, with the record lacking a
	// username dropped.
	data, err := os.ReadFile(filepath.Join(dir, "users.json"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if strings.HasPrefix(strings.TrimSpace(string(data)), "[") {
		t.Fatalf("users file still an array: %s", data)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("users file not a map: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("expected 2 converted users, got %d", len(m))
	}
}
