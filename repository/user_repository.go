package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"tasktracker/internal/auth"
	"tasktracker/internal/store"
	"tasktracker/models"
)

// VerifyResult is the three-way outcome of a credential check. An unknown
// user and a wrong password are distinct results here; callers may still
// choose to respond identically for both.
type VerifyResult int

const (
	VerifyValid VerifyResult = iota
	VerifyInvalid
	VerifyNotFound
)

// Err maps the result to the error taxonomy (nil for VerifyValid).
func (r VerifyResult) Err() error {
	switch r {
	case VerifyInvalid:
		return ErrInvalidCredentials
	case VerifyNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// UserRepository stores credential records keyed by username.
// All users share one document, so a single mutex serializes writes rather
// than the per-username lock table the other repositories use.
type UserRepository struct {
	store store.Store
	mu    sync.Mutex
}

// NewUserRepository creates a UserRepository over the given store.
func NewUserRepository(st store.Store) *UserRepository {
	return &UserRepository{store: st}
}

// loadUsers reads the users collection. Files written by an earlier version
// hold a bare array of user records instead of the keyed map; those are
// converted in place and the converted shape is persisted.
func (r *UserRepository) loadUsers(ctx context.Context) (map[string]models.User, error) {
	raw := json.RawMessage(`{}`)
	if err := r.store.Load(ctx, usersCollection, &raw); err != nil {
		return nil, err
	}
	users := map[string]models.User{}
	if err := json.Unmarshal(raw, &users); err == nil {
		return users, nil
	}
	var legacy []models.User
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("users collection has unrecognized shape: %w", err)
	}
	for _, u := range legacy {
		if u.Username != "" {
			users[u.Username] = u
		}
	}
	if err := r.store.Save(ctx, usersCollection, users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns the user with the exact (case-sensitive) username, or nil if absent.
func (r *UserRepository) Get(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	u, ok := users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// Create inserts a new user with a bcrypt-hashed password.
func (r *UserRepository) Create(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password", ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := users[username]; ok {
		return nil, fmt.Errorf("%w: user %q", ErrAlreadyExists, username)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := models.User{Username: username, Password: hash, CreatedAt: nowISO()}
	users[username] = u
	if err := r.store.Save(ctx, usersCollection, users); err != nil {
		return nil, err
	}
	return &u, nil
}

// Usernames returns every registered username, sorted. Used by maintenance
// flows that walk all accounts.
func (r *UserRepository) Usernames(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Verify checks a username/password pair.
func (r *UserRepository) Verify(ctx context.Context, username, password string) (VerifyResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := r.loadUsers(ctx)
	if err != nil {
		return VerifyInvalid, err
	}
	u, ok := users[username]
	if !ok {
		return VerifyNotFound, nil
	}
	if auth.CheckPassword(u.Password, password) {
		return VerifyValid, nil
	}
	return VerifyInvalid, nil
}
