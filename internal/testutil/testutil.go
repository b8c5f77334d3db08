package testutil

import (
	"testing"
	"time"

	"tasktracker/internal/auth"
	"tasktracker/internal/store"
	"tasktracker/repository"
)

// TestSecret signs every token issued in tests.
const TestSecret = "test-secret"

// Env bundles a file-backed store, the three repositories over it, and a
// session issuer, wired the same way the server wires them.
type Env struct {
	Store    store.Store
	Users    *repository.UserRepository
	Projects *repository.ProjectRepository
	Tasks    *repository.TaskRepository
	Issuer   *auth.Issuer
}

// NewEnv builds an Env rooted in a per-test temp directory.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	st := store.NewFileStore(t.TempDir())
	locks := repository.NewUserLocks()
	return &Env{
		Store:    st,
		Users:    repository.NewUserRepository(st),
		Projects: repository.NewProjectRepository(st, locks),
		Tasks:    repository.NewTaskRepository(st, locks),
		Issuer:   auth.NewIssuer(TestSecret, time.Hour),
	}
}

// SignToken returns a valid token for username, signed with TestSecret.
func (e *Env) SignToken(t *testing.T, username string) string {
	t.Helper()
	tok, err := e.Issuer.Issue(username)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}
