package repository

import "sync"

// UserLocks serializes read-modify-write cycles per username. Every project
// and task operation rewrites a whole per-user collection, so two concurrent
// writers for the same user would otherwise lose updates. One instance is
// shared by every repository over the same store.
//
// The serialization is in-process only. Two processes pointed at the same
// data directory still race; that remains an accepted limitation.
type UserLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

// NewUserLocks returns an empty lock table.
func NewUserLocks() *UserLocks {
	return &UserLocks{m: make(map[string]*sync.Mutex)}
}

// Acquire locks the given username and returns the unlock function.
func (l *UserLocks) Acquire(username string) func() {
	l.mu.Lock()
	um, ok := l.m[username]
	if !ok {
		um = &sync.Mutex{}
		l.m[username] = um
	}
	l.mu.Unlock()
	um.Lock()
	return um.Unlock
}
