package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"tasktracker/internal/store"
	"tasktracker/models"
)

// Collection names in the store. Each holds a mapping from username to that
// user's records; no record is visible across users.
const (
	usersCollection    = "users"
	projectsCollection = "projects"
	tasksCollection    = "tasks"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// nowISO formats the current time the way existing data files record it.
func nowISO() string {
	return time.Now().UTC().Format(isoMillis)
}

var (
	idMu   sync.Mutex
	lastID int64
)

// newID returns a millisecond-epoch string id, the format already on disk.
// Calls landing in the same millisecond are bumped so ids generated by this
// process never collide.
func newID() string {
	idMu.Lock()
	defer idMu.Unlock()
	ms := time.Now().UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return strconv.FormatInt(ms, 10)
}

func loadProjects(ctx context.Context, st store.Store) (map[string][]models.Project, error) {
	m := map[string][]models.Project{}
	if err := st.Load(ctx, projectsCollection, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func loadTasks(ctx context.Context, st store.Store) (map[string][]models.Task, error) {
	m := map[string][]models.Task{}
	if err := st.Load(ctx, tasksCollection, &m); err != nil {
		return nil, err
	}
	return m, nil
}
