package repository

import (
	"context"
	"fmt"

	"tasktracker/internal/store"
	"tasktracker/models"
)

// TaskUpdate carries the fields of a partial task edit. Nil means "leave
// unchanged". When Status is set, Completed is recomputed from it and any
// Completed value here is ignored; Completed alone is applied as given.
type TaskUpdate struct {
	Title     *string
	Status    *models.TaskStatus
	Completed *bool
}

// TaskRepository manages a user's ordered task list.
type TaskRepository struct {
	store store.Store
	locks *UserLocks
}

// NewTaskRepository creates a TaskRepository sharing the given lock table.
func NewTaskRepository(st store.Store, locks *UserLocks) *TaskRepository {
	return &TaskRepository{store: st, locks: locks}
}

// List returns the user's tasks in insertion order. A non-empty projectID
// filters to tasks under that project.
func (r *TaskRepository) List(ctx context.Context, username, projectID string) ([]models.Task, error) {
	unlock := r.locks.Acquire(username)
	defer unlock()
	m, err := loadTasks(ctx, r.store)
	if err != nil {
		return nil, err
	}
	return filterTasks(m[username], projectID), nil
}

func filterTasks(list []models.Task, projectID string) []models.Task {
	out := make([]models.Task, 0, len(list))
	for _, t := range list {
		if projectID == "" || t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// Add appends a new task. Status defaults to todo; Completed is derived from
// the status, never taken from the caller.
func (r *TaskRepository) Add(ctx context.Context, username, projectID, title string, status models.TaskStatus) (*models.Task, error) {
	if projectID == "" || title == "" {
		return nil, fmt.Errorf("%w: project id and title", ErrValidation)
	}
	if status == "" {
		status = models.StatusTodo
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	unlock := r.locks.Acquire(username)
	defer unlock()
	m, err := loadTasks(ctx, r.store)
	if err != nil {
		return nil, err
	}
	now := nowISO()
	t := models.Task{
		ID:        newID(),
		ProjectID: projectID,
		Title:     title,
		Status:    status,
		Completed: models.IsCompleted(status),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m[username] = append(m[username], t)
	if err := r.store.Save(ctx, tasksCollection, m); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update applies a partial edit and refreshes UpdatedAt. Returns nil (no
// error) if the id is not present in the user's scope.
func (r *TaskRepository) Update(ctx context.Context, username, id string, upd TaskUpdate) (*models.Task, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *upd.Status)
	}
	unlock := r.locks.Acquire(username)
	defer unlock()
	m, err := loadTasks(ctx, r.store)
	if err != nil {
		return nil, err
	}
	list := m[username]
	for i := range list {
		if list[i].ID != id {
			continue
		}
		t := &list[i]
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Status != nil {
			t.Status = *upd.Status
			t.Completed = models.IsCompleted(*upd.Status)
		} else if upd.Completed != nil {
			t.Completed = *upd.Completed
		}
		t.UpdatedAt = nowISO()
		m[username] = list
		if err := r.store.Save(ctx, tasksCollection, m); err != nil {
			return nil, err
		}
		out := *t
		return &out, nil
	}
	return nil, nil
}

// Delete removes the task if present; absent ids are a no-op.
func (r *TaskRepository) Delete(ctx context.Context, username, id string) error {
	unlock := r.locks.Acquire(username)
	defer unlock()
	m, err := loadTasks(ctx, r.store)
	if err != nil {
		return err
	}
	kept := m[username][:0:0]
	for _, t := range m[username] {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	m[username] = kept
	return r.store.Save(ctx, tasksCollection, m)
}

// MigrateStatuses upgrades records written before the status enum existed:
// status is derived from the completed flag and missing timestamps are
// backfilled. The collection is persisted only when something changed, so the
// pass is idempotent. Returns the user's full (migrated) task list.
func (r *TaskRepository) MigrateStatuses(ctx context.Context, username string) ([]models.Task, error) {
	unlock := r.locks.Acquire(username)
	defer unlock()
	m, err := loadTasks(ctx, r.store)
	if err != nil {
		return nil, err
	}
	list := m[username]
	changed := false
	now := nowISO()
	for i := range list {
		t := &list[i]
		if t.Status != "" {
			continue
		}
		changed = true
		if t.Completed {
			t.Status = models.StatusDone
		} else {
			t.Status = models.StatusTodo
		}
		if t.CreatedAt == "" {
			t.CreatedAt = now
		}
		if t.UpdatedAt == "" {
			t.UpdatedAt = now
		}
	}
	if changed {
		m[username] = list
		if err := r.store.Save(ctx, tasksCollection, m); err != nil {
			return nil, err
		}
	}
	// Non-nil even when empty so the list serializes as [].
	return append([]models.Task{}, list...), nil
}
