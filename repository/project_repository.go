package repository

import (
	"context"
	"fmt"

	"tasktracker/internal/store"
	"tasktracker/models"
)

// ProjectRepository manages a user's ordered project list.
type ProjectRepository struct {
	store store.Store
	locks *UserLocks
}

// NewProjectRepository creates a ProjectRepository. The lock table must be
// the same instance handed to the TaskRepository so cascade deletes and task
// writes for one user serialize against each other.
func NewProjectRepository(st store.Store, locks *UserLocks) *ProjectRepository {
	return &ProjectRepository{store: st, locks: locks}
}

// List returns the user's projects in insertion order.
func (r *ProjectRepository) List(ctx context.Context, username string) ([]models.Project, error) {
	unlock := r.locks.Acquire(username)
	defer unlock()
	m, err := loadProjects(ctx, r.store)
	if err != nil {
		return nil, err
	}
	// Non-nil even when empty so the list serializes as [].
	return append([]models.Project{}, m[username]...), nil
}

// Add appends a new project with a generated id and persists.
func (r *ProjectRepository) Add(ctx context.Context, username, name string) (*models.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: project name", ErrValidation)
	}
	unlock := r.locks.Acquire(username)
	defer unlock()
	m, err := loadProjects(ctx, r.store)
	if err != nil {
		return nil, err
	}
	p := models.Project{ID: newID(), Name: name}
	m[username] = append(m[username], p)
	if err := r.store.Save(ctx, projectsCollection, m); err != nil {
		return nil, err
	}
	return &p, nil
}

// Rename updates the project's name. Returns nil (no error) if the id is not
// present in the user's scope.
func (r *ProjectRepository) Rename(ctx context.Context, username, id, name string) (*models.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: project name", ErrValidation)
	}
	unlock := r.locks.Acquire(username)
	defer unlock()
	m, err := loadProjects(ctx, r.store)
	if err != nil {
		return nil, err
	}
	list := m[username]
	for i := range list {
		if list[i].ID == id {
			list[i].Name = name
			m[username] = list
			if err := r.store.Save(ctx, projectsCollection, m); err != nil {
				return nil, err
			}
			p := list[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Delete removes the project and every task referencing it in the same
// logical operation. Deleting an absent project is a no-op (the cascade still
// runs, which is harmless since nothing can reference an id that never existed).
func (r *ProjectRepository) Delete(ctx context.Context, username, id string) error {
	unlock := r.locks.Acquire(username)
	defer unlock()
	m, err := loadProjects(ctx, r.store)
	if err != nil {
		return err
	}
	kept := m[username][:0:0]
	for _, p := range m[username] {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m[username] = kept
	if err := r.store.Save(ctx, projectsCollection, m); err != nil {
		return err
	}

	tasks, err := loadTasks(ctx, r.store)
	if err != nil {
		return err
	}
	keptTasks := tasks[username][:0:0]
	for _, t := range tasks[username] {
		if t.ProjectID != id {
			keptTasks = append(keptTasks, t)
		}
	}
	tasks[username] = keptTasks
	return r.store.Save(ctx, tasksCollection, tasks)
}
