package repository

import (
	"context"

	"tasktracker/models"
)

// UserRepositoryI defines operations on User records.
type UserRepositoryI interface {
	Get(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, username, password string) (*models.User, error)
	Verify(ctx context.Context, username, password string) (VerifyResult, error)
}

// ProjectRepositoryI defines operations on a user's projects.
type ProjectRepositoryI interface {
	List(ctx context.Context, username string) ([]models.Project, error)
	Add(ctx context.Context, username, name string) (*models.Project, error)
	Rename(ctx context.Context, username, id, name string) (*models.Project, error)
	Delete(ctx context.Context, username, id string) error
}

// TaskRepositoryI defines operations on a user's tasks.
// List and MigrateStatuses take projectID == "" to mean all projects.
type TaskRepositoryI interface {
	List(ctx context.Context, username, projectID string) ([]models.Task, error)
	Add(ctx context.Context, username, projectID, title string, status models.TaskStatus) (*models.Task, error)
	Update(ctx context.Context, username, id string, upd TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, username, id string) error
	MigrateStatuses(ctx context.Context, username string) ([]models.Task, error)
}
