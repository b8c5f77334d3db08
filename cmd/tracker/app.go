package main

import (
	"fmt"

	"tasktracker/internal/config"
	"tasktracker/internal/store"
	"tasktracker/repository"
)

// app holds the wired-up backend shared by all subcommands.
type app struct {
	cfg      *config.Config
	users    *repository.UserRepository
	projects *repository.ProjectRepository
	tasks    *repository.TaskRepository
	closeFn  func() error
}

func newApp() (*app, error) {
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var st store.Store
	closeFn := func() error { return nil }
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		s, err := store.OpenSQLite(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		st = s
		closeFn = s.Close
	default:
		st = store.NewFileStore(cfg.Store.Dir)
	}

	locks := repository.NewUserLocks()
	return &app{
		cfg:      cfg,
		users:    repository.NewUserRepository(st),
		projects: repository.NewProjectRepository(st, locks),
		tasks:    repository.NewTaskRepository(st, locks),
		closeFn:  closeFn,
	}, nil
}

func (a *app) Close() error {
	return a.closeFn()
}
