package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"tasktracker/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [username]",
	Short: "Backfill task statuses and timestamps",
	Long: `Upgrade task records written before the status field existed: status is
derived from the completed flag and missing timestamps are filled in. With a
username, only that user's tasks are touched; without one, every account is
walked. Safe to run repeatedly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()
	ctx := context.Background()

	var usernames []string
	if len(args) == 1 {
		u, err := a.users.Get(ctx, args[0])
		if err != nil {
			return err
		}
		if u == nil {
			return fmt.Errorf("%w: user %q", repository.ErrNotFound, args[0])
		}
		usernames = args
	} else {
		usernames, err = a.users.Usernames(ctx)
		if err != nil {
			return err
		}
	}

	for _, username := range usernames {
		tasks, err := a.tasks.MigrateStatuses(ctx, username)
		if err != nil {
			return fmt.Errorf("migrate %s: %w", username, err)
		}
		fmt.Printf("%s: %d tasks\n", username, len(tasks))
	}
	return nil
}
