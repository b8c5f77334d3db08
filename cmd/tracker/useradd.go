package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var userAddPassword string

var userAddCmd = &cobra.Command{
	Use:   "useradd <username>",
	Short: "Create a user account",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserAdd,
}

func init() {
	userAddCmd.Flags().StringVar(&userAddPassword, "password", "", "password for the new account (required)")
	_ = userAddCmd.MarkFlagRequired("password")
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	u, err := a.users.Create(context.Background(), args[0], userAddPassword)
	if err != nil {
		return err
	}
	fmt.Printf("created user %s\n", u.Username)
	return nil
}
