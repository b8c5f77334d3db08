package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "tracker",
		Short:   "Personal project and task tracker",
		Version: Version,
	}
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(userAddCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
