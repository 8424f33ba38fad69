// Package main is the entry point for the restro-admin application. It
// registers the back-office sub-commands (super-admin creation, the
// subscription expiry sweep and demo seeding) and executes the CLI.
package main

import (
	"fmt"
	"log"

	"github.com/ravipangali7/My-Restro-Server/cmd/restro-admin/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "restro-admin",
		Short: "Restaurant platform back-office CLI",
		Long: `restro-admin is the operational companion to the REST server.
It creates super-admin accounts, runs the nightly subscription expiry sweep
and can seed a demo tenant for local development.

Configuration is read from CONFIG_PATH (default ./configs/rest-app.yaml),
with RESTRO_-prefixed environment variables taking precedence.`,
	}

	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}
	if err := commands.InitSubscriptionCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize subscription commands: %w", err)
	}
	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
