// Package main is the entry point for the photo-portfolio-cli application.
// It manages admin accounts and prepares the database of the site.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/photo-portfolio/cmd/photo-portfolio-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "photo-portfolio-cli",
		Short: "Administration tool for the photo portfolio site",
		Long: `photo-portfolio-cli manages the accounts of the admin panel and prepares
the database of the site.

It reads the same YAML configuration as the REST server. Pass it with --config
or set CONFIG_PATH; PORTFOLIO_* environment variables override file values.`,
		SilenceUsage: true,
	}

	commands.AddConfigFlag(rootCmd)

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	if err := commands.InitSiteCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize site commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
