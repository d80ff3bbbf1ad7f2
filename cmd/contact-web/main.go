// Package main is the entry point for the contact-web application.
// It registers the serve, migrate and routes sub-commands and executes the CLI.
package main

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/contact-web/cmd/contact-web/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "contact-web",
		Short: "Contact form web application",
		Long: `contact-web serves a contact form that validates submissions and mails a
confirmation to the submitter, next to a small CRUD application backed by a
relational database.

Configuration is read from the file given by --config (or CONFIG_PATH) and the
environment, e.g. SECRET_KEY, SECRET_FILE, MAIL_SERVER, MAIL_USERNAME,
DATABASE_TYPE and DATABASE_DSN.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.AddConfigFlag(rootCmd)
	commands.InitServeCommand(rootCmd)
	commands.InitMigrateCommand(rootCmd)
	commands.InitRoutesCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
