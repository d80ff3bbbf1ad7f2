package commands

import (
	"fmt"

	"github.com/MGTheTrain/contact-web/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// InitMigrateCommand registers the migrate command
func InitMigrateCommand(rootCmd *cobra.Command) {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  runMigrate,
	}
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		return err
	}

	log.Info("Database migrations completed successfully")
	fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s database\n", cfg.Database.Type)
	return nil
}
