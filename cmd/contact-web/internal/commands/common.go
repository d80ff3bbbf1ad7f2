package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/contact-web/internal/pkg/config"
	"github.com/MGTheTrain/contact-web/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const configFlag = "config"

// AddConfigFlag registers the --config flag shared by every sub-command
func AddConfigFlag(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Path to the config file (defaults to $CONFIG_PATH)")
}

// loadConfig reads the configuration and initializes the logger from it
func loadConfig(cmd *cobra.Command) (*config.AppConfig, logger.Logger, error) {
	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid config flag: %w", err)
	}
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.InitializeAppConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get logger: %w", err)
	}

	return cfg, log, nil
}
