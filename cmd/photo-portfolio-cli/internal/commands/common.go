package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/persistence"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/config"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const configFlag = "config"

// AddConfigFlag registers the --config flag shared by every command
func AddConfigFlag(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(configFlag, os.Getenv("CONFIG_PATH"), "Path to the YAML config file (defaults to $CONFIG_PATH)")
}

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// storeSession is the configuration and open database a command works on
type storeSession struct {
	cfg    *config.RestConfig
	db     *gorm.DB
	logger logger.Logger
}

// openStore loads the configuration named by --config, connects to the
// database and brings its schema up to date
func openStore(cmd *cobra.Command) (*storeSession, error) {
	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}

	return &storeSession{cfg: cfg, db: db, logger: loggerInstance}, nil
}

func (s *storeSession) Close() {
	if err := persistence.CloseDB(s.db); err != nil {
		s.logger.Warn("failed to close database", "error", err)
	}
}
