package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dynamicsamic/Todo/internal/config"
)

var (
	debugLogs bool
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "todos",
	Short: "Todo lists and tasks REST service",
	Long: `Serves todo lists and their tasks over HTTP and manages the PostgreSQL
database behind them.

Configuration is read from .env and the environment (PG_HOST, PG_DB,
APP_PORT, APP_TIMEZONE, ...).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(debugLogs)
		if err != nil {
			return err
		}
		// Make zap available to packages that log through zap.L().
		zap.ReplaceGlobals(logger)

		cfg = config.LoadConfig()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Log at debug level, including every SQL statement")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initDBCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(loadDataCmd)
	rootCmd.AddCommand(createTestAppCmd)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
