package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "github.com/dynamicsamic/Todo/internal/adapter/db"
)

var (
	migrateFile      string
	migrateDowngrade bool

	loadTodos   int
	loadTasks   int
	loadCleanup bool
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the configured database if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return dbadapter.EnsureDatabase(cmd.Context(), cfg)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded schema migrations",
	Long: `Apply every embedded migration in order, or only the one named with --file.
With --downgrade the down migrations run in reverse order.`,
	RunE: runMigrate,
}

var loadDataCmd = &cobra.Command{
	Use:   "load-data",
	Short: "Insert random sample todos and tasks",
	RunE:  runLoadData,
}

var createTestAppCmd = &cobra.Command{
	Use:   "create-test-app",
	Short: "Create the database, migrate it and load sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := dbadapter.EnsureDatabase(cmd.Context(), cfg); err != nil {
			return err
		}
		if err := runMigrate(cmd, args); err != nil {
			return err
		}
		return runLoadData(cmd, args)
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFile, "file", "", "Apply only this migration, e.g. 000_initial")
	migrateCmd.Flags().BoolVar(&migrateDowngrade, "downgrade", false, "Run down migrations instead of up")

	for _, cmd := range []*cobra.Command{loadDataCmd, createTestAppCmd} {
		cmd.Flags().IntVar(&loadTodos, "todos", 10, "Number of todos to insert")
		cmd.Flags().IntVar(&loadTasks, "tasks", 100, "Number of tasks to insert into the first todo")
		cmd.Flags().BoolVar(&loadCleanup, "cleanup", false, "Delete existing todos and tasks first")
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	direction := dbadapter.MigrateUp
	if migrateDowngrade {
		direction = dbadapter.MigrateDown
	}
	return dbadapter.Migrate(cmd.Context(), db, migrateFile, direction)
}

func runLoadData(cmd *cobra.Command, args []string) error {
	if loadTodos < 0 || loadTasks < 0 {
		return fmt.Errorf("--todos and --tasks must not be negative")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	if loadCleanup {
		if err := dbadapter.CleanupData(ctx, db); err != nil {
			return err
		}
	}
	if err := dbadapter.LoadSampleData(ctx, db, loadTodos, loadTasks, nowInLocation()); err != nil {
		return err
	}
	zap.L().Info("sample data loaded", zap.Int("todos", loadTodos), zap.Int("tasks", loadTasks))
	return nil
}

func nowInLocation() time.Time {
	return time.Now().In(cfg.Location())
}
