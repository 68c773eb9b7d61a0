package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

type MigrationDirection string

const (
	MigrateUp   MigrationDirection = "up"
	MigrateDown MigrationDirection = "down"
)

// Migrations lists the embedded migration names in apply order for the
// given direction.
func Migrations(direction MigrationDirection) ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, err
	}

	suffix := "." + string(direction) + ".sql"
	var names []string
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), suffix); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	if direction == MigrateDown {
		slices.Reverse(names)
	}
	return names, nil
}

// Migrate applies one named migration, or every migration when name is empty,
// each inside its own transaction.
func Migrate(ctx context.Context, db *sqlx.DB, name string, direction MigrationDirection) error {
	names := []string{name}
	if name == "" {
		var err error
		if names, err = Migrations(direction); err != nil {
			return err
		}
	}

	for _, n := range names {
		content, err := migrationFiles.ReadFile("migrations/" + n + "." + string(direction) + ".sql")
		if err != nil {
			return fmt.Errorf("read migration %s: %w", n, err)
		}
		err = inTx(ctx, db, func(tx *sqlx.Tx) error {
			_, err := tx.ExecContext(ctx, string(content))
			return err
		})
		if err != nil {
			return fmt.Errorf("apply %s migration %s: %w", direction, n, err)
		}
		zap.L().Info("migration applied", zap.String("name", n), zap.String("direction", string(direction)))
	}
	return nil
}
