package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/dynamicsamic/Todo/internal/config"
)

const (
	driverName = "pgx"

	sqlStateInvalidCatalogName = "3D000"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect(driverName, conf.DatabaseURL())
	if err != nil {
		return nil, err
	}

	if conf.DbMaxOpenConns > 0 {
		db.SetMaxOpenConns(conf.DbMaxOpenConns)
	}
	if conf.DbMinIdleConns > 0 {
		db.SetMaxIdleConns(conf.DbMinIdleConns)
	}

	return db, nil
}

// EnsureDatabase creates the configured database when connecting to it fails
// because it does not exist yet.
func EnsureDatabase(ctx context.Context, conf *config.Config) error {
	zap.L().Info("connecting to database", zap.String("database", conf.DbName))
	db, err := sqlx.ConnectContext(ctx, driverName, conf.DatabaseURL())
	if err == nil {
		return db.Close()
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != sqlStateInvalidCatalogName {
		return fmt.Errorf("connect to %s: %w", conf.DbName, err)
	}

	zap.L().Info("database does not exist, creating it", zap.String("database", conf.DbName))
	admin, err := sqlx.ConnectContext(ctx, driverName, conf.AdminDatabaseURL())
	if err != nil {
		return fmt.Errorf("connect to maintenance database: %w", err)
	}
	defer func() {
		if err := admin.Close(); err != nil {
			zap.L().Warn("failed to close maintenance connection", zap.Error(err))
		}
	}()

	if _, err := admin.ExecContext(ctx, "CREATE DATABASE "+pgx.Identifier{conf.DbName}.Sanitize()); err != nil {
		return fmt.Errorf("create database %s: %w", conf.DbName, err)
	}
	zap.L().Info("database created", zap.String("database", conf.DbName))
	return nil
}

// DropDatabase removes the configured database. Used by test tooling.
func DropDatabase(ctx context.Context, conf *config.Config) error {
	admin, err := sqlx.ConnectContext(ctx, driverName, conf.AdminDatabaseURL())
	if err != nil {
		return fmt.Errorf("connect to maintenance database: %w", err)
	}
	defer admin.Close()

	_, err = admin.ExecContext(ctx, "DROP DATABASE IF EXISTS "+pgx.Identifier{conf.DbName}.Sanitize())
	return err
}
