package db

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type connKey struct{}

// WithConn attaches a checked-out connection to ctx. Repositories run their
// transactions on it instead of taking another connection from the pool.
func WithConn(ctx context.Context, conn *sqlx.Conn) context.Context {
	return context.WithValue(ctx, connKey{}, conn)
}

func ConnFromContext(ctx context.Context) *sqlx.Conn {
	conn, _ := ctx.Value(connKey{}).(*sqlx.Conn)
	return conn
}

type txBeginner interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

func beginner(ctx context.Context, db *sqlx.DB) txBeginner {
	if conn := ConnFromContext(ctx); conn != nil {
		return conn
	}
	return db
}

// inTx runs fn in its own transaction. The transaction is rolled back when fn
// or the commit fails, and when fn panics.
func inTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := beginner(ctx, db).BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
