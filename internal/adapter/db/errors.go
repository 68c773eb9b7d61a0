package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dynamicsamic/Todo/internal/core/domain"
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

var (
	ErrNoFields      = errors.New("no fields to write")
	ErrUnknownColumn = errors.New("unknown column")
)

// classifyError tags constraint violations with domain errors while keeping
// the driver error in the chain.
func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case sqlStateUniqueViolation:
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	case sqlStateForeignKeyViolation:
		return fmt.Errorf("%w: %w", domain.ErrInvalidReference, err)
	default:
		return err
	}
}
