package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dynamicsamic/Todo/internal/adapter/db/sqlbuilder"
)

// insertBatchRows keeps multi-row inserts under the 65535 bind parameter limit
// for every table this package knows about.
const insertBatchRows = 1000

// Table describes the storage table behind a Repository.
type Table struct {
	Name       string
	PrimaryKey string
	Columns    []string
	// NotFound is returned when a lookup or mutation by key matches no row.
	NotFound error
}

// Repository is the generic CRUD engine shared by every entity. R is the row
// model scanned from the table.
type Repository[R any] struct {
	db    *sqlx.DB
	table Table
}

func NewRepository[R any](db *sqlx.DB, table Table) *Repository[R] {
	return &Repository[R]{db: db, table: table}
}

func (r *Repository[R]) Table() Table {
	return r.table
}

func (r *Repository[R]) FetchOne(ctx context.Context, pk int64) (*R, error) {
	var row R
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return r.get(ctx, tx, &row, sqlbuilder.SelectByKey(r.table.Name, r.table.PrimaryKey), pk)
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FetchMany pages with keyset semantics: only rows whose primary key is above
// offset are returned, whatever the requested order. Without orderBy the rows
// come back by ascending primary key.
func (r *Repository[R]) FetchMany(
	ctx context.Context,
	limit int,
	offset int64,
	orderBy []sqlbuilder.OrderBy,
	filters []sqlbuilder.Filter,
) ([]R, error) {
	if len(orderBy) == 0 {
		orderBy = []sqlbuilder.OrderBy{{Column: r.table.PrimaryKey}}
	}
	for _, o := range orderBy {
		if err := r.checkColumn(o.Column); err != nil {
			return nil, err
		}
	}
	for _, f := range filters {
		if err := r.checkColumn(f.Column); err != nil {
			return nil, err
		}
	}

	where := r.table.PrimaryKey + " > $2"
	args := []any{limit, offset}
	if predicate, filterArgs := sqlbuilder.FilterPredicate(filters, 3); predicate != "" {
		where += " AND " + predicate
		args = append(args, filterArgs...)
	}
	query := sqlbuilder.SelectFiltered(r.table.Name, nil, where, orderBy, false)

	rows := make([]R, 0, limit)
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		start := time.Now()
		defer logQuery(query, args, start)
		return tx.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository[R]) InsertOne(ctx context.Context, fields []sqlbuilder.Field) (*R, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	columns, values := sqlbuilder.Fields(fields)
	query := sqlbuilder.Insert(r.table.Name, columns, 1)

	var row R
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		start := time.Now()
		defer logQuery(query, values, start)
		return tx.GetContext(ctx, &row, query, values...)
	})
	if err != nil {
		return nil, classifyError(err)
	}
	return &row, nil
}

// InsertMany writes rows in batches inside one transaction: either every row
// is stored or none is. All rows must list the same columns in the same order.
func (r *Repository[R]) InsertMany(ctx context.Context, rows [][]sqlbuilder.Field) ([]R, error) {
	if len(rows) == 0 {
		return []R{}, nil
	}
	columns, _ := sqlbuilder.Fields(rows[0])
	if len(columns) == 0 {
		return nil, ErrNoFields
	}
	for i, row := range rows {
		rowColumns, _ := sqlbuilder.Fields(row)
		if !slices.Equal(columns, rowColumns) {
			return nil, fmt.Errorf("insert row %d: columns %v do not match %v", i, rowColumns, columns)
		}
	}

	inserted := make([]R, 0, len(rows))
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for batch := range slices.Chunk(rows, insertBatchRows) {
			query := sqlbuilder.Insert(r.table.Name, columns, len(batch))
			args := make([]any, 0, len(batch)*len(columns))
			for _, row := range batch {
				_, values := sqlbuilder.Fields(row)
				args = append(args, values...)
			}

			var out []R
			start := time.Now()
			err := tx.SelectContext(ctx, &out, query, args...)
			logQuery(query, args, start)
			if err != nil {
				return err
			}
			inserted = append(inserted, out...)
		}
		return nil
	})
	if err != nil {
		return nil, classifyError(err)
	}
	return inserted, nil
}

func (r *Repository[R]) UpdateOne(ctx context.Context, pk int64, fields []sqlbuilder.Field) (*R, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	columns, values := sqlbuilder.Fields(fields)
	for _, column := range columns {
		if err := r.checkColumn(column); err != nil {
			return nil, err
		}
	}
	query := sqlbuilder.Update(r.table.Name, r.table.PrimaryKey, columns)

	var row R
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return r.get(ctx, tx, &row, query, append([]any{pk}, values...)...)
	})
	if err != nil {
		return nil, classifyError(err)
	}
	return &row, nil
}

func (r *Repository[R]) DeleteOne(ctx context.Context, pk int64) (int64, error) {
	var deleted int64
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return r.get(ctx, tx, &deleted, sqlbuilder.Delete(r.table.Name, r.table.PrimaryKey), pk)
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// Estimate reads the planner row estimate. A negative estimate means the
// table was never analyzed; it is analyzed once and read again.
func (r *Repository[R]) Estimate(ctx context.Context) (int64, error) {
	query := sqlbuilder.EstimatedCount(r.table.Name)

	var count int64
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &count, query); err != nil {
			return err
		}
		if count >= 0 {
			return nil
		}
		if _, err := tx.ExecContext(ctx, sqlbuilder.Analyze(r.table.Name)); err != nil {
			return err
		}
		return tx.GetContext(ctx, &count, query)
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// get scans a single row and maps an empty result to the table's NotFound error.
func (r *Repository[R]) get(ctx context.Context, tx *sqlx.Tx, dest any, query string, args ...any) error {
	start := time.Now()
	err := tx.GetContext(ctx, dest, query, args...)
	logQuery(query, args, start)
	if errors.Is(err, sql.ErrNoRows) {
		return r.table.NotFound
	}
	return err
}

func (r *Repository[R]) checkColumn(column string) error {
	if !slices.Contains(r.table.Columns, column) {
		return fmt.Errorf("%w %q in table %s", ErrUnknownColumn, column, r.table.Name)
	}
	return nil
}
