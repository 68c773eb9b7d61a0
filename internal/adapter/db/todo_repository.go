package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dynamicsamic/Todo/internal/adapter/db/sqlbuilder"
	"github.com/dynamicsamic/Todo/internal/core/domain"
	"github.com/dynamicsamic/Todo/internal/core/ports"
)

const (
	castTodoStatus sqlbuilder.Cast = "::todo_status"

	prefetchTasksQuery = "SELECT * FROM tasks WHERE todo_id = $1 ORDER BY task_id LIMIT $2"
)

var todosTable = Table{
	Name:       "todos",
	PrimaryKey: "todo_id",
	Columns:    []string{"todo_id", "owner", "status", "created_at", "updated_at"},
	NotFound:   domain.ErrTodoNotFound,
}

type TodoRepository struct {
	db   *sqlx.DB
	base *Repository[domain.TodoRow]
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db, base: NewRepository[domain.TodoRow](db, todosTable)}
}

// FetchOne loads a todo and, when prefetchTasks is positive, up to that many
// of its tasks ordered by id in the same transaction. Tasks stays nil when
// nothing was requested.
func (r *TodoRepository) FetchOne(ctx context.Context, todoID int64, prefetchTasks int) (*domain.TodoRow, error) {
	if prefetchTasks <= 0 {
		return r.base.FetchOne(ctx, todoID)
	}

	var todo domain.TodoRow
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := r.base.get(ctx, tx, &todo, sqlbuilder.SelectByKey(todosTable.Name, todosTable.PrimaryKey), todoID); err != nil {
			return err
		}

		tasks := make([]domain.TaskRow, 0)
		start := time.Now()
		err := tx.SelectContext(ctx, &tasks, prefetchTasksQuery, todoID, prefetchTasks)
		logQuery(prefetchTasksQuery, []any{todoID, prefetchTasks}, start)
		if err != nil {
			return err
		}
		todo.Tasks = tasks
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *TodoRepository) FetchMany(ctx context.Context, page domain.ListParams, filters domain.TodoFilters) ([]domain.TodoRow, error) {
	return r.base.FetchMany(ctx, page.Limit, page.Offset, nil, todoFilters(filters))
}

func (r *TodoRepository) InsertOne(ctx context.Context, input domain.CreateTodoInput) (*domain.TodoRow, error) {
	return r.base.InsertOne(ctx, todoInsertFields(input))
}

func (r *TodoRepository) InsertMany(ctx context.Context, inputs []domain.CreateTodoInput) ([]domain.TodoRow, error) {
	rows := make([][]sqlbuilder.Field, 0, len(inputs))
	for _, input := range inputs {
		rows = append(rows, todoInsertFields(input))
	}
	return r.base.InsertMany(ctx, rows)
}

func (r *TodoRepository) UpdateOne(ctx context.Context, todoID int64, input domain.UpdateTodoInput) (*domain.TodoRow, error) {
	return r.base.UpdateOne(ctx, todoID, todoUpdateFields(input))
}

func (r *TodoRepository) DeleteOne(ctx context.Context, todoID int64) (int64, error) {
	return r.base.DeleteOne(ctx, todoID)
}

func (r *TodoRepository) Estimate(ctx context.Context) (int64, error) {
	return r.base.Estimate(ctx)
}

// todoFilters is the cast table of the todos columns.
func todoFilters(f domain.TodoFilters) []sqlbuilder.Filter {
	return []sqlbuilder.Filter{
		{Column: "todo_id", Cast: sqlbuilder.CastInt, Values: anyValues(f.TodoID)},
		{Column: "owner", Cast: sqlbuilder.CastNone, Values: anyValues(f.Owner)},
		{Column: "status", Cast: castTodoStatus, Values: stringValues(f.Status)},
		{Column: "created_at", Cast: sqlbuilder.CastTimestamp, Values: anyValues(f.CreatedAt)},
		{Column: "updated_at", Cast: sqlbuilder.CastTimestamp, Values: anyValues(f.UpdatedAt)},
	}
}

func todoInsertFields(input domain.CreateTodoInput) []sqlbuilder.Field {
	return []sqlbuilder.Field{
		{Column: "owner", Value: input.Owner},
		{Column: "status", Value: string(input.Status)},
	}
}

func todoUpdateFields(input domain.UpdateTodoInput) []sqlbuilder.Field {
	var fields []sqlbuilder.Field
	if input.Owner != nil {
		fields = append(fields, sqlbuilder.Field{Column: "owner", Value: *input.Owner})
	}
	if input.Status != nil {
		fields = append(fields, sqlbuilder.Field{Column: "status", Value: string(*input.Status)})
	}
	if input.CreatedAt != nil {
		fields = append(fields, sqlbuilder.Field{Column: "created_at", Value: *input.CreatedAt})
	}
	if input.UpdatedAt != nil {
		fields = append(fields, sqlbuilder.Field{Column: "updated_at", Value: *input.UpdatedAt})
	}
	return fields
}

func anyValues[T any](values []T) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func stringValues[T ~string](values []T) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}
