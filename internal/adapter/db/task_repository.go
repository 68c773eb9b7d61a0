package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/dynamicsamic/Todo/internal/adapter/db/sqlbuilder"
	"github.com/dynamicsamic/Todo/internal/core/domain"
	"github.com/dynamicsamic/Todo/internal/core/ports"
)

const (
	castTaskStatus   sqlbuilder.Cast = "::task_status"
	castTaskPriority sqlbuilder.Cast = "::task_priority"
)

var tasksTable = Table{
	Name:       "tasks",
	PrimaryKey: "task_id",
	Columns: []string{
		"task_id", "brief", "todo_id", "contents", "status",
		"priority", "category", "due", "created_at", "updated_at",
	},
	NotFound: domain.ErrTaskNotFound,
}

type TaskRepository struct {
	base *Repository[domain.TaskRow]
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{base: NewRepository[domain.TaskRow](db, tasksTable)}
}

func (r *TaskRepository) FetchOne(ctx context.Context, taskID int64) (*domain.TaskRow, error) {
	return r.base.FetchOne(ctx, taskID)
}

func (r *TaskRepository) FetchMany(ctx context.Context, page domain.ListParams, filters domain.TaskFilters) ([]domain.TaskRow, error) {
	return r.base.FetchMany(ctx, page.Limit, page.Offset, nil, taskFilters(filters))
}

func (r *TaskRepository) InsertOne(ctx context.Context, input domain.CreateTaskInput) (*domain.TaskRow, error) {
	return r.base.InsertOne(ctx, taskInsertFields(input))
}

func (r *TaskRepository) InsertMany(ctx context.Context, inputs []domain.CreateTaskInput) ([]domain.TaskRow, error) {
	rows := make([][]sqlbuilder.Field, 0, len(inputs))
	for _, input := range inputs {
		rows = append(rows, taskInsertFields(input))
	}
	return r.base.InsertMany(ctx, rows)
}

func (r *TaskRepository) UpdateOne(ctx context.Context, taskID int64, input domain.UpdateTaskInput) (*domain.TaskRow, error) {
	return r.base.UpdateOne(ctx, taskID, taskUpdateFields(input))
}

func (r *TaskRepository) DeleteOne(ctx context.Context, taskID int64) (int64, error) {
	return r.base.DeleteOne(ctx, taskID)
}

func (r *TaskRepository) Estimate(ctx context.Context) (int64, error) {
	return r.base.Estimate(ctx)
}

// taskFilters is the cast table of the tasks columns.
func taskFilters(f domain.TaskFilters) []sqlbuilder.Filter {
	return []sqlbuilder.Filter{
		{Column: "task_id", Cast: sqlbuilder.CastInt, Values: anyValues(f.TaskID)},
		{Column: "todo_id", Cast: sqlbuilder.CastInt, Values: anyValues(f.TodoID)},
		{Column: "brief", Cast: sqlbuilder.CastNone, Values: anyValues(f.Brief)},
		{Column: "category", Cast: sqlbuilder.CastNone, Values: anyValues(f.Category)},
		{Column: "status", Cast: castTaskStatus, Values: stringValues(f.Status)},
		{Column: "priority", Cast: castTaskPriority, Values: stringValues(f.Priority)},
		{Column: "due", Cast: sqlbuilder.CastTimestamp, Values: anyValues(f.Due)},
		{Column: "created_at", Cast: sqlbuilder.CastTimestamp, Values: anyValues(f.CreatedAt)},
		{Column: "updated_at", Cast: sqlbuilder.CastTimestamp, Values: anyValues(f.UpdatedAt)},
	}
}

func taskInsertFields(input domain.CreateTaskInput) []sqlbuilder.Field {
	var due any
	if input.Due != nil {
		due = *input.Due
	}
	var contents any
	if input.Contents != nil {
		contents = *input.Contents
	}
	return []sqlbuilder.Field{
		{Column: "brief", Value: input.Brief},
		{Column: "todo_id", Value: input.TodoID},
		{Column: "category", Value: input.Category},
		{Column: "due", Value: due},
		{Column: "contents", Value: contents},
		{Column: "status", Value: string(input.Status)},
		{Column: "priority", Value: string(input.Priority)},
	}
}

func taskUpdateFields(input domain.UpdateTaskInput) []sqlbuilder.Field {
	var fields []sqlbuilder.Field
	if input.Brief != nil {
		fields = append(fields, sqlbuilder.Field{Column: "brief", Value: *input.Brief})
	}
	if input.TodoID != nil {
		fields = append(fields, sqlbuilder.Field{Column: "todo_id", Value: *input.TodoID})
	}
	if input.Contents != nil {
		fields = append(fields, sqlbuilder.Field{Column: "contents", Value: *input.Contents})
	}
	if input.Status != nil {
		fields = append(fields, sqlbuilder.Field{Column: "status", Value: string(*input.Status)})
	}
	if input.Priority != nil {
		fields = append(fields, sqlbuilder.Field{Column: "priority", Value: string(*input.Priority)})
	}
	if input.Category != nil {
		fields = append(fields, sqlbuilder.Field{Column: "category", Value: *input.Category})
	}
	if input.Due != nil {
		fields = append(fields, sqlbuilder.Field{Column: "due", Value: *input.Due})
	}
	if input.CreatedAt != nil {
		fields = append(fields, sqlbuilder.Field{Column: "created_at", Value: *input.CreatedAt})
	}
	if input.UpdatedAt != nil {
		fields = append(fields, sqlbuilder.Field{Column: "updated_at", Value: *input.UpdatedAt})
	}
	return fields
}
