package ports

import (
	"context"

	"github.com/dynamicsamic/Todo/internal/core/domain"
)

type TaskRepository interface {
	FetchOne(ctx context.Context, taskID int64) (*domain.TaskRow, error)
	FetchMany(ctx context.Context, page domain.ListParams, filters domain.TaskFilters) ([]domain.TaskRow, error)
	InsertOne(ctx context.Context, input domain.CreateTaskInput) (*domain.TaskRow, error)
	UpdateOne(ctx context.Context, taskID int64, input domain.UpdateTaskInput) (*domain.TaskRow, error)
	DeleteOne(ctx context.Context, taskID int64) (int64, error)
	Estimate(ctx context.Context) (int64, error)
}

type TaskService interface {
	GetOne(ctx context.Context, query domain.GetTaskQuery) (*domain.Task, error)
	GetMany(ctx context.Context, query domain.ListTasksQuery) ([]domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, query domain.UpdateTaskQuery) (*domain.Task, error)
	Delete(ctx context.Context, query domain.DeleteTaskQuery) error
	Estimate(ctx context.Context) (int64, error)
}
