package ports

import (
	"context"

	"github.com/dynamicsamic/Todo/internal/core/domain"
)

type TodoRepository interface {
	FetchOne(ctx context.Context, todoID int64, prefetchTasks int) (*domain.TodoRow, error)
	FetchMany(ctx context.Context, page domain.ListParams, filters domain.TodoFilters) ([]domain.TodoRow, error)
	InsertOne(ctx context.Context, input domain.CreateTodoInput) (*domain.TodoRow, error)
	UpdateOne(ctx context.Context, todoID int64, input domain.UpdateTodoInput) (*domain.TodoRow, error)
	DeleteOne(ctx context.Context, todoID int64) (int64, error)
	Estimate(ctx context.Context) (int64, error)
}

type TodoService interface {
	GetOne(ctx context.Context, query domain.GetTodoQuery) (*domain.Todo, error)
	GetMany(ctx context.Context, query domain.ListTodosQuery) ([]domain.Todo, error)
	Create(ctx context.Context, input domain.CreateTodoInput) (*domain.Todo, error)
	Update(ctx context.Context, query domain.UpdateTodoQuery) (*domain.Todo, error)
	Delete(ctx context.Context, query domain.DeleteTodoQuery) error
	Estimate(ctx context.Context) (int64, error)
}
