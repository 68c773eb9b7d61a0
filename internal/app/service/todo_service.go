package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dynamicsamic/Todo/internal/app/validation"
	"github.com/dynamicsamic/Todo/internal/core/domain"
	"github.com/dynamicsamic/Todo/internal/core/ports"
)

var todoOutput = validation.Output[domain.TodoRow, domain.Todo]{
	Schema:  validation.TodoSchema,
	Convert: domain.TodoRow.ToTodo,
}

type TodoService struct {
	todoRepository ports.TodoRepository
	pipeline       *validation.Pipeline
}

func NewTodoService(todoRepository ports.TodoRepository, pipeline *validation.Pipeline) *TodoService {
	return &TodoService{todoRepository: todoRepository, pipeline: pipeline}
}

func (s *TodoService) GetOne(ctx context.Context, query domain.GetTodoQuery) (*domain.Todo, error) {
	return validation.Call(ctx, s.pipeline, query, todoOutput,
		func(ctx context.Context, q domain.GetTodoQuery) (*domain.TodoRow, error) {
			return s.todoRepository.FetchOne(ctx, q.TodoID, q.PrefetchTasks)
		})
}

func (s *TodoService) GetMany(ctx context.Context, query domain.ListTodosQuery) ([]domain.Todo, error) {
	return validation.CallList(ctx, s.pipeline, query, todoOutput,
		func(ctx context.Context, q domain.ListTodosQuery) ([]domain.TodoRow, error) {
			return s.todoRepository.FetchMany(ctx, q.ListParams, q.Filters)
		})
}

func (s *TodoService) Create(ctx context.Context, input domain.CreateTodoInput) (*domain.Todo, error) {
	return validation.Call(ctx, s.pipeline, input, todoOutput,
		func(ctx context.Context, in domain.CreateTodoInput) (*domain.TodoRow, error) {
			row, err := s.todoRepository.InsertOne(ctx, in)
			if err != nil {
				zap.L().Error("failed to create todo", zap.Any("payload", in), zap.Error(err))
			}
			return row, err
		})
}

// Update stamps updated_at with the current time unless the caller sets it.
func (s *TodoService) Update(ctx context.Context, query domain.UpdateTodoQuery) (*domain.Todo, error) {
	return validation.Call(ctx, s.pipeline, query, todoOutput,
		func(ctx context.Context, q domain.UpdateTodoQuery) (*domain.TodoRow, error) {
			if q.Payload.UpdatedAt == nil {
				now := s.pipeline.Now()
				q.Payload.UpdatedAt = &now
			}
			row, err := s.todoRepository.UpdateOne(ctx, q.TodoID, q.Payload)
			if err != nil && !errors.Is(err, domain.ErrTodoNotFound) {
				zap.L().Error("failed to update todo",
					zap.Int64("todo_id", q.TodoID),
					zap.Any("payload", q.Payload),
					zap.Error(err),
				)
			}
			return row, err
		})
}

func (s *TodoService) Delete(ctx context.Context, query domain.DeleteTodoQuery) error {
	_, err := validation.CallInput(ctx, s.pipeline, query,
		func(ctx context.Context, q domain.DeleteTodoQuery) (int64, error) {
			id, err := s.todoRepository.DeleteOne(ctx, q.TodoID)
			if err != nil && !errors.Is(err, domain.ErrTodoNotFound) {
				zap.L().Error("failed to delete todo", zap.Int64("todo_id", q.TodoID), zap.Error(err))
			}
			return id, err
		})
	return err
}

func (s *TodoService) Estimate(ctx context.Context) (int64, error) {
	return s.todoRepository.Estimate(ctx)
}

var _ ports.TodoService = (*TodoService)(nil)
