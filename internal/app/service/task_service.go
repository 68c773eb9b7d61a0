package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dynamicsamic/Todo/internal/app/validation"
	"github.com/dynamicsamic/Todo/internal/core/domain"
	"github.com/dynamicsamic/Todo/internal/core/ports"
)

var taskOutput = validation.Output[domain.TaskRow, domain.Task]{
	Schema:  validation.TaskSchema,
	Convert: domain.TaskRow.ToTask,
}

// TaskService addresses tasks by their own id. Only listing is scoped to a
// todo list.
type TaskService struct {
	taskRepository ports.TaskRepository
	pipeline       *validation.Pipeline
}

func NewTaskService(taskRepository ports.TaskRepository, pipeline *validation.Pipeline) *TaskService {
	return &TaskService{taskRepository: taskRepository, pipeline: pipeline}
}

func (s *TaskService) GetOne(ctx context.Context, query domain.GetTaskQuery) (*domain.Task, error) {
	return validation.Call(ctx, s.pipeline, query, taskOutput,
		func(ctx context.Context, q domain.GetTaskQuery) (*domain.TaskRow, error) {
			return s.taskRepository.FetchOne(ctx, q.TaskID)
		})
}

func (s *TaskService) GetMany(ctx context.Context, query domain.ListTasksQuery) ([]domain.Task, error) {
	return validation.CallList(ctx, s.pipeline, query, taskOutput,
		func(ctx context.Context, q domain.ListTasksQuery) ([]domain.TaskRow, error) {
			return s.taskRepository.FetchMany(ctx, q.ListParams, q.Filters)
		})
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	return validation.Call(ctx, s.pipeline, input, taskOutput,
		func(ctx context.Context, in domain.CreateTaskInput) (*domain.TaskRow, error) {
			row, err := s.taskRepository.InsertOne(ctx, in)
			if err != nil {
				zap.L().Error("failed to create task", zap.Any("payload", in), zap.Error(err))
			}
			return row, err
		})
}

func (s *TaskService) Update(ctx context.Context, query domain.UpdateTaskQuery) (*domain.Task, error) {
	return validation.Call(ctx, s.pipeline, query, taskOutput,
		func(ctx context.Context, q domain.UpdateTaskQuery) (*domain.TaskRow, error) {
			if q.Payload.UpdatedAt == nil {
				now := s.pipeline.Now()
				q.Payload.UpdatedAt = &now
			}
			row, err := s.taskRepository.UpdateOne(ctx, q.TaskID, q.Payload)
			if err != nil && !errors.Is(err, domain.ErrTaskNotFound) {
				zap.L().Error("failed to update task",
					zap.Int64("task_id", q.TaskID),
					zap.Any("payload", q.Payload),
					zap.Error(err),
				)
			}
			return row, err
		})
}

func (s *TaskService) Delete(ctx context.Context, query domain.DeleteTaskQuery) error {
	_, err := validation.CallInput(ctx, s.pipeline, query,
		func(ctx context.Context, q domain.DeleteTaskQuery) (int64, error) {
			id, err := s.taskRepository.DeleteOne(ctx, q.TaskID)
			if err != nil && !errors.Is(err, domain.ErrTaskNotFound) {
				zap.L().Error("failed to delete task", zap.Int64("task_id", q.TaskID), zap.Error(err))
			}
			return id, err
		})
	return err
}

func (s *TaskService) Estimate(ctx context.Context) (int64, error) {
	return s.taskRepository.Estimate(ctx)
}

var _ ports.TaskService = (*TaskService)(nil)
