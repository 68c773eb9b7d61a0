package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dynamicsamic/Todo/internal/core/domain"
)

type todoRepositoryMock struct {
	mock.Mock
}

func (m *todoRepositoryMock) FetchOne(ctx context.Context, todoID int64, prefetchTasks int) (*domain.TodoRow, error) {
	args := m.Called(ctx, todoID, prefetchTasks)

	var row *domain.TodoRow
	if value := args.Get(0); value != nil {
		row = value.(*domain.TodoRow)
	}
	return row, args.Error(1)
}

func (m *todoRepositoryMock) FetchMany(ctx context.Context, page domain.ListParams, filters domain.TodoFilters) ([]domain.TodoRow, error) {
	args := m.Called(ctx, page, filters)

	var rows []domain.TodoRow
	if value := args.Get(0); value != nil {
		rows = value.([]domain.TodoRow)
	}
	return rows, args.Error(1)
}

func (m *todoRepositoryMock) InsertOne(ctx context.Context, input domain.CreateTodoInput) (*domain.TodoRow, error) {
	args := m.Called(ctx, input)

	var row *domain.TodoRow
	if value := args.Get(0); value != nil {
		row = value.(*domain.TodoRow)
	}
	return row, args.Error(1)
}

func (m *todoRepositoryMock) UpdateOne(ctx context.Context, todoID int64, input domain.UpdateTodoInput) (*domain.TodoRow, error) {
	args := m.Called(ctx, todoID, input)

	var row *domain.TodoRow
	if value := args.Get(0); value != nil {
		row = value.(*domain.TodoRow)
	}
	return row, args.Error(1)
}

func (m *todoRepositoryMock) DeleteOne(ctx context.Context, todoID int64) (int64, error) {
	args := m.Called(ctx, todoID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *todoRepositoryMock) Estimate(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) FetchOne(ctx context.Context, taskID int64) (*domain.TaskRow, error) {
	args := m.Called(ctx, taskID)

	var row *domain.TaskRow
	if value := args.Get(0); value != nil {
		row = value.(*domain.TaskRow)
	}
	return row, args.Error(1)
}

func (m *taskRepositoryMock) FetchMany(ctx context.Context, page domain.ListParams, filters domain.TaskFilters) ([]domain.TaskRow, error) {
	args := m.Called(ctx, page, filters)

	var rows []domain.TaskRow
	if value := args.Get(0); value != nil {
		rows = value.([]domain.TaskRow)
	}
	return rows, args.Error(1)
}

func (m *taskRepositoryMock) InsertOne(ctx context.Context, input domain.CreateTaskInput) (*domain.TaskRow, error) {
	args := m.Called(ctx, input)

	var row *domain.TaskRow
	if value := args.Get(0); value != nil {
		row = value.(*domain.TaskRow)
	}
	return row, args.Error(1)
}

func (m *taskRepositoryMock) UpdateOne(ctx context.Context, taskID int64, input domain.UpdateTaskInput) (*domain.TaskRow, error) {
	args := m.Called(ctx, taskID, input)

	var row *domain.TaskRow
	if value := args.Get(0); value != nil {
		row = value.(*domain.TaskRow)
	}
	return row, args.Error(1)
}

func (m *taskRepositoryMock) DeleteOne(ctx context.Context, taskID int64) (int64, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskRepositoryMock) Estimate(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
