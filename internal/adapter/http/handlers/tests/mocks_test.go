package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dynamicsamic/Todo/internal/adapter/http/handlers"
	"github.com/dynamicsamic/Todo/internal/adapter/http/middleware"
	"github.com/dynamicsamic/Todo/internal/core/domain"
	"github.com/dynamicsamic/Todo/pkg/apierrors"
	"github.com/dynamicsamic/Todo/pkg/translator"
)

type todoServiceMock struct {
	mock.Mock
}

func (m *todoServiceMock) GetOne(ctx context.Context, query domain.GetTodoQuery) (*domain.Todo, error) {
	args := m.Called(ctx, query)

	var todo *domain.Todo
	if value := args.Get(0); value != nil {
		todo = value.(*domain.Todo)
	}
	return todo, args.Error(1)
}

func (m *todoServiceMock) GetMany(ctx context.Context, query domain.ListTodosQuery) ([]domain.Todo, error) {
	args := m.Called(ctx, query)

	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Error(1)
}

func (m *todoServiceMock) Create(ctx context.Context, input domain.CreateTodoInput) (*domain.Todo, error) {
	args := m.Called(ctx, input)

	var todo *domain.Todo
	if value := args.Get(0); value != nil {
		todo = value.(*domain.Todo)
	}
	return todo, args.Error(1)
}

func (m *todoServiceMock) Update(ctx context.Context, query domain.UpdateTodoQuery) (*domain.Todo, error) {
	args := m.Called(ctx, query)

	var todo *domain.Todo
	if value := args.Get(0); value != nil {
		todo = value.(*domain.Todo)
	}
	return todo, args.Error(1)
}

func (m *todoServiceMock) Delete(ctx context.Context, query domain.DeleteTodoQuery) error {
	return m.Called(ctx, query).Error(0)
}

func (m *todoServiceMock) Estimate(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) GetOne(ctx context.Context, query domain.GetTaskQuery) (*domain.Task, error) {
	args := m.Called(ctx, query)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) GetMany(ctx context.Context, query domain.ListTasksQuery) ([]domain.Task, error) {
	args := m.Called(ctx, query)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	args := m.Called(ctx, input)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, query domain.UpdateTaskQuery) (*domain.Task, error) {
	args := m.Called(ctx, query)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, query domain.DeleteTaskQuery) error {
	return m.Called(ctx, query).Error(0)
}

func (m *taskServiceMock) Estimate(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// newRouter mounts the resource routes without the database middleware.
func newRouter(todoService *todoServiceMock, taskService *taskServiceMock) *gin.Engine {
	todoHandler := handlers.NewTodoHandler(todoService, domain.DefaultPageLimit)
	taskHandler := handlers.NewTaskHandler(taskService, domain.DefaultPageLimit)

	router := gin.New()
	todos := router.Group("/api/v1/todos", middleware.LanguageMiddleware())
	todos.GET("/", todoHandler.ListTodos)
	todos.POST("/", todoHandler.CreateTodo)
	todos.GET("/:todo_id/", todoHandler.GetTodo)
	todos.PATCH("/:todo_id/", todoHandler.UpdateTodo)
	todos.DELETE("/:todo_id/", todoHandler.DeleteTodo)
	todos.GET("/:todo_id/tasks/", taskHandler.ListTasks)
	todos.POST("/:todo_id/tasks/", taskHandler.CreateTask)
	todos.GET("/:todo_id/tasks/:task_id/", taskHandler.GetTask)
	todos.PATCH("/:todo_id/tasks/:task_id/", taskHandler.UpdateTask)
	todos.DELETE("/:todo_id/tasks/:task_id/", taskHandler.DeleteTask)
	return router
}

func serve(router *gin.Engine, method, target, body, lang string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if lang == "" {
		lang = translator.LanguageEn
	}
	req.Header.Set("Accept-Language", lang)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.JsonErr {
	t.Helper()
	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, rec.Code, got.ErrDetails.Code)
	return got
}
