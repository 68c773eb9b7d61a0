package validation

import (
	"strings"

	"github.com/dynamicsamic/Todo/internal/adapter/http/dto"
	"github.com/dynamicsamic/Todo/internal/core/domain"
)

// The builders only trim and convert. Required fields, lengths and enum
// values are checked by the service pipeline.

func BuildCreateTodoInput(req dto.CreateTodoRequest) domain.CreateTodoInput {
	return domain.CreateTodoInput{
		Owner:  strings.TrimSpace(req.Owner),
		Status: domain.TodoStatus(strings.TrimSpace(req.Status)),
	}
}

func BuildUpdateTodoQuery(todoID int64, req dto.UpdateTodoRequest) domain.UpdateTodoQuery {
	return domain.UpdateTodoQuery{
		TodoID: todoID,
		Payload: domain.UpdateTodoInput{
			Owner:     trimmedPtr(req.Owner),
			Status:    enumPtr[domain.TodoStatus](req.Status),
			CreatedAt: req.CreatedAt,
			UpdatedAt: req.UpdatedAt,
		},
	}
}

func BuildCreateTaskInput(todoID int64, req dto.CreateTaskRequest) domain.CreateTaskInput {
	return domain.CreateTaskInput{
		TodoID:   todoID,
		Brief:    strings.TrimSpace(req.Brief),
		Contents: req.Contents,
		Status:   domain.TaskStatus(strings.TrimSpace(req.Status)),
		Priority: domain.TaskPriority(strings.TrimSpace(req.Priority)),
		Category: strings.TrimSpace(req.Category),
		Due:      req.Due,
	}
}

func BuildUpdateTaskQuery(taskID int64, req dto.UpdateTaskRequest) domain.UpdateTaskQuery {
	return domain.UpdateTaskQuery{
		TaskID: taskID,
		Payload: domain.UpdateTaskInput{
			Brief:     trimmedPtr(req.Brief),
			TodoID:    req.TodoID,
			Contents:  req.Contents,
			Status:    enumPtr[domain.TaskStatus](req.Status),
			Priority:  enumPtr[domain.TaskPriority](req.Priority),
			Category:  trimmedPtr(req.Category),
			Due:       req.Due,
			CreatedAt: req.CreatedAt,
			UpdatedAt: req.UpdatedAt,
		},
	}
}

func trimmedPtr(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}

func enumPtr[T ~string](value *string) *T {
	if value == nil {
		return nil
	}
	v := T(strings.TrimSpace(*value))
	return &v
}
