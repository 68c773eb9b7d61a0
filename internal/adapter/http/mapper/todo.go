package mapper

import (
	"time"

	"github.com/dynamicsamic/Todo/internal/adapter/http/dto"
	"github.com/dynamicsamic/Todo/internal/core/domain"
)

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

// ToTodoItem keeps nil tasks nil so the response tells "not requested" apart
// from "no tasks".
func ToTodoItem(todo domain.Todo) dto.TodoItem {
	item := dto.TodoItem{
		ID:        todo.ID,
		Owner:     todo.Owner,
		Status:    string(todo.Status),
		CreatedAt: todo.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: todo.UpdatedAt.Format(time.RFC3339Nano),
	}

	if todo.Tasks != nil {
		item.Tasks = ToTaskItems(todo.Tasks)
	}

	return item
}
