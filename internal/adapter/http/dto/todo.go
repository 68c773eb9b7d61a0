package dto

import "time"

// TodoItem is a todo list as returned by the API. Tasks is null unless tasks
// were requested with prefetch_tasks.
type TodoItem struct {
	ID        int64      `json:"todo_id"`
	Owner     string     `json:"owner"`
	Status    string     `json:"status"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
	Tasks     []TaskItem `json:"tasks"`
}

type TodoList struct {
	Todos []TodoItem `json:"todos"`
}

type CreateTodoRequest struct {
	Owner  string `json:"owner"`
	Status string `json:"status"`
}

type UpdateTodoRequest struct {
	Owner     *string    `json:"owner"`
	Status    *string    `json:"status"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
