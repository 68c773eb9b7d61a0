package dto

import "time"

type TaskItem struct {
	ID        int64   `json:"task_id"`
	TodoID    int64   `json:"todo_id"`
	Brief     string  `json:"brief"`
	Contents  *string `json:"contents"`
	Status    string  `json:"status"`
	Priority  string  `json:"priority"`
	Category  string  `json:"category"`
	Due       string  `json:"due"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type TaskList struct {
	Tasks []TaskItem `json:"tasks"`
}

// CreateTaskRequest has no todo_id: the task is created in the todo list of
// the request path.
type CreateTaskRequest struct {
	Brief    string     `json:"brief"`
	Contents *string    `json:"contents"`
	Status   string     `json:"status"`
	Priority string     `json:"priority"`
	Category string     `json:"category"`
	Due      *time.Time `json:"due"`
}

// UpdateTaskRequest may move a task to another todo list through todo_id.
type UpdateTaskRequest struct {
	Brief     *string    `json:"brief"`
	TodoID    *int64     `json:"todo_id"`
	Contents  *string    `json:"contents"`
	Status    *string    `json:"status"`
	Priority  *string    `json:"priority"`
	Category  *string    `json:"category"`
	Due       *time.Time `json:"due"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
