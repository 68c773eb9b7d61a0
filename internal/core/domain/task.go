package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusComplete  TaskStatus = "complete"
	TaskStatusPostponed TaskStatus = "postponed"
)

var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusComplete, TaskStatusPostponed}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

var TaskPriorities = []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}

// DefaultTaskDueIn is added to the creation time when a task has no due date.
const DefaultTaskDueIn = 24 * time.Hour

type Task struct {
	ID        int64
	TodoID    int64
	Brief     string
	Contents  *string
	Status    TaskStatus
	Priority  TaskPriority
	Category  string
	Due       time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskFilters always carries at least one todo id so a task listing can never
// reach across todo lists.
type TaskFilters struct {
	TaskID    []int64        `json:"task_id,omitempty" validate:"omitempty,dive,row_id"`
	TodoID    []int64        `json:"todo_id" validate:"required,min=1,dive,row_id"`
	Brief     []string       `json:"brief,omitempty" validate:"omitempty,dive,max=300"`
	Category  []string       `json:"category,omitempty" validate:"omitempty,dive,max=100"`
	Status    []TaskStatus   `json:"status,omitempty" validate:"omitempty,dive,oneof=pending complete postponed"`
	Priority  []TaskPriority `json:"priority,omitempty" validate:"omitempty,dive,oneof=low medium high"`
	Due       []time.Time    `json:"due,omitempty"`
	CreatedAt []time.Time    `json:"created_at,omitempty"`
	UpdatedAt []time.Time    `json:"updated_at,omitempty"`
}

type GetTaskQuery struct {
	TaskID int64 `json:"task_id" validate:"row_id"`
}

type ListTasksQuery struct {
	ListParams
	Filters TaskFilters `json:"filters"`
}

func (q *ListTasksQuery) Normalize(now time.Time) {
	loc := now.Location()
	q.Filters.Due = inLocation(q.Filters.Due, loc)
	q.Filters.CreatedAt = inLocation(q.Filters.CreatedAt, loc)
	q.Filters.UpdatedAt = inLocation(q.Filters.UpdatedAt, loc)
}

type CreateTaskInput struct {
	TodoID   int64        `json:"todo_id" validate:"row_id"`
	Brief    string       `json:"brief" validate:"required,max=300"`
	Contents *string      `json:"contents,omitempty"`
	Status   TaskStatus   `json:"status" validate:"oneof=pending complete postponed"`
	Priority TaskPriority `json:"priority" validate:"oneof=low medium high"`
	Category string       `json:"category" validate:"required,max=100"`
	Due      *time.Time   `json:"due,omitempty"`
}

func (in *CreateTaskInput) Normalize(now time.Time) {
	if in.Status == "" {
		in.Status = TaskStatusPending
	}
	if in.Priority == "" {
		in.Priority = TaskPriorityLow
	}
	if in.Due == nil {
		due := now.Add(DefaultTaskDueIn)
		in.Due = &due
		return
	}
	in.Due = timeInLocation(in.Due, now.Location())
}

type UpdateTaskInput struct {
	Brief     *string       `json:"brief,omitempty" validate:"omitempty,min=1,max=300"`
	TodoID    *int64        `json:"todo_id,omitempty" validate:"omitempty,row_id"`
	Contents  *string       `json:"contents,omitempty"`
	Status    *TaskStatus   `json:"status,omitempty" validate:"omitempty,oneof=pending complete postponed"`
	Priority  *TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Category  *string       `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Due       *time.Time    `json:"due,omitempty"`
	CreatedAt *time.Time    `json:"created_at,omitempty"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}

type UpdateTaskQuery struct {
	TaskID  int64           `json:"task_id" validate:"row_id"`
	Payload UpdateTaskInput `json:"payload"`
}

func (q *UpdateTaskQuery) Normalize(now time.Time) {
	loc := now.Location()
	q.Payload.Due = timeInLocation(q.Payload.Due, loc)
	q.Payload.CreatedAt = timeInLocation(q.Payload.CreatedAt, loc)
	q.Payload.UpdatedAt = timeInLocation(q.Payload.UpdatedAt, loc)
}

type DeleteTaskQuery struct {
	TaskID int64 `json:"task_id" validate:"row_id"`
}
