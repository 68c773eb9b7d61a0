package domain

import "time"

type TodoStatus string

const (
	TodoStatusActive   TodoStatus = "active"
	TodoStatusInactive TodoStatus = "inactive"
)

var TodoStatuses = []TodoStatus{TodoStatusActive, TodoStatusInactive}

// Todo is a validated todo list. Tasks is nil when tasks were not requested
// and empty when they were requested but none exist.
type Todo struct {
	ID        int64
	Owner     string
	Status    TodoStatus
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []Task
}

type TodoFilters struct {
	TodoID    []int64      `json:"todo_id,omitempty" validate:"omitempty,dive,row_id"`
	Owner     []string     `json:"owner,omitempty" validate:"omitempty,dive,max=120"`
	Status    []TodoStatus `json:"status,omitempty" validate:"omitempty,dive,oneof=active inactive"`
	CreatedAt []time.Time  `json:"created_at,omitempty"`
	UpdatedAt []time.Time  `json:"updated_at,omitempty"`
}

type GetTodoQuery struct {
	TodoID        int64 `json:"todo_id" validate:"row_id"`
	PrefetchTasks int   `json:"prefetch_tasks" validate:"prefetch_limit"`
}

type ListTodosQuery struct {
	ListParams
	Filters TodoFilters `json:"filters"`
}

func (q *ListTodosQuery) Normalize(now time.Time) {
	q.Filters.CreatedAt = inLocation(q.Filters.CreatedAt, now.Location())
	q.Filters.UpdatedAt = inLocation(q.Filters.UpdatedAt, now.Location())
}

type CreateTodoInput struct {
	Owner  string     `json:"owner" validate:"required,max=120"`
	Status TodoStatus `json:"status" validate:"oneof=active inactive"`
}

func (in *CreateTodoInput) Normalize(time.Time) {
	if in.Status == "" {
		in.Status = TodoStatusActive
	}
}

type UpdateTodoInput struct {
	Owner     *string     `json:"owner,omitempty" validate:"omitempty,min=1,max=120"`
	Status    *TodoStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
	UpdatedAt *time.Time  `json:"updated_at,omitempty"`
}

type UpdateTodoQuery struct {
	TodoID  int64           `json:"todo_id" validate:"row_id"`
	Payload UpdateTodoInput `json:"payload"`
}

func (q *UpdateTodoQuery) Normalize(now time.Time) {
	q.Payload.CreatedAt = timeInLocation(q.Payload.CreatedAt, now.Location())
	q.Payload.UpdatedAt = timeInLocation(q.Payload.UpdatedAt, now.Location())
}

type DeleteTodoQuery struct {
	TodoID int64 `json:"todo_id" validate:"row_id"`
}

func inLocation(values []time.Time, loc *time.Location) []time.Time {
	for i := range values {
		values[i] = values[i].In(loc)
	}
	return values
}

func timeInLocation(value *time.Time, loc *time.Location) *time.Time {
	if value == nil {
		return nil
	}
	t := value.In(loc)
	return &t
}
