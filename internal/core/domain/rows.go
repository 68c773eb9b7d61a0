package domain

import "time"

// TodoRow is one record of the todos table. Status is kept as the raw
// storage value so output validation can catch drift.
type TodoRow struct {
	TodoID    int64     `db:"todo_id" json:"todo_id"`
	Owner     string    `db:"owner" json:"owner"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	Tasks     []TaskRow `db:"-" json:"tasks"`
}

// TaskRow is one record of the tasks table.
type TaskRow struct {
	TaskID    int64     `db:"task_id" json:"task_id"`
	Brief     string    `db:"brief" json:"brief"`
	TodoID    int64     `db:"todo_id" json:"todo_id"`
	Contents  *string   `db:"contents" json:"contents"`
	Status    string    `db:"status" json:"status"`
	Priority  string    `db:"priority" json:"priority"`
	Category  string    `db:"category" json:"category"`
	Due       time.Time `db:"due" json:"due"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (r TodoRow) ToTodo() Todo {
	todo := Todo{
		ID:        r.TodoID,
		Owner:     r.Owner,
		Status:    TodoStatus(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Tasks != nil {
		todo.Tasks = make([]Task, 0, len(r.Tasks))
		for _, row := range r.Tasks {
			todo.Tasks = append(todo.Tasks, row.ToTask())
		}
	}
	return todo
}

func (r TaskRow) ToTask() Task {
	task := Task{
		ID:        r.TaskID,
		TodoID:    r.TodoID,
		Brief:     r.Brief,
		Status:    TaskStatus(r.Status),
		Priority:  TaskPriority(r.Priority),
		Category:  r.Category,
		Due:       r.Due,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Contents != nil {
		value := *r.Contents
		task.Contents = &value
	}
	return task
}
