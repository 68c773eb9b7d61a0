package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dynamicsamic/Todo/internal/core/domain"
)

// LoadSampleData inserts todos named todo1..todoN and tasks attached to the
// first inserted todo, with random statuses and priorities.
func LoadSampleData(ctx context.Context, db *sqlx.DB, todos, tasks int, now time.Time) error {
	todoInputs := make([]domain.CreateTodoInput, 0, todos)
	for i := 1; i <= todos; i++ {
		todoInputs = append(todoInputs, domain.CreateTodoInput{
			Owner:  fmt.Sprintf("todo%d", i),
			Status: randomChoice(domain.TodoStatuses),
		})
	}
	inserted, err := NewTodoRepository(db).InsertMany(ctx, todoInputs)
	if err != nil {
		return fmt.Errorf("load todos: %w", err)
	}
	if len(inserted) == 0 || tasks == 0 {
		return nil
	}

	due := now
	taskInputs := make([]domain.CreateTaskInput, 0, tasks)
	for i := 1; i <= tasks; i++ {
		contents := fmt.Sprintf("contents%d", i)
		taskInputs = append(taskInputs, domain.CreateTaskInput{
			TodoID:   inserted[0].TodoID,
			Brief:    fmt.Sprintf("brief%d", i),
			Contents: &contents,
			Status:   randomChoice(domain.TaskStatuses),
			Priority: randomChoice(domain.TaskPriorities),
			Category: fmt.Sprintf("category%d", i),
			Due:      &due,
		})
	}
	if _, err := NewTaskRepository(db).InsertMany(ctx, taskInputs); err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	return nil
}

// CleanupData removes every task and todo.
func CleanupData(ctx context.Context, db *sqlx.DB) error {
	return inTx(ctx, db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM tasks; DELETE FROM todos;")
		return err
	})
}

func randomChoice[T any](values []T) T {
	return values[rand.IntN(len(values))]
}
