package mapper

import (
	"time"

	"github.com/dynamicsamic/Todo/internal/adapter/http/dto"
	"github.com/dynamicsamic/Todo/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		TodoID:    task.TodoID,
		Brief:     task.Brief,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		Category:  task.Category,
		Due:       task.Due.Format(time.RFC3339Nano),
		CreatedAt: task.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339Nano),
	}

	if task.Contents != nil {
		value := *task.Contents
		item.Contents = &value
	}

	return item
}
