package domain

import "errors"

var (
	ErrTodoNotFound     = errors.New("todo not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrConflict         = errors.New("resource already exists")
	ErrInvalidReference = errors.New("referenced resource does not exist")
)
