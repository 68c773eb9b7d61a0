package validation

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dynamicsamic/Todo/internal/core/domain"
)

var ErrInvalidQuery = errors.New("invalid query")

var (
	todoListKeys = []string{"limit", "offset", "todo_id", "owner", "status", "created_at", "updated_at"}
	taskListKeys = []string{"limit", "offset", "todo_id", "task_id", "brief", "category", "status", "priority", "due", "created_at", "updated_at"}
	todoGetKeys  = []string{"prefetch_tasks"}
)

func queryError(key, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidQuery, key, reason)
}

// CheckQueryKeys rejects any key outside allowed.
func CheckQueryKeys(values url.Values, allowed ...string) error {
	for key := range values {
		if !slices.Contains(allowed, key) {
			return queryError(key, "unknown parameter")
		}
	}
	return nil
}

// ParseListParams reads limit and offset. A missing limit becomes
// defaultLimit; bounds are checked by the service.
func ParseListParams(values url.Values, defaultLimit int) (domain.ListParams, error) {
	params := domain.ListParams{Limit: defaultLimit}

	if raw, ok := single(values, "limit"); ok {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return params, queryError("limit", "not an integer")
		}
		params.Limit = limit
	}
	if raw, ok := single(values, "offset"); ok {
		offset, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return params, queryError("offset", "not an integer")
		}
		params.Offset = offset
	}
	return params, nil
}

// ParsePrefetchTasks reads prefetch_tasks, 0 when absent.
func ParsePrefetchTasks(values url.Values) (int, error) {
	if err := CheckQueryKeys(values, todoGetKeys...); err != nil {
		return 0, err
	}
	raw, ok := single(values, "prefetch_tasks")
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, queryError("prefetch_tasks", "not an integer")
	}
	return n, nil
}

// BuildListTodosQuery turns the query string of the todo listing into a
// ListTodosQuery. Repeated keys are ORed, distinct keys ANDed.
func BuildListTodosQuery(values url.Values, defaultLimit int) (domain.ListTodosQuery, error) {
	var query domain.ListTodosQuery
	if err := CheckQueryKeys(values, todoListKeys...); err != nil {
		return query, err
	}

	params, err := ParseListParams(values, defaultLimit)
	if err != nil {
		return query, err
	}
	query.ListParams = params

	if query.Filters.TodoID, err = int64s(values, "todo_id"); err != nil {
		return query, err
	}
	query.Filters.Owner = trimmed(values["owner"])
	query.Filters.Status = enums[domain.TodoStatus](values["status"])
	if query.Filters.CreatedAt, err = times(values, "created_at"); err != nil {
		return query, err
	}
	if query.Filters.UpdatedAt, err = times(values, "updated_at"); err != nil {
		return query, err
	}
	return query, nil
}

// BuildListTasksQuery is BuildListTodosQuery for the tasks of todoID. A
// todo_id in the query must be well formed but is replaced by todoID.
func BuildListTasksQuery(values url.Values, todoID int64, defaultLimit int) (domain.ListTasksQuery, error) {
	var query domain.ListTasksQuery
	if err := CheckQueryKeys(values, taskListKeys...); err != nil {
		return query, err
	}

	params, err := ParseListParams(values, defaultLimit)
	if err != nil {
		return query, err
	}
	query.ListParams = params

	if _, err = int64s(values, "todo_id"); err != nil {
		return query, err
	}
	query.Filters.TodoID = []int64{todoID}
	if query.Filters.TaskID, err = int64s(values, "task_id"); err != nil {
		return query, err
	}
	query.Filters.Brief = trimmed(values["brief"])
	query.Filters.Category = trimmed(values["category"])
	query.Filters.Status = enums[domain.TaskStatus](values["status"])
	query.Filters.Priority = enums[domain.TaskPriority](values["priority"])
	if query.Filters.Due, err = times(values, "due"); err != nil {
		return query, err
	}
	if query.Filters.CreatedAt, err = times(values, "created_at"); err != nil {
		return query, err
	}
	if query.Filters.UpdatedAt, err = times(values, "updated_at"); err != nil {
		return query, err
	}
	return query, nil
}

// single returns the last value of key.
func single(values url.Values, key string) (string, bool) {
	raw, ok := values[key]
	if !ok || len(raw) == 0 {
		return "", false
	}
	return strings.TrimSpace(raw[len(raw)-1]), true
}

func int64s(values url.Values, key string) ([]int64, error) {
	raw := values[key]
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]int64, 0, len(raw))
	for _, v := range raw {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, queryError(key, "not an integer")
		}
		out = append(out, n)
	}
	return out, nil
}

func times(values url.Values, key string) ([]time.Time, error) {
	raw := values[key]
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]time.Time, 0, len(raw))
	for _, v := range raw {
		t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(v))
		if err != nil {
			return nil, queryError(key, "not an RFC 3339 datetime")
		}
		out = append(out, t)
	}
	return out, nil
}

func trimmed(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

func enums[T ~string](raw []string) []T {
	if len(raw) == 0 {
		return nil
	}
	out := make([]T, 0, len(raw))
	for _, v := range raw {
		out = append(out, T(strings.TrimSpace(v)))
	}
	return out
}
