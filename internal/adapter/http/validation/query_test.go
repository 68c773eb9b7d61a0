package validation

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynamicsamic/Todo/internal/adapter/http/dto"
	"github.com/dynamicsamic/Todo/internal/core/domain"
)

func TestBuildListTodosQuery(t *testing.T) {
	values, err := url.ParseQuery("todo_id=1&todo_id=2&owner=%20alice%20&status=inactive&created_at=2026-01-02T03:04:05Z&limit=20&offset=7")
	require.NoError(t, err)

	query, err := BuildListTodosQuery(values, 10)

	require.NoError(t, err)
	assert.Equal(t, domain.ListParams{Limit: 20, Offset: 7}, query.ListParams)
	assert.Equal(t, []int64{1, 2}, query.Filters.TodoID)
	assert.Equal(t, []string{"alice"}, query.Filters.Owner)
	assert.Equal(t, []domain.TodoStatus{domain.TodoStatusInactive}, query.Filters.Status)
	require.Len(t, query.Filters.CreatedAt, 1)
	assert.True(t, query.Filters.CreatedAt[0].Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
	assert.Nil(t, query.Filters.UpdatedAt)
}

func TestBuildListTodosQuery_Errors(t *testing.T) {
	for _, raw := range []string{"task_id=1", "limit=1.5", "offset=x", "todo_id=one", "created_at=2026-01-02"} {
		values, err := url.ParseQuery(raw)
		require.NoError(t, err)

		_, err = BuildListTodosQuery(values, 10)

		assert.ErrorIs(t, err, ErrInvalidQuery, raw)
	}
}

func TestBuildListTasksQuery_ScopesToTodo(t *testing.T) {
	values, err := url.ParseQuery("status=pending&status=postponed&due=2026-01-02T03:04:05%2B03:00")
	require.NoError(t, err)

	query, err := BuildListTasksQuery(values, 5, 10)

	require.NoError(t, err)
	assert.Equal(t, domain.ListParams{Limit: 10}, query.ListParams)
	assert.Equal(t, []int64{5}, query.Filters.TodoID)
	assert.Equal(t, []domain.TaskStatus{domain.TaskStatusPending, domain.TaskStatusPostponed}, query.Filters.Status)
	require.Len(t, query.Filters.Due, 1)
	assert.True(t, query.Filters.Due[0].Equal(time.Date(2026, 1, 2, 0, 4, 5, 0, time.UTC)))

	values, err = url.ParseQuery("todo_id=6&todo_id=7")
	require.NoError(t, err)
	query, err = BuildListTasksQuery(values, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, query.Filters.TodoID)

	values, err = url.ParseQuery("todo_id=six")
	require.NoError(t, err)
	_, err = BuildListTasksQuery(values, 5, 10)
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestParsePrefetchTasks(t *testing.T) {
	n, err := ParsePrefetchTasks(url.Values{})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = ParsePrefetchTasks(url.Values{"prefetch_tasks": {"4"}})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = ParsePrefetchTasks(url.Values{"prefetch": {"4"}})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestBuildUpdateTaskQuery_TrimsAndKeepsNil(t *testing.T) {
	brief := "  new brief "
	status := "complete"

	query := BuildUpdateTaskQuery(3, dto.UpdateTaskRequest{Brief: &brief, Status: &status})

	assert.Equal(t, int64(3), query.TaskID)
	require.NotNil(t, query.Payload.Brief)
	assert.Equal(t, "new brief", *query.Payload.Brief)
	require.NotNil(t, query.Payload.Status)
	assert.Equal(t, domain.TaskStatusComplete, *query.Payload.Status)
	assert.Nil(t, query.Payload.Priority)
	assert.Nil(t, query.Payload.Category)
	assert.Nil(t, query.Payload.TodoID)
}

func TestBuildCreateTaskInput_UsesPathTodo(t *testing.T) {
	input := BuildCreateTaskInput(9, dto.CreateTaskRequest{Brief: " b ", Category: " c ", Priority: "high"})

	assert.Equal(t, domain.CreateTaskInput{TodoID: 9, Brief: "b", Category: "c", Priority: domain.TaskPriorityHigh}, input)
}
