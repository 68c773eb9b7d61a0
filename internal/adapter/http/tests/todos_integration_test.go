//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dynamicsamic/Todo/internal/adapter/http/dto"
	"github.com/dynamicsamic/Todo/internal/adapter/http/handlers"
	"github.com/dynamicsamic/Todo/pkg/apierrors"
)

type TodosIntegrationSuite struct {
	IntegrationSuiteBase
}

func TestTodosIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TodosIntegrationSuite))
}

func (s *TodosIntegrationSuite) SetupTest() {
	s.ResetDatabase()
}

func (s *TodosIntegrationSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func (s *TodosIntegrationSuite) createTodo(owner string) dto.TodoItem {
	rec := s.do(http.MethodPost, "/api/v1/todos/", fmt.Sprintf(`{"owner":%q}`, owner))
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var todo dto.TodoItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &todo))
	return todo
}

func (s *TodosIntegrationSuite) createTask(todoID int64, body string) dto.TaskItem {
	rec := s.do(http.MethodPost, fmt.Sprintf("/api/v1/todos/%d/tasks/", todoID), body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var task dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &task))
	return task
}

func (s *TodosIntegrationSuite) TestCreateTodo_DefaultsAndRoundTrip() {
	created := s.createTodo("alice")
	s.Require().Positive(created.ID)
	s.Require().Equal("active", created.Status)
	s.Require().Nil(created.Tasks)

	rec := s.do(http.MethodGet, fmt.Sprintf("/api/v1/todos/%d/", created.ID), "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var fetched dto.TodoItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &fetched))
	s.Require().Equal(created, fetched)
}

func (s *TodosIntegrationSuite) TestCreateTodo_DuplicateOwner() {
	s.createTodo("alice")

	rec := s.do(http.MethodPost, "/api/v1/todos/", `{"owner":"alice"}`)

	s.Require().Equal(http.StatusConflict, rec.Code)
}

func (s *TodosIntegrationSuite) TestListTodos_KeysetPaging() {
	var ids []int64
	for i := 0; i < 5; i++ {
		ids = append(ids, s.createTodo(fmt.Sprintf("owner%d", i)).ID)
	}

	rec := s.do(http.MethodGet, fmt.Sprintf("/api/v1/todos/?limit=2&offset=%d", ids[1]), "")
	s.Require().Equal(http.StatusOK, rec.Code)
	_, err := strconv.ParseInt(rec.Header().Get(handlers.TotalEstimateHeader), 10, 64)
	s.Require().NoError(err)

	var page dto.TodoList
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &page))
	s.Require().Len(page.Todos, 2)
	s.Require().Equal(ids[2], page.Todos[0].ID)
	s.Require().Equal(ids[3], page.Todos[1].ID)
}

func (s *TodosIntegrationSuite) TestListTodos_FiltersAndOrOr() {
	s.createTodo("alice")
	s.createTodo("bob")
	carol := s.createTodo("carol")
	rec := s.do(http.MethodPatch, fmt.Sprintf("/api/v1/todos/%d/", carol.ID), `{"status":"inactive"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/todos/?owner=alice&owner=carol&status=inactive", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var page dto.TodoList
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &page))
	s.Require().Len(page.Todos, 1)
	s.Require().Equal("carol", page.Todos[0].Owner)
}

func (s *TodosIntegrationSuite) TestUpdateTodo_BumpsUpdatedAt() {
	created := s.createTodo("alice")
	time.Sleep(10 * time.Millisecond)

	rec := s.do(http.MethodPatch, fmt.Sprintf("/api/v1/todos/%d/", created.ID), `{"owner":"alice2"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated dto.TodoItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	before, err := time.Parse(time.RFC3339Nano, created.UpdatedAt)
	s.Require().NoError(err)
	after, err := time.Parse(time.RFC3339Nano, updated.UpdatedAt)
	s.Require().NoError(err)
	s.Require().True(after.After(before))
	s.Require().Equal(created.CreatedAt, updated.CreatedAt)
}

func (s *TodosIntegrationSuite) TestUpdateTodo_AllNullRejected() {
	created := s.createTodo("alice")

	rec := s.do(http.MethodPatch, fmt.Sprintf("/api/v1/todos/%d/", created.ID), `{"owner":null,"status":null}`)

	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *TodosIntegrationSuite) TestPrefetchTasks_NullVersusEmpty() {
	created := s.createTodo("alice")

	rec := s.do(http.MethodGet, fmt.Sprintf("/api/v1/todos/%d/?prefetch_tasks=10", created.ID), "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), `"tasks":[]`)

	s.createTask(created.ID, `{"brief":"b1","category":"c"}`)
	s.createTask(created.ID, `{"brief":"b2","category":"c"}`)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/v1/todos/%d/?prefetch_tasks=1", created.ID), "")
	var todo dto.TodoItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &todo))
	s.Require().Len(todo.Tasks, 1)
	s.Require().Equal("b1", todo.Tasks[0].Brief)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/v1/todos/%d/", created.ID), "")
	s.Require().Contains(rec.Body.String(), `"tasks":null`)
}

func (s *TodosIntegrationSuite) TestCreateTask_DefaultDue() {
	created := s.createTodo("alice")
	before := time.Now()

	task := s.createTask(created.ID, `{"brief":"b","category":"c"}`)

	s.Require().Equal("pending", task.Status)
	s.Require().Equal("low", task.Priority)
	due, err := time.Parse(time.RFC3339Nano, task.Due)
	s.Require().NoError(err)
	s.Require().False(due.Before(before.Add(24 * time.Hour).Truncate(time.Microsecond)))
	s.Require().True(due.Before(time.Now().Add(24*time.Hour + time.Second)))
}

func (s *TodosIntegrationSuite) TestCreateTask_UnknownTodo() {
	rec := s.do(http.MethodPost, "/api/v1/todos/999999/tasks/", `{"brief":"b","category":"c"}`)

	s.Require().Equal(http.StatusNotFound, rec.Code)
	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("Todo 999999 not found.", got.ErrDetails.Message)
}

func (s *TodosIntegrationSuite) TestDeleteTodo_CascadesAndIsIdempotentlyNotFound() {
	created := s.createTodo("alice")
	task := s.createTask(created.ID, `{"brief":"b","category":"c"}`)
	todoURL := fmt.Sprintf("/api/v1/todos/%d/", created.ID)

	s.Require().Equal(http.StatusNoContent, s.do(http.MethodDelete, todoURL, "").Code)
	s.Require().Equal(http.StatusNotFound, s.do(http.MethodDelete, todoURL, "").Code)
	s.Require().Equal(http.StatusNotFound,
		s.do(http.MethodGet, fmt.Sprintf("/api/v1/todos/%d/tasks/%d/", created.ID, task.ID), "").Code)
}

func (s *TodosIntegrationSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/api/health/report", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), `"postgres":"ok"`)
}
