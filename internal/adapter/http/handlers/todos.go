package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dynamicsamic/Todo/internal/adapter/http/dto"
	"github.com/dynamicsamic/Todo/internal/adapter/http/mapper"
	httpvalidation "github.com/dynamicsamic/Todo/internal/adapter/http/validation"
	"github.com/dynamicsamic/Todo/internal/core/domain"
	"github.com/dynamicsamic/Todo/internal/core/ports"
	"github.com/dynamicsamic/Todo/pkg/apierrors"
)

type TodoHandler struct {
	todoService  ports.TodoService
	defaultLimit int
}

func NewTodoHandler(todoService ports.TodoService, defaultLimit int) *TodoHandler {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultPageLimit
	}
	return &TodoHandler{todoService: todoService, defaultLimit: defaultLimit}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	query, err := httpvalidation.BuildListTodosQuery(c.Request.URL.Query(), h.defaultLimit)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	ctx := c.Request.Context()
	todos, err := h.todoService.GetMany(ctx, query)
	if err != nil {
		writeError(c, err, apierrors.MsgFailListTodos, ids{})
		return
	}

	setTotalEstimate(c, func() (int64, error) { return h.todoService.Estimate(ctx) })
	c.JSON(http.StatusOK, dto.TodoList{Todos: mapper.ToTodoItems(todos)})
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	todoID, ok := pathID(c, "todo_id", apierrors.MsgInvalidTodoID)
	if !ok {
		return
	}
	prefetch, err := httpvalidation.ParsePrefetchTasks(c.Request.URL.Query())
	if err != nil {
		writeQueryError(c, err)
		return
	}

	todo, err := h.todoService.GetOne(c.Request.Context(), domain.GetTodoQuery{TodoID: todoID, PrefetchTasks: prefetch})
	if err != nil {
		writeError(c, err, apierrors.MsgFailGetTodo, ids{todoID: todoID})
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(*todo))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req dto.CreateTodoRequest
	if !bindJSON(c, &req) {
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), httpvalidation.BuildCreateTodoInput(req))
	if err != nil {
		writeError(c, err, apierrors.MsgFailCreateTodo, ids{})
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTodoItem(*todo))
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	todoID, ok := pathID(c, "todo_id", apierrors.MsgInvalidTodoID)
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
	if !bindJSON(c, &req) {
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), httpvalidation.BuildUpdateTodoQuery(todoID, req))
	if err != nil {
		writeError(c, err, apierrors.MsgFailUpdateTodo, ids{todoID: todoID})
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(*todo))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	todoID, ok := pathID(c, "todo_id", apierrors.MsgInvalidTodoID)
	if !ok {
		return
	}

	if err := h.todoService.Delete(c.Request.Context(), domain.DeleteTodoQuery{TodoID: todoID}); err != nil {
		writeError(c, err, apierrors.MsgFailDeleteTodo, ids{todoID: todoID})
		return
	}

	c.Status(http.StatusNoContent)
}
