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

// TaskHandler serves the tasks nested under a todo list. Listing and creation
// use the todo id of the path; the other routes address the task by its own
// id only.
type TaskHandler struct {
	taskService  ports.TaskService
	defaultLimit int
}

func NewTaskHandler(taskService ports.TaskService, defaultLimit int) *TaskHandler {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultPageLimit
	}
	return &TaskHandler{taskService: taskService, defaultLimit: defaultLimit}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	todoID, ok := pathID(c, "todo_id", apierrors.MsgInvalidTodoID)
	if !ok {
		return
	}
	query, err := httpvalidation.BuildListTasksQuery(c.Request.URL.Query(), todoID, h.defaultLimit)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	ctx := c.Request.Context()
	tasks, err := h.taskService.GetMany(ctx, query)
	if err != nil {
		writeError(c, err, apierrors.MsgFailListTasks, ids{todoID: todoID})
		return
	}

	setTotalEstimate(c, func() (int64, error) { return h.taskService.Estimate(ctx) })
	c.JSON(http.StatusOK, dto.TaskList{Tasks: mapper.ToTaskItems(tasks)})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	reqIDs, ok := taskPath(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetOne(c.Request.Context(), domain.GetTaskQuery{TaskID: reqIDs.taskID})
	if err != nil {
		writeError(c, err, apierrors.MsgFailGetTask, reqIDs)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(*task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	todoID, ok := pathID(c, "todo_id", apierrors.MsgInvalidTodoID)
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), httpvalidation.BuildCreateTaskInput(todoID, req))
	if err != nil {
		writeError(c, err, apierrors.MsgFailCreateTask, ids{todoID: todoID})
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(*task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	reqIDs, ok := taskPath(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.TodoID != nil {
		reqIDs.todoID = *req.TodoID
	}

	task, err := h.taskService.Update(c.Request.Context(), httpvalidation.BuildUpdateTaskQuery(reqIDs.taskID, req))
	if err != nil {
		writeError(c, err, apierrors.MsgFailUpdateTask, reqIDs)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(*task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	reqIDs, ok := taskPath(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), domain.DeleteTaskQuery{TaskID: reqIDs.taskID}); err != nil {
		writeError(c, err, apierrors.MsgFailDeleteTask, reqIDs)
		return
	}

	c.Status(http.StatusNoContent)
}

func taskPath(c *gin.Context) (ids, bool) {
	todoID, ok := pathID(c, "todo_id", apierrors.MsgInvalidTodoID)
	if !ok {
		return ids{}, false
	}
	taskID, ok := pathID(c, "task_id", apierrors.MsgInvalidTaskID)
	if !ok {
		return ids{}, false
	}
	return ids{todoID: todoID, taskID: taskID}, true
}
