package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/dynamicsamic/Todo/internal/adapter/http/handlers"
	"github.com/dynamicsamic/Todo/internal/adapter/http/middleware"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Todos  *handlers.TodoHandler
	Tasks  *handlers.TaskHandler
}

// RegisterRoutes mounts the health checks under /api and the resources under
// /api/v1. Resource routes hold one database connection per request.
func RegisterRoutes(r *gin.Engine, db *sqlx.DB, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	v1 := api.Group("/v1")
	v1.Use(middleware.DBConnMiddleware(db))

	todos := v1.Group("/todos")
	{
		todos.GET("/", h.Todos.ListTodos)
		todos.POST("/", h.Todos.CreateTodo)
		todos.GET("/:todo_id/", h.Todos.GetTodo)
		todos.PATCH("/:todo_id/", h.Todos.UpdateTodo)
		todos.DELETE("/:todo_id/", h.Todos.DeleteTodo)

		todos.GET("/:todo_id/tasks/", h.Tasks.ListTasks)
		todos.POST("/:todo_id/tasks/", h.Tasks.CreateTask)
		todos.GET("/:todo_id/tasks/:task_id/", h.Tasks.GetTask)
		todos.PATCH("/:todo_id/tasks/:task_id/", h.Tasks.UpdateTask)
		todos.DELETE("/:todo_id/tasks/:task_id/", h.Tasks.DeleteTask)
	}
}
