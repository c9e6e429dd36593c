package router

import (
	"familyhub/core/middleware"
	"familyhub/modules/task/controller"

	"github.com/labstack/echo/v4"
)

type TaskRouter struct {
	tasks *controller.TaskController
	lists *controller.TaskListController
}

func NewTaskRouter(tasks *controller.TaskController, lists *controller.TaskListController) *TaskRouter {
	return &TaskRouter{tasks: tasks, lists: lists}
}

func (r *TaskRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	tasks := g.Group("/tasks")
	tasks.Use(mw.AuthMiddleware())

	tasks.POST("", r.tasks.Create)
	tasks.GET("", r.tasks.List)
	tasks.GET("/:id", r.tasks.GetByID)
	tasks.PATCH("/:id", r.tasks.Update)
	tasks.DELETE("/:id", r.tasks.Delete)

	lists := g.Group("/task-lists")
	lists.Use(mw.AuthMiddleware())

	lists.POST("", r.lists.Create)
	lists.GET("", r.lists.List)
	lists.PATCH("/reorder", r.lists.Reorder)
	lists.PATCH("/:id", r.lists.Update)
	lists.DELETE("/:id", r.lists.Delete)
}
