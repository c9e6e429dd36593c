package router

import (
	"familyhub/core/middleware"
	"familyhub/modules/group/controller"

	"github.com/labstack/echo/v4"
)

type GroupRouter struct {
	controller *controller.GroupController
}

func NewGroupRouter(controller *controller.GroupController) *GroupRouter {
	return &GroupRouter{controller: controller}
}

func (r *GroupRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	groups := g.Group("/groups")
	groups.Use(mw.AuthMiddleware())

	groups.POST("", r.controller.Create)
	groups.GET("", r.controller.List)
	groups.GET("/by-slug/:slug", r.controller.GetBySlug)
	groups.GET("/:id", r.controller.GetByID)
	groups.PATCH("/:id", r.controller.Update)
	groups.DELETE("/:id", r.controller.Delete)
}
