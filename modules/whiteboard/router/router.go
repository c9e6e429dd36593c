package router

import (
	"familyhub/core/middleware"
	"familyhub/modules/whiteboard/controller"

	"github.com/labstack/echo/v4"
)

type WhiteboardRouter struct {
	controller *controller.WhiteboardController
}

func NewWhiteboardRouter(controller *controller.WhiteboardController) *WhiteboardRouter {
	return &WhiteboardRouter{controller: controller}
}

func (r *WhiteboardRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	board := g.Group("/groups/:id/whiteboard")
	board.Use(mw.AuthMiddleware())

	board.POST("", r.controller.AddStroke)
	board.GET("", r.controller.List)
	board.DELETE("", r.controller.Clear)
}
