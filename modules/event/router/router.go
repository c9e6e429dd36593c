package router

import (
	"familyhub/core/middleware"
	"familyhub/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	events := g.Group("/events")
	events.Use(mw.AuthMiddleware())

	events.POST("", r.controller.Create)
	events.GET("", r.controller.List)
	events.GET("/:id", r.controller.GetByID)
	events.PATCH("/:id", r.controller.Update)
	events.DELETE("/:id", r.controller.Delete)
	events.POST("/:id/rsvp", r.controller.RSVP)
}
