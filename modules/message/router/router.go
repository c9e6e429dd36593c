package router

import (
	"familyhub/core/middleware"
	"familyhub/modules/message/controller"

	"github.com/labstack/echo/v4"
)

type MessageRouter struct {
	controller *controller.MessageController
}

func NewMessageRouter(controller *controller.MessageController) *MessageRouter {
	return &MessageRouter{controller: controller}
}

func (r *MessageRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	groups := g.Group("/groups")
	groups.Use(mw.AuthMiddleware())

	groups.POST("/:id/messages", r.controller.Send)
	groups.GET("/:id/messages", r.controller.List)
	groups.PUT("/:id/presence", r.controller.Heartbeat)
	groups.GET("/:id/presence", r.controller.Presence)
	groups.PUT("/:id/typing", r.controller.Typing)
	groups.GET("/:id/typing", r.controller.WhoIsTyping)
}
