package router

import (
	"familyhub/core/middleware"
	"familyhub/modules/invitation/controller"

	"github.com/labstack/echo/v4"
)

type InvitationRouter struct {
	controller *controller.InvitationController
}

func NewInvitationRouter(controller *controller.InvitationController) *InvitationRouter {
	return &InvitationRouter{controller: controller}
}

func (r *InvitationRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	invitations := g.Group("/invitations")
	invitations.Use(mw.AuthMiddleware())

	invitations.POST("", r.controller.Create)
	invitations.GET("", r.controller.GetPending)
	invitations.GET("/count", r.controller.CountPending)
	invitations.PATCH("/:id", r.controller.UpdateStatus)
	invitations.DELETE("/:id", r.controller.Delete)
}
