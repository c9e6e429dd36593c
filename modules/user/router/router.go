package router

import (
	"familyhub/core/middleware"
	"familyhub/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	controller *controller.UserController
}

func NewUserRouter(controller *controller.UserController) *UserRouter {
	return &UserRouter{controller: controller}
}

func (r *UserRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	users := g.Group("/users")
	users.Use(mw.AuthMiddleware())

	users.GET("/me", r.controller.GetMe)
	users.PATCH("/me", r.controller.UpdateMe)
	users.POST("/me/avatar", r.controller.UploadAvatar)
}
