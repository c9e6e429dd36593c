package router

import (
	"familyhub/core/middleware"
	"familyhub/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	auth := g.Group("/auth")

	auth.POST("/register", r.controller.Register)
	auth.POST("/login", r.controller.Login)
	auth.GET("/google/url", r.controller.GoogleAuthURL)
	auth.POST("/google", r.controller.GoogleLogin)

	auth.POST("/logout", r.controller.Logout, mw.AuthMiddleware())
}
