package auth

import (
	"familyhub/core/cache"
	"familyhub/core/config"
	"familyhub/core/database"
	"familyhub/core/middleware"
	"familyhub/modules/auth/controller"
	"familyhub/modules/auth/router"
	"familyhub/modules/auth/service"
	userRepo "familyhub/modules/user/repository"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, c *cache.Cache, cfg *config.Config) *service.AuthService {
	users := userRepo.NewUserRepository(db)
	svc := service.NewAuthService(users, c, cfg)
	ctrl := controller.NewAuthController(svc)
	r := router.NewAuthRouter(ctrl)

	r.Register(g, mw)

	return svc
}
