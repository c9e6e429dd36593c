package user

import (
	"familyhub/core/database"
	"familyhub/core/middleware"
	"familyhub/modules/user/controller"
	"familyhub/modules/user/repository"
	"familyhub/modules/user/router"
	"familyhub/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the user module and returns the repository for use by
// other modules (auth, invitation, event reminders).
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, storage service.AvatarStorage) repository.UserRepository {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo, storage)
	ctrl := controller.NewUserController(svc)
	r := router.NewUserRouter(ctrl)

	r.Register(g, mw)

	return repo
}
