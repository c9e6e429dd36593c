package group

import (
	"familyhub/core/database"
	"familyhub/core/middleware"
	"familyhub/modules/group/controller"
	"familyhub/modules/group/repository"
	"familyhub/modules/group/router"
	"familyhub/modules/group/service"
	userRepo "familyhub/modules/user/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the group module and returns the service; the other
// modules use it for membership checks.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) *service.GroupService {
	repo := repository.NewGroupRepository(db)
	users := userRepo.NewUserRepository(db)
	svc := service.NewGroupService(repo, users)
	ctrl := controller.NewGroupController(svc)
	r := router.NewGroupRouter(ctrl)

	r.Register(g, mw)

	return svc
}
