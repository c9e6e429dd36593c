package message

import (
	"familyhub/core/cache"
	"familyhub/core/database"
	"familyhub/core/middleware"
	groupService "familyhub/modules/group/service"
	"familyhub/modules/message/controller"
	"familyhub/modules/message/repository"
	"familyhub/modules/message/router"
	"familyhub/modules/message/service"
	userRepo "familyhub/modules/user/repository"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, groups *groupService.GroupService, c *cache.Cache) *service.MessageService {
	repo := repository.NewMessageRepository(db)
	svc := service.NewMessageService(repo, groups, userRepo.NewUserRepository(db), c)
	ctrl := controller.NewMessageController(svc)
	r := router.NewMessageRouter(ctrl)

	r.Register(g, mw)

	return svc
}
