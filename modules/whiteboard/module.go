package whiteboard

import (
	"familyhub/core/database"
	"familyhub/core/middleware"
	groupService "familyhub/modules/group/service"
	"familyhub/modules/whiteboard/controller"
	"familyhub/modules/whiteboard/repository"
	"familyhub/modules/whiteboard/router"
	"familyhub/modules/whiteboard/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, groups *groupService.GroupService) *service.WhiteboardService {
	repo := repository.NewWhiteboardRepository(db)
	svc := service.NewWhiteboardService(repo, groups)
	ctrl := controller.NewWhiteboardController(svc)
	r := router.NewWhiteboardRouter(ctrl)

	r.Register(g, mw)

	return svc
}
