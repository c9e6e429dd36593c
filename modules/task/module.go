package task

import (
	"familyhub/core/database"
	"familyhub/core/middleware"
	groupService "familyhub/modules/group/service"
	"familyhub/modules/task/controller"
	"familyhub/modules/task/repository"
	"familyhub/modules/task/router"
	"familyhub/modules/task/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, groups *groupService.GroupService) *service.TaskService {
	svc := service.NewTaskService(
		repository.NewTaskRepository(db),
		repository.NewTaskListRepository(db),
		groups,
	)
	ctrl := controller.NewTaskController(svc)
	listCtrl := controller.NewTaskListController(svc)
	r := router.NewTaskRouter(ctrl, listCtrl)

	r.Register(g, mw)

	return svc
}
