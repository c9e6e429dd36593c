package event

import (
	"familyhub/core/database"
	"familyhub/core/middleware"
	"familyhub/modules/event/controller"
	"familyhub/modules/event/repository"
	"familyhub/modules/event/router"
	"familyhub/modules/event/service"
	groupService "familyhub/modules/group/service"
	notificationService "familyhub/modules/notification/service"
	userRepo "familyhub/modules/user/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module. The service is returned so the server
// can register it as the reminder task handler.
func Init(
	g *echo.Group,
	db database.Database,
	mw *middleware.Middleware,
	groups *groupService.GroupService,
	notifier notificationService.Notifier,
	scheduler service.ReminderScheduler,
) *service.EventService {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, groups, userRepo.NewUserRepository(db), notifier, scheduler)
	ctrl := controller.NewEventController(svc)
	r := router.NewEventRouter(ctrl)

	r.Register(g, mw)

	return svc
}
