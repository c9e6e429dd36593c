package invitation

import (
	"familyhub/core/database"
	"familyhub/core/middleware"
	groupRepo "familyhub/modules/group/repository"
	"familyhub/modules/invitation/controller"
	"familyhub/modules/invitation/repository"
	"familyhub/modules/invitation/router"
	"familyhub/modules/invitation/service"
	notificationService "familyhub/modules/notification/service"
	userRepo "familyhub/modules/user/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the invitation module. The service is returned so the
// server can hook the expiry sweep into the scheduler.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, notifier notificationService.Notifier) *service.InvitationService {
	repo := repository.NewInvitationRepository(db)
	svc := service.NewInvitationService(repo, groupRepo.NewGroupRepository(db), userRepo.NewUserRepository(db), notifier)
	ctrl := controller.NewInvitationController(svc)
	r := router.NewInvitationRouter(ctrl)

	r.Register(g, mw)

	return svc
}
