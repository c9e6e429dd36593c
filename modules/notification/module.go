package notification

import (
	"familyhub/core/database"
	"familyhub/core/middleware"
	"familyhub/modules/notification/controller"
	"familyhub/modules/notification/repository"
	"familyhub/modules/notification/router"
	"familyhub/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the notification module and returns the service for use
// by other modules.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	r := router.NewNotificationRouter(ctrl)

	r.Register(g, mw)

	return svc
}
