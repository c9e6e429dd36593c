package note

import (
	"familyhub/core/database"
	"familyhub/core/middleware"
	groupService "familyhub/modules/group/service"
	"familyhub/modules/note/controller"
	"familyhub/modules/note/repository"
	"familyhub/modules/note/router"
	"familyhub/modules/note/service"
	userRepo "familyhub/modules/user/repository"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, groups *groupService.GroupService) *service.NoteService {
	repo := repository.NewNoteRepository(db)
	svc := service.NewNoteService(repo, groups, userRepo.NewUserRepository(db))
	ctrl := controller.NewNoteController(svc)
	r := router.NewNoteRouter(ctrl)

	r.Register(g, mw)

	return svc
}
