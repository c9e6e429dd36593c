package router

import (
	"familyhub/core/middleware"
	"familyhub/modules/note/controller"

	"github.com/labstack/echo/v4"
)

type NoteRouter struct {
	controller *controller.NoteController
}

func NewNoteRouter(controller *controller.NoteController) *NoteRouter {
	return &NoteRouter{controller: controller}
}

func (r *NoteRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	notes := g.Group("/notes")
	notes.Use(mw.AuthMiddleware())

	notes.POST("", r.controller.Create)
	notes.GET("", r.controller.List)
	notes.GET("/:id", r.controller.GetByID)
	notes.PATCH("/:id", r.controller.Update)
	notes.DELETE("/:id", r.controller.Delete)
}
