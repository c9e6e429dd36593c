package controller

import (
	"familyhub/core/controller"
	"familyhub/core/errors"
	"familyhub/modules/note/dto"
	"familyhub/modules/note/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NoteController struct {
	controller.BaseController
	service *service.NoteService
}

func NewNoteController(service *service.NoteService) *NoteController {
	return &NoteController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *NoteController) Create(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.CreateNoteRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, appErr := c.service.Create(ctx.Request().Context(), req, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Note created")
}

func (c *NoteController) List(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	groupID, err := uuid.Parse(ctx.QueryParam("group_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid or missing group_id")
	}

	resp, appErr := c.service.List(ctx.Request().Context(), groupID, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Notes retrieved")
}

func (c *NoteController) GetByID(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid note ID")
	}

	resp, appErr := c.service.GetByID(ctx.Request().Context(), id, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Note retrieved")
}

func (c *NoteController) Update(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid note ID")
	}

	req := new(dto.UpdateNoteRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, appErr := c.service.Update(ctx.Request().Context(), id, req, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Note updated")
}

func (c *NoteController) Delete(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid note ID")
	}

	if appErr := c.service.Delete(ctx.Request().Context(), id, claims.Email); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Note deleted")
}
