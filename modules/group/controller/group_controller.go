package controller

import (
	"familyhub/core/controller"
	"familyhub/core/errors"
	"familyhub/core/params"
	"familyhub/modules/group/dto"
	"familyhub/modules/group/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type GroupController struct {
	controller.BaseController
	service *service.GroupService
}

func NewGroupController(service *service.GroupService) *GroupController {
	return &GroupController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *GroupController) Create(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.GroupRequest)
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
	return c.SuccessResponse(ctx, resp, "Group created")
}

func (c *GroupController) List(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	resp, appErr := c.service.GetMine(ctx.Request().Context(), claims.Email, params.FromEcho(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Groups retrieved")
}

func (c *GroupController) GetByID(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid group ID")
	}

	resp, appErr := c.service.GetByID(ctx.Request().Context(), id, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Group retrieved")
}

func (c *GroupController) GetBySlug(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	resp, appErr := c.service.GetBySlug(ctx.Request().Context(), ctx.Param("slug"), claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Group retrieved")
}

func (c *GroupController) Update(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid group ID")
	}

	req := new(dto.UpdateGroupRequest)
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
	return c.SuccessResponse(ctx, resp, "Group updated")
}

func (c *GroupController) Delete(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid group ID")
	}

	if appErr := c.service.Delete(ctx.Request().Context(), id, claims.Email); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Group deleted")
}
