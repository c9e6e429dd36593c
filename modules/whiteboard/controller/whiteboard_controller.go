package controller

import (
	"time"

	"familyhub/core/controller"
	"familyhub/core/errors"
	"familyhub/modules/whiteboard/dto"
	"familyhub/modules/whiteboard/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type WhiteboardController struct {
	controller.BaseController
	service *service.WhiteboardService
}

func NewWhiteboardController(service *service.WhiteboardService) *WhiteboardController {
	return &WhiteboardController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *WhiteboardController) AddStroke(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid group ID")
	}

	req := new(dto.CreateStrokeRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, appErr := c.service.AddStroke(ctx.Request().Context(), groupID, req, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Stroke added")
}

func (c *WhiteboardController) List(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid group ID")
	}

	var since *time.Time
	if raw := ctx.QueryParam("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidRequestData, "Invalid since timestamp")
		}
		since = &t
	}

	resp, appErr := c.service.List(ctx.Request().Context(), groupID, since, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Strokes retrieved")
}

func (c *WhiteboardController) Clear(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid group ID")
	}

	if appErr := c.service.Clear(ctx.Request().Context(), groupID, claims.Email); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Whiteboard cleared")
}
