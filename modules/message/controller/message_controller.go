package controller

import (
	"strconv"
	"time"

	"familyhub/core/controller"
	"familyhub/core/errors"
	"familyhub/modules/message/dto"
	"familyhub/modules/message/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type MessageController struct {
	controller.BaseController
	service *service.MessageService
}

func NewMessageController(service *service.MessageService) *MessageController {
	return &MessageController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *MessageController) Send(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid group ID")
	}

	req := new(dto.CreateMessageRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, appErr := c.service.Send(ctx.Request().Context(), groupID, req, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Message sent")
}

func (c *MessageController) List(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid group ID")
	}

	var after *time.Time
	if raw := ctx.QueryParam("after"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidRequestData, "Invalid after timestamp")
		}
		after = &t
	}
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	resp, appErr := c.service.List(ctx.Request().Context(), groupID, after, limit, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Messages retrieved")
}

func (c *MessageController) Heartbeat(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid group ID")
	}

	if appErr := c.service.Heartbeat(ctx.Request().Context(), groupID, claims.Email); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Presence updated")
}

func (c *MessageController) Presence(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid group ID")
	}

	resp, appErr := c.service.Presence(ctx.Request().Context(), groupID, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Presence retrieved")
}

func (c *MessageController) Typing(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid group ID")
	}

	if appErr := c.service.Typing(ctx.Request().Context(), groupID, claims.Email); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Typing updated")
}

func (c *MessageController) WhoIsTyping(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid group ID")
	}

	resp, appErr := c.service.WhoIsTyping(ctx.Request().Context(), groupID, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Typing retrieved")
}
