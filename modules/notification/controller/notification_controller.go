package controller

import (
	"familyhub/core/controller"
	"familyhub/core/errors"
	"familyhub/core/params"
	"familyhub/modules/notification/dto"
	"familyhub/modules/notification/service"

	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	controller.BaseController
	service *service.NotificationService
}

func NewNotificationController(service *service.NotificationService) *NotificationController {
	return &NotificationController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *NotificationController) GetMyNotifications(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	resp, err := c.service.GetMyNotifications(ctx.Request().Context(), claims.UserID, params.FromEcho(ctx))
	if err != nil {
		return c.InternalServerError(errors.ErrGetFailed, err.Error())
	}
	return c.SuccessResponse(ctx, resp, "Notifications retrieved")
}

func (c *NotificationController) CountUnread(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	count, err := c.service.CountUnread(ctx.Request().Context(), claims.UserID)
	if err != nil {
		return c.InternalServerError(errors.ErrGetFailed, err.Error())
	}
	return c.SuccessResponse(ctx, map[string]int{"count": count}, "Unread count retrieved")
}

func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.MarkReadRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	if err := c.service.MarkAsRead(ctx.Request().Context(), claims.UserID, req.IDs); err != nil {
		return c.InternalServerError(errors.ErrUpdateFailed, err.Error())
	}
	return c.SuccessResponse(ctx, nil, "Notifications marked as read")
}

func (c *NotificationController) MarkAllAsRead(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	if err := c.service.MarkAllAsRead(ctx.Request().Context(), claims.UserID); err != nil {
		return c.InternalServerError(errors.ErrUpdateFailed, err.Error())
	}
	return c.SuccessResponse(ctx, nil, "All notifications marked as read")
}
