package controller

import (
	"time"

	"familyhub/core/controller"
	"familyhub/core/errors"
	"familyhub/modules/event/dto"
	"familyhub/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	service *service.EventService
}

func NewEventController(service *service.EventService) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *EventController) Create(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.CreateEventRequest)
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
	return c.SuccessResponse(ctx, resp, "Event created")
}

func (c *EventController) List(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	groupID, err := uuid.Parse(ctx.QueryParam("group_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid or missing group_id")
	}

	from, err := parseDateParam(ctx.QueryParam("from"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid from date")
	}
	to, err := parseDateParam(ctx.QueryParam("to"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid to date")
	}

	resp, appErr := c.service.List(ctx.Request().Context(), groupID, from, to, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Events retrieved")
}

func (c *EventController) GetByID(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID")
	}

	resp, appErr := c.service.GetByID(ctx.Request().Context(), id, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Event retrieved")
}

func (c *EventController) Update(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID")
	}

	req := new(dto.UpdateEventRequest)
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
	return c.SuccessResponse(ctx, resp, "Event updated")
}

func (c *EventController) Delete(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID")
	}

	if appErr := c.service.Delete(ctx.Request().Context(), id, claims.Email); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Event deleted")
}

func (c *EventController) RSVP(ctx echo.Context) error {
	claims, err := controller.UserClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID")
	}

	req := new(dto.RSVPRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, appErr := c.service.RSVP(ctx.Request().Context(), id, req, claims.Email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "RSVP recorded")
}

func parseDateParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
