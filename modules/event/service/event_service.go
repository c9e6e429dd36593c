package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"familyhub/core/constants"
	coreEntity "familyhub/core/entity"
	"familyhub/core/errors"
	"familyhub/core/logger"
	"familyhub/core/queue"
	"familyhub/modules/event/dto"
	"familyhub/modules/event/entity"
	"familyhub/modules/event/mapper"
	"familyhub/modules/event/repository"
	groupService "familyhub/modules/group/service"
	notificationDto "familyhub/modules/notification/dto"
	notificationService "familyhub/modules/notification/service"
	userRepo "familyhub/modules/user/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ReminderScheduler abstracts the task queue so the service can be tested
// without Redis.
type ReminderScheduler interface {
	ScheduleEventReminder(ctx context.Context, payload queue.EventReminderPayload, at time.Time) error
}

type EventService struct {
	repo      repository.EventRepository
	groups    *groupService.GroupService
	users     userRepo.UserRepository
	notifier  notificationService.Notifier
	scheduler ReminderScheduler
}

func NewEventService(
	repo repository.EventRepository,
	groups *groupService.GroupService,
	users userRepo.UserRepository,
	notifier notificationService.Notifier,
	scheduler ReminderScheduler,
) *EventService {
	return &EventService{repo: repo, groups: groups, users: users, notifier: notifier, scheduler: scheduler}
}

// Create persists the event and, for recurring events, its materialized
// instances. Instances are inserted one at a time; a failure mid-loop keeps
// what was already written, stops the loop, and surfaces the error.
func (s *EventService) Create(ctx context.Context, req *dto.CreateEventRequest, email string) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, appErr := s.groups.RequireMember(ctx, req.GroupID, email)
	if appErr != nil {
		return nil, appErr
	}

	date, err := mapper.ParseDate(req.Date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid date", err)
	}

	ev := &entity.Event{
		GroupID:         req.GroupID,
		Title:           req.Title,
		Description:     req.Description,
		Date:            date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		LocationName:    req.LocationName,
		LocationAddress: req.LocationAddress,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		EventType:       entity.EventTypeGeneral,
		Color:           req.Color,
		IsRecurring:     req.IsRecurring,
		ReminderMinutes: req.ReminderMinutes,
		RSVPEnabled:     req.RSVPEnabled,
		RSVPResponses:   coreEntity.EmailMap{},
		Attendees:       coreEntity.StringList(req.Attendees),
		CreatedBy:       email,
	}
	if req.EventType != "" {
		ev.EventType = entity.EventType(req.EventType)
	}
	if ev.Attendees == nil {
		ev.Attendees = coreEntity.StringList{}
	}
	if req.IsRecurring {
		if req.RecurrencePattern == nil || req.RecurrenceEndDate == nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "recurring events need a pattern and an end date", nil)
		}
		pattern := entity.RecurrencePattern(*req.RecurrencePattern)
		ev.RecurrencePattern = &pattern
		end, err := mapper.ParseDate(*req.RecurrenceEndDate)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid recurrence end date", err)
		}
		ev.RecurrenceEndDate = &end
	}

	if err := s.repo.Create(ctx, ev); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create event failed", err)
	}

	if ev.IsRecurring {
		for _, instance := range Materialize(ev, ev.ID) {
			inst := instance
			if err := s.repo.Create(ctx, &inst); err != nil {
				logger.Error("EventService:Create:Instance:Error:", err)
				return nil, errors.NewAppError(errors.ErrCreateFailed, "create event instance failed", err)
			}
		}
	}

	if ev.ReminderMinutes != nil {
		s.scheduleReminder(ctx, ev, group.Members)
	}

	return mapper.ToEventResponse(ev), nil
}

func (s *EventService) List(ctx context.Context, groupID uuid.UUID, from, to *time.Time, email string) (*dto.EventListResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, groupID, email); appErr != nil {
		return nil, appErr
	}

	events, err := s.repo.ListByGroup(ctx, groupID, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list events failed", err)
	}
	return mapper.ToEventListResponse(events), nil
}

func (s *EventService) GetByID(ctx context.Context, id uuid.UUID, email string) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	ev, appErr := s.loadForMember(ctx, id, email)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToEventResponse(ev), nil
}

// Update edits a single event. Instances of a recurring parent are not
// touched when the parent changes.
func (s *EventService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest, email string) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	ev, appErr := s.loadForMember(ctx, id, email)
	if appErr != nil {
		return nil, appErr
	}

	if req.Title != nil {
		ev.Title = *req.Title
	}
	if req.Description != nil {
		ev.Description = *req.Description
	}
	if req.Date != nil {
		date, err := mapper.ParseDate(*req.Date)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid date", err)
		}
		ev.Date = date
	}
	if req.StartTime != nil {
		ev.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		ev.EndTime = req.EndTime
	}
	if req.LocationName != nil {
		ev.LocationName = req.LocationName
	}
	if req.LocationAddress != nil {
		ev.LocationAddress = req.LocationAddress
	}
	if req.Latitude != nil {
		ev.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		ev.Longitude = req.Longitude
	}
	if req.EventType != nil {
		ev.EventType = entity.EventType(*req.EventType)
	}
	if req.Color != nil {
		ev.Color = *req.Color
	}
	if req.ReminderMinutes != nil {
		ev.ReminderMinutes = req.ReminderMinutes
	}
	if req.RSVPEnabled != nil {
		ev.RSVPEnabled = *req.RSVPEnabled
	}
	if req.Attendees != nil {
		ev.Attendees = coreEntity.StringList(req.Attendees)
	}

	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update event failed", err)
	}
	return mapper.ToEventResponse(ev), nil
}

func (s *EventService) Delete(ctx context.Context, id uuid.UUID, email string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.loadForMember(ctx, id, email); appErr != nil {
		return appErr
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete event failed", err)
	}
	return nil
}

// RSVP records the caller's response on an RSVP-enabled event.
func (s *EventService) RSVP(ctx context.Context, id uuid.UUID, req *dto.RSVPRequest, email string) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	ev, appErr := s.loadForMember(ctx, id, email)
	if appErr != nil {
		return nil, appErr
	}
	if !ev.RSVPEnabled {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "RSVP is not enabled for this event", nil)
	}

	if ev.RSVPResponses == nil {
		ev.RSVPResponses = coreEntity.EmailMap{}
	}
	ev.RSVPResponses[email] = req.Status

	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "record RSVP failed", err)
	}
	return mapper.ToEventResponse(ev), nil
}

// HandleReminderTask consumes a fired reminder from the queue and turns it
// into a notification per group member with an account.
func (s *EventService) HandleReminderTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.EventReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal reminder payload: %w", err)
	}

	for _, email := range payload.Emails {
		user, err := s.users.GetByEmail(ctx, email)
		if err != nil || user == nil {
			continue
		}
		if err := s.notifier.Create(ctx, &notificationDto.CreateNotificationRequest{
			UserID:  user.ID,
			Title:   "Event reminder",
			Message: fmt.Sprintf("%s is coming up on %s", payload.Title, payload.EventDate),
			Type:    "event_reminder",
			Data:    map[string]interface{}{"event_id": payload.EventID, "group_id": payload.GroupID},
		}); err != nil {
			logger.Warn("EventService:HandleReminderTask:Notify:Error:", "email", email, "error", err.Error())
		}
	}
	logger.Info("EventService:HandleReminderTask:Done", "event_id", payload.EventID, "recipients", len(payload.Emails))
	return nil
}

func (s *EventService) loadForMember(ctx context.Context, id uuid.UUID, email string) (*entity.Event, *errors.AppError) {
	ev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	if _, appErr := s.groups.RequireMember(ctx, ev.GroupID, email); appErr != nil {
		return nil, appErr
	}
	return ev, nil
}

func (s *EventService) scheduleReminder(ctx context.Context, ev *entity.Event, members []string) {
	at := reminderTime(ev)
	payload := queue.EventReminderPayload{
		EventID:   ev.ID.String(),
		GroupID:   ev.GroupID.String(),
		Title:     ev.Title,
		EventDate: ev.Date.Format("2006-01-02"),
		Emails:    members,
	}
	if err := s.scheduler.ScheduleEventReminder(ctx, payload, at); err != nil {
		logger.Error("EventService:scheduleReminder:Error:", err)
	}
}

// reminderTime is the event start minus the reminder offset. Events with no
// start time count from midnight.
func reminderTime(ev *entity.Event) time.Time {
	start := time.Date(ev.Date.Year(), ev.Date.Month(), ev.Date.Day(), 0, 0, 0, 0, time.UTC)
	if ev.StartTime != nil {
		if t, err := time.Parse("15:04", *ev.StartTime); err == nil {
			start = start.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
		}
	}
	return start.Add(-time.Duration(*ev.ReminderMinutes) * time.Minute)
}
