package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"familyhub/core/database"
	"familyhub/core/logger"
	"familyhub/modules/event/entity"

	"github.com/google/uuid"
)

type EventRepository interface {
	Create(ctx context.Context, ev *entity.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID, from, to *time.Time) ([]entity.Event, error)
	Update(ctx context.Context, ev *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db database.Database
}

func NewEventRepository(db database.Database) EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, group_id, title, description, date, start_time, end_time,
	location_name, location_address, latitude, longitude, event_type, color,
	is_recurring, recurrence_pattern, recurrence_end_date, parent_event_id,
	reminder_minutes, rsvp_enabled, rsvp_responses, attendees, created_by,
	created_at, updated_at`

func (r *eventRepository) Create(ctx context.Context, ev *entity.Event) error {
	query := `
		INSERT INTO events (group_id, title, description, date, start_time, end_time,
			location_name, location_address, latitude, longitude, event_type, color,
			is_recurring, recurrence_pattern, recurrence_end_date, parent_event_id,
			reminder_minutes, rsvp_enabled, rsvp_responses, attendees, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		ev.GroupID,
		ev.Title,
		ev.Description,
		ev.Date,
		ev.StartTime,
		ev.EndTime,
		ev.LocationName,
		ev.LocationAddress,
		ev.Latitude,
		ev.Longitude,
		ev.EventType,
		ev.Color,
		ev.IsRecurring,
		ev.RecurrencePattern,
		ev.RecurrenceEndDate,
		ev.ParentEventID,
		ev.ReminderMinutes,
		ev.RSVPEnabled,
		ev.RSVPResponses,
		ev.Attendees,
		ev.CreatedBy,
	).Scan(&ev.ID, &ev.CreatedAt, &ev.UpdatedAt)
	if err != nil {
		logger.Error("EventRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var ev entity.Event
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	err := r.db.GetContext(ctx, &ev, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID:Error:", err)
		return nil, err
	}
	return &ev, nil
}

func (r *eventRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, from, to *time.Time) ([]entity.Event, error) {
	conditions := []string{"group_id = $1"}
	args := []interface{}{groupID}
	argIndex := 2

	if from != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIndex))
		args = append(args, *from)
		argIndex++
	}
	if to != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIndex))
		args = append(args, *to)
		argIndex++
	}

	query := `SELECT ` + eventColumns + ` FROM events WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY date ASC, start_time ASC NULLS LAST`

	var events []entity.Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return []entity.Event{}, nil
		}
		logger.Error("EventRepository:ListByGroup:Error:", err)
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, ev *entity.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, date = $3, start_time = $4, end_time = $5,
			location_name = $6, location_address = $7, latitude = $8, longitude = $9,
			event_type = $10, color = $11, reminder_minutes = $12, rsvp_enabled = $13,
			rsvp_responses = $14, attendees = $15, updated_at = now()
		WHERE id = $16
	`
	result, err := r.db.SQLx().ExecContext(ctx, query,
		ev.Title,
		ev.Description,
		ev.Date,
		ev.StartTime,
		ev.EndTime,
		ev.LocationName,
		ev.LocationAddress,
		ev.Latitude,
		ev.Longitude,
		ev.EventType,
		ev.Color,
		ev.ReminderMinutes,
		ev.RSVPEnabled,
		ev.RSVPResponses,
		ev.Attendees,
		ev.ID,
	)
	if err != nil {
		logger.Error("EventRepository:Update:Error:", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("EventRepository:Update - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("event with id %s not found", ev.ID)
	}
	return nil
}

// Delete removes one event. Instances materialized from a recurring parent
// are standalone rows, so deleting the parent leaves them in place.
func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("EventRepository:Delete:Error:", err)
		return err
	}
	return nil
}
