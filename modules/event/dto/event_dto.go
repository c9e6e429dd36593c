package dto

import (
	"time"

	"familyhub/core/entity"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	GroupID           uuid.UUID `json:"group_id" validate:"required"`
	Title             string    `json:"title" validate:"required,max=200"`
	Description       string    `json:"description"`
	Date              string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime         *string   `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime           *string   `json:"end_time" validate:"omitempty,datetime=15:04"`
	LocationName      *string   `json:"location_name"`
	LocationAddress   *string   `json:"location_address"`
	Latitude          *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude         *float64  `json:"longitude" validate:"omitempty,longitude"`
	EventType         string    `json:"event_type" validate:"omitempty,oneof=general birthday appointment outing reminder"`
	Color             string    `json:"color"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurrencePattern *string   `json:"recurrence_pattern" validate:"omitempty,oneof=daily weekly monthly yearly"`
	RecurrenceEndDate *string   `json:"recurrence_end_date" validate:"omitempty,datetime=2006-01-02"`
	ReminderMinutes   *int      `json:"reminder_minutes" validate:"omitempty,min=0"`
	RSVPEnabled       bool      `json:"rsvp_enabled"`
	Attendees         []string  `json:"attendees"`
}

type UpdateEventRequest struct {
	Title           *string  `json:"title" validate:"omitempty,max=200"`
	Description     *string  `json:"description"`
	Date            *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime       *string  `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime         *string  `json:"end_time" validate:"omitempty,datetime=15:04"`
	LocationName    *string  `json:"location_name"`
	LocationAddress *string  `json:"location_address"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,longitude"`
	EventType       *string  `json:"event_type" validate:"omitempty,oneof=general birthday appointment outing reminder"`
	Color           *string  `json:"color"`
	ReminderMinutes *int     `json:"reminder_minutes" validate:"omitempty,min=0"`
	RSVPEnabled     *bool    `json:"rsvp_enabled"`
	Attendees       []string `json:"attendees"`
}

type RSVPRequest struct {
	Status string `json:"status" validate:"required,oneof=attending declined maybe"`
}

type EventResponse struct {
	ID                uuid.UUID       `json:"id"`
	GroupID           uuid.UUID       `json:"group_id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Date              string          `json:"date"`
	StartTime         *string         `json:"start_time"`
	EndTime           *string         `json:"end_time"`
	LocationName      *string         `json:"location_name"`
	LocationAddress   *string         `json:"location_address"`
	Latitude          *float64        `json:"latitude"`
	Longitude         *float64        `json:"longitude"`
	EventType         string          `json:"event_type"`
	Color             string          `json:"color"`
	IsRecurring       bool            `json:"is_recurring"`
	RecurrencePattern *string         `json:"recurrence_pattern"`
	RecurrenceEndDate *string         `json:"recurrence_end_date"`
	ParentEventID     *uuid.UUID      `json:"parent_event_id"`
	ReminderMinutes   *int            `json:"reminder_minutes"`
	RSVPEnabled       bool            `json:"rsvp_enabled"`
	RSVPResponses     entity.EmailMap `json:"rsvp_responses"`
	Attendees         []string        `json:"attendees"`
	CreatedBy         string          `json:"created_by"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}
