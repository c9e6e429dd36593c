package entity

import (
	"time"

	"familyhub/core/entity"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeGeneral     EventType = "general"
	EventTypeBirthday    EventType = "birthday"
	EventTypeAppointment EventType = "appointment"
	EventTypeOuting      EventType = "outing"
	EventTypeReminder    EventType = "reminder"
)

type RecurrencePattern string

const (
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
	RecurrenceYearly  RecurrencePattern = "yearly"
)

type RSVPStatus string

const (
	RSVPAttending RSVPStatus = "attending"
	RSVPDeclined  RSVPStatus = "declined"
	RSVPMaybe     RSVPStatus = "maybe"
)

type Event struct {
	entity.BaseEntity
	GroupID           uuid.UUID          `db:"group_id" json:"group_id"`
	Title             string             `db:"title" json:"title"`
	Description       string             `db:"description" json:"description"`
	Date              time.Time          `db:"date" json:"date"`
	StartTime         *string            `db:"start_time" json:"start_time"`
	EndTime           *string            `db:"end_time" json:"end_time"`
	LocationName      *string            `db:"location_name" json:"location_name"`
	LocationAddress   *string            `db:"location_address" json:"location_address"`
	Latitude          *float64           `db:"latitude" json:"latitude"`
	Longitude         *float64           `db:"longitude" json:"longitude"`
	EventType         EventType          `db:"event_type" json:"event_type"`
	Color             string             `db:"color" json:"color"`
	IsRecurring       bool               `db:"is_recurring" json:"is_recurring"`
	RecurrencePattern *RecurrencePattern `db:"recurrence_pattern" json:"recurrence_pattern"`
	RecurrenceEndDate *time.Time         `db:"recurrence_end_date" json:"recurrence_end_date"`
	ParentEventID     *uuid.UUID         `db:"parent_event_id" json:"parent_event_id"`
	ReminderMinutes   *int               `db:"reminder_minutes" json:"reminder_minutes"`
	RSVPEnabled       bool               `db:"rsvp_enabled" json:"rsvp_enabled"`
	RSVPResponses     entity.EmailMap    `db:"rsvp_responses" json:"rsvp_responses"`
	Attendees         entity.StringList  `db:"attendees" json:"attendees"`
	CreatedBy         string             `db:"created_by" json:"created_by"`
}
