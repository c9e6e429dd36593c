package mapper

import (
	"time"

	"familyhub/modules/event/dto"
	"familyhub/modules/event/entity"
)

const dateLayout = "2006-01-02"

func ToEventResponse(ev *entity.Event) *dto.EventResponse {
	resp := &dto.EventResponse{
		ID:              ev.ID,
		GroupID:         ev.GroupID,
		Title:           ev.Title,
		Description:     ev.Description,
		Date:            ev.Date.Format(dateLayout),
		StartTime:       ev.StartTime,
		EndTime:         ev.EndTime,
		LocationName:    ev.LocationName,
		LocationAddress: ev.LocationAddress,
		Latitude:        ev.Latitude,
		Longitude:       ev.Longitude,
		EventType:       string(ev.EventType),
		Color:           ev.Color,
		IsRecurring:     ev.IsRecurring,
		ParentEventID:   ev.ParentEventID,
		ReminderMinutes: ev.ReminderMinutes,
		RSVPEnabled:     ev.RSVPEnabled,
		RSVPResponses:   ev.RSVPResponses,
		Attendees:       ev.Attendees,
		CreatedBy:       ev.CreatedBy,
		CreatedAt:       ev.CreatedAt,
		UpdatedAt:       ev.UpdatedAt,
	}
	if ev.RecurrencePattern != nil {
		pattern := string(*ev.RecurrencePattern)
		resp.RecurrencePattern = &pattern
	}
	if ev.RecurrenceEndDate != nil {
		end := ev.RecurrenceEndDate.Format(dateLayout)
		resp.RecurrenceEndDate = &end
	}
	return resp
}

func ToEventListResponse(events []entity.Event) *dto.EventListResponse {
	items := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		items = append(items, *ToEventResponse(&events[i]))
	}
	return &dto.EventListResponse{Events: items, Total: len(items)}
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
