package service

import (
	"time"

	"familyhub/modules/event/entity"

	"github.com/google/uuid"
)

// Materialize expands a recurring event template into its concrete
// occurrences. The first occurrence is the template itself and is not
// emitted; every later date up to and including the end date produces a
// copy pointing back at the parent. An end date before the start yields
// nothing.
func Materialize(template *entity.Event, parentID uuid.UUID) []entity.Event {
	if template.RecurrencePattern == nil || template.RecurrenceEndDate == nil {
		return nil
	}
	end := *template.RecurrenceEndDate
	if end.Before(template.Date) {
		return nil
	}

	var instances []entity.Event
	for n := 1; ; n++ {
		next := advance(template.Date, *template.RecurrencePattern, n)
		if next.After(end) {
			break
		}
		instance := *template
		instance.ID = uuid.Nil
		instance.Date = next
		instance.ParentEventID = &parentID
		instance.IsRecurring = false
		instance.RecurrencePattern = nil
		instance.RecurrenceEndDate = nil
		instances = append(instances, instance)
	}
	return instances
}

// advance steps n periods from the original start date. Stepping from the
// start each time keeps monthly series anchored: Jan 31 clamps to Feb 28
// but March lands back on the 31st.
func advance(start time.Time, pattern entity.RecurrencePattern, n int) time.Time {
	switch pattern {
	case entity.RecurrenceDaily:
		return start.AddDate(0, 0, n)
	case entity.RecurrenceWeekly:
		return start.AddDate(0, 0, 7*n)
	case entity.RecurrenceMonthly:
		return addMonthsClamped(start, n)
	case entity.RecurrenceYearly:
		return addMonthsClamped(start, 12*n)
	default:
		return start
	}
}

// addMonthsClamped adds months without the Go AddDate overflow, so the 31st
// of a month lands on the last day of shorter target months instead of
// rolling into the next one.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	if last := lastDayOfMonth(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
