package service

import (
	"testing"
	"time"

	"familyhub/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func recurringEvent(start, end time.Time, pattern entity.RecurrencePattern) *entity.Event {
	return &entity.Event{
		Title:             "Weekly sync",
		Date:              start,
		IsRecurring:       true,
		RecurrencePattern: &pattern,
		RecurrenceEndDate: &end,
	}
}

func dates(instances []entity.Event) []time.Time {
	out := make([]time.Time, len(instances))
	for i, inst := range instances {
		out[i] = inst.Date
	}
	return out
}

func TestMaterializeWeekly(t *testing.T) {
	ev := recurringEvent(day(2024, time.January, 1), day(2024, time.January, 22), entity.RecurrenceWeekly)
	parentID := uuid.New()

	instances := Materialize(ev, parentID)

	require.Len(t, instances, 3)
	assert.Equal(t, []time.Time{
		day(2024, time.January, 8),
		day(2024, time.January, 15),
		day(2024, time.January, 22),
	}, dates(instances))

	for _, inst := range instances {
		assert.Equal(t, parentID, *inst.ParentEventID)
		assert.False(t, inst.IsRecurring)
		assert.Nil(t, inst.RecurrencePattern)
		assert.Nil(t, inst.RecurrenceEndDate)
		assert.Equal(t, ev.Title, inst.Title)
	}
}

func TestMaterializeEndBeforeStart(t *testing.T) {
	ev := recurringEvent(day(2024, time.March, 10), day(2024, time.March, 1), entity.RecurrenceDaily)
	assert.Empty(t, Materialize(ev, uuid.New()))
}

func TestMaterializeEndEqualsStart(t *testing.T) {
	start := day(2024, time.March, 10)
	ev := recurringEvent(start, start, entity.RecurrenceDaily)
	assert.Empty(t, Materialize(ev, uuid.New()))
}

func TestMaterializeDaily(t *testing.T) {
	ev := recurringEvent(day(2024, time.June, 1), day(2024, time.June, 4), entity.RecurrenceDaily)
	instances := Materialize(ev, uuid.New())
	assert.Equal(t, []time.Time{
		day(2024, time.June, 2),
		day(2024, time.June, 3),
		day(2024, time.June, 4),
	}, dates(instances))
}

func TestMaterializeMonthlyClampsToShortMonths(t *testing.T) {
	ev := recurringEvent(day(2024, time.January, 31), day(2024, time.April, 30), entity.RecurrenceMonthly)
	instances := Materialize(ev, uuid.New())

	// 2024 is a leap year: Jan 31 -> Feb 29, then back to the 31st where the
	// month allows, Apr 30 at the end.
	assert.Equal(t, []time.Time{
		day(2024, time.February, 29),
		day(2024, time.March, 31),
		day(2024, time.April, 30),
	}, dates(instances))
}

func TestMaterializeMonthlyClampNonLeapYear(t *testing.T) {
	ev := recurringEvent(day(2023, time.January, 31), day(2023, time.February, 28), entity.RecurrenceMonthly)
	instances := Materialize(ev, uuid.New())
	assert.Equal(t, []time.Time{day(2023, time.February, 28)}, dates(instances))
}

func TestMaterializeYearly(t *testing.T) {
	ev := recurringEvent(day(2024, time.February, 29), day(2026, time.December, 31), entity.RecurrenceYearly)
	instances := Materialize(ev, uuid.New())
	assert.Equal(t, []time.Time{
		day(2025, time.February, 28),
		day(2026, time.February, 28),
	}, dates(instances))
}

func TestMaterializeNoPattern(t *testing.T) {
	end := day(2024, time.May, 1)
	ev := &entity.Event{Date: day(2024, time.April, 1), RecurrenceEndDate: &end}
	assert.Nil(t, Materialize(ev, uuid.New()))
}

func TestReminderTime(t *testing.T) {
	start := "09:30"
	minutes := 15
	ev := &entity.Event{
		Date:            day(2024, time.July, 4),
		StartTime:       &start,
		ReminderMinutes: &minutes,
	}
	assert.Equal(t, time.Date(2024, time.July, 4, 9, 15, 0, 0, time.UTC), reminderTime(ev))
}

func TestReminderTimeNoStartTime(t *testing.T) {
	minutes := 60
	ev := &entity.Event{
		Date:            day(2024, time.July, 4),
		ReminderMinutes: &minutes,
	}
	assert.Equal(t, time.Date(2024, time.July, 3, 23, 0, 0, 0, time.UTC), reminderTime(ev))
}
