package service

import (
	"context"
	"errors"
	"testing"
	"time"

	coreEntity "familyhub/core/entity"
	appErrors "familyhub/core/errors"
	"familyhub/core/params"
	"familyhub/core/queue"
	"familyhub/modules/event/dto"
	"familyhub/modules/event/entity"
	groupEntity "familyhub/modules/group/entity"
	groupService "familyhub/modules/group/service"
	notificationDto "familyhub/modules/notification/dto"
	userEntity "familyhub/modules/user/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo stores events in insertion order and can be told to fail on
// the Nth Create call.
type fakeEventRepo struct {
	events      []entity.Event
	createCalls int
	failOnCall  int // 0 means never fail
}

func (f *fakeEventRepo) Create(ctx context.Context, ev *entity.Event) error {
	f.createCalls++
	if f.failOnCall > 0 && f.createCalls == f.failOnCall {
		return errors.New("insert failed")
	}
	ev.ID = uuid.New()
	f.events = append(f.events, *ev)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	for i := range f.events {
		if f.events[i].ID == id {
			cp := f.events[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) ListByGroup(ctx context.Context, groupID uuid.UUID, from, to *time.Time) ([]entity.Event, error) {
	var out []entity.Event
	for _, ev := range f.events {
		if ev.GroupID == groupID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, ev *entity.Event) error {
	for i := range f.events {
		if f.events[i].ID == ev.ID {
			f.events[i] = *ev
		}
	}
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.events {
		if f.events[i].ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubGroupRepo struct {
	group *groupEntity.Group
}

func (f *stubGroupRepo) Create(ctx context.Context, g *groupEntity.Group) error { return nil }

func (f *stubGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*groupEntity.Group, error) {
	if f.group != nil && f.group.ID == id {
		cp := *f.group
		return &cp, nil
	}
	return nil, nil
}

func (f *stubGroupRepo) GetBySlug(ctx context.Context, slug string) (*groupEntity.Group, error) {
	return nil, nil
}

func (f *stubGroupRepo) GetByMember(ctx context.Context, email string, qp params.QueryParams) (*groupEntity.PaginatedGroupEntity, error) {
	return &groupEntity.PaginatedGroupEntity{}, nil
}

func (f *stubGroupRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return false, nil
}

func (f *stubGroupRepo) Update(ctx context.Context, g *groupEntity.Group) error { return nil }
func (f *stubGroupRepo) Delete(ctx context.Context, id uuid.UUID) error         { return nil }

type stubUserRepo struct{}

func (stubUserRepo) Create(ctx context.Context, u *userEntity.User) error { return nil }
func (stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*userEntity.User, error) {
	return nil, nil
}
func (stubUserRepo) GetByEmail(ctx context.Context, email string) (*userEntity.User, error) {
	return nil, nil
}
func (stubUserRepo) GetByGoogleID(ctx context.Context, googleID string) (*userEntity.User, error) {
	return nil, nil
}
func (stubUserRepo) Update(ctx context.Context, u *userEntity.User) error { return nil }

type stubNotifier struct{}

func (stubNotifier) Create(ctx context.Context, req *notificationDto.CreateNotificationRequest) error {
	return nil
}

type stubScheduler struct{}

func (stubScheduler) ScheduleEventReminder(ctx context.Context, payload queue.EventReminderPayload, at time.Time) error {
	return nil
}

func eventFixture(repo *fakeEventRepo, members ...string) (*EventService, *groupEntity.Group) {
	group := &groupEntity.Group{
		Name:       "G",
		Type:       groupEntity.GroupTypeFamily,
		OwnerEmail: members[0],
		Members:    coreEntity.StringList(members),
	}
	group.ID = uuid.New()

	groups := groupService.NewGroupService(&stubGroupRepo{group: group}, stubUserRepo{})
	return NewEventService(repo, groups, stubUserRepo{}, stubNotifier{}, stubScheduler{}), group
}

func weeklyRequest(groupID uuid.UUID) *dto.CreateEventRequest {
	pattern := "weekly"
	end := "2024-01-22"
	return &dto.CreateEventRequest{
		GroupID:           groupID,
		Title:             "Standup",
		Date:              "2024-01-01",
		IsRecurring:       true,
		RecurrencePattern: &pattern,
		RecurrenceEndDate: &end,
	}
}

func TestCreateRecurringEventPersistsInstances(t *testing.T) {
	repo := &fakeEventRepo{}
	svc, group := eventFixture(repo, "a@x.com")

	resp, appErr := svc.Create(context.Background(), weeklyRequest(group.ID), "a@x.com")

	require.Nil(t, appErr)
	require.NotNil(t, resp)
	// Parent plus the Jan 8, 15 and 22 instances.
	require.Len(t, repo.events, 4)
	for _, ev := range repo.events[1:] {
		require.NotNil(t, ev.ParentEventID)
		assert.Equal(t, resp.ID, *ev.ParentEventID)
		assert.False(t, ev.IsRecurring)
	}
}

func TestCreateRecurringEventInstanceFailureStopsAndErrors(t *testing.T) {
	// Fail on the second instance (third Create overall). The parent and the
	// first instance stay, the remaining instances are never attempted.
	repo := &fakeEventRepo{failOnCall: 3}
	svc, group := eventFixture(repo, "a@x.com")

	resp, appErr := svc.Create(context.Background(), weeklyRequest(group.ID), "a@x.com")

	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrCreateFailed, appErr.Code)
	assert.Nil(t, resp)
	assert.Equal(t, 3, repo.createCalls, "loop must stop at the first failure")
	assert.Len(t, repo.events, 2, "already written rows are kept")
}

func TestCreateRecurringEventNeedsPatternAndEnd(t *testing.T) {
	repo := &fakeEventRepo{}
	svc, group := eventFixture(repo, "a@x.com")

	req := weeklyRequest(group.ID)
	req.RecurrenceEndDate = nil
	_, appErr := svc.Create(context.Background(), req, "a@x.com")

	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrInvalidInput, appErr.Code)
	assert.Zero(t, repo.createCalls)
}
