package service

import (
	"context"
	"testing"
	"time"

	coreEntity "familyhub/core/entity"
	"familyhub/core/errors"
	"familyhub/core/params"
	groupEntity "familyhub/modules/group/entity"
	"familyhub/modules/invitation/dto"
	"familyhub/modules/invitation/entity"
	notificationDto "familyhub/modules/notification/dto"
	userEntity "familyhub/modules/user/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvitationRepo struct {
	invitations map[uuid.UUID]*entity.Invitation
	accepted    *groupEntity.Group
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: map[uuid.UUID]*entity.Invitation{}}
}

func (f *fakeInvitationRepo) Create(ctx context.Context, inv *entity.Invitation) error {
	inv.ID = uuid.New()
	inv.CreatedAt = time.Now().UTC()
	cp := *inv
	f.invitations[inv.ID] = &cp
	return nil
}

func (f *fakeInvitationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error) {
	inv, ok := f.invitations[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvitationRepo) GetPendingByInvitee(ctx context.Context, email string) ([]entity.Invitation, error) {
	var out []entity.Invitation
	for _, inv := range f.invitations {
		if inv.InviteeEmail == email && inv.Status == entity.InvitationStatusPending {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvitationRepo) CountPendingByInvitee(ctx context.Context, email string) (int, error) {
	pending, _ := f.GetPendingByInvitee(ctx, email)
	return len(pending), nil
}

func (f *fakeInvitationRepo) HasPending(ctx context.Context, groupID uuid.UUID, inviteeEmail string) (bool, error) {
	for _, inv := range f.invitations {
		if inv.GroupID == groupID && inv.InviteeEmail == inviteeEmail && inv.Status == entity.InvitationStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInvitationRepo) UpdateStatus(ctx context.Context, inv *entity.Invitation) error {
	cp := *inv
	f.invitations[inv.ID] = &cp
	return nil
}

func (f *fakeInvitationRepo) AcceptWithMembership(ctx context.Context, inv *entity.Invitation, group *groupEntity.Group) error {
	cp := *inv
	f.invitations[inv.ID] = &cp
	g := *group
	f.accepted = &g
	return nil
}

func (f *fakeInvitationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.invitations, id)
	return nil
}

func (f *fakeInvitationRepo) ExpireOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for _, inv := range f.invitations {
		if inv.Status == entity.InvitationStatusPending && inv.CreatedAt.Before(cutoff) {
			inv.Status = entity.InvitationStatusExpired
			n++
		}
	}
	return n, nil
}

type fakeGroupRepo struct {
	groups map[uuid.UUID]*groupEntity.Group
}

func newFakeGroupRepo(groups ...*groupEntity.Group) *fakeGroupRepo {
	f := &fakeGroupRepo{groups: map[uuid.UUID]*groupEntity.Group{}}
	for _, g := range groups {
		f.groups[g.ID] = g
	}
	return f
}

func (f *fakeGroupRepo) Create(ctx context.Context, g *groupEntity.Group) error {
	g.ID = uuid.New()
	f.groups[g.ID] = g
	return nil
}

func (f *fakeGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*groupEntity.Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGroupRepo) GetBySlug(ctx context.Context, slug string) (*groupEntity.Group, error) {
	for _, g := range f.groups {
		if g.Slug == slug {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeGroupRepo) GetByMember(ctx context.Context, email string, qp params.QueryParams) (*groupEntity.PaginatedGroupEntity, error) {
	return &groupEntity.PaginatedGroupEntity{}, nil
}

func (f *fakeGroupRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	g, _ := f.GetBySlug(ctx, slug)
	return g != nil, nil
}

func (f *fakeGroupRepo) Update(ctx context.Context, g *groupEntity.Group) error {
	cp := *g
	f.groups[g.ID] = &cp
	return nil
}

func (f *fakeGroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.groups, id)
	return nil
}

type fakeUserRepo struct {
	byEmail map[string]*userEntity.User
}

func newFakeUserRepo(emails ...string) *fakeUserRepo {
	f := &fakeUserRepo{byEmail: map[string]*userEntity.User{}}
	for _, email := range emails {
		u := &userEntity.User{Email: email, Name: email}
		u.ID = uuid.New()
		f.byEmail[email] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *userEntity.User) error {
	u.ID = uuid.New()
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*userEntity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*userEntity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetByGoogleID(ctx context.Context, googleID string) (*userEntity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *userEntity.User) error {
	f.byEmail[u.Email] = u
	return nil
}

type fakeNotifier struct {
	created []*notificationDto.CreateNotificationRequest
}

func (f *fakeNotifier) Create(ctx context.Context, req *notificationDto.CreateNotificationRequest) error {
	f.created = append(f.created, req)
	return nil
}

func familyGroup(owner string, members ...string) *groupEntity.Group {
	g := &groupEntity.Group{
		Name:        "The Does",
		Type:        groupEntity.GroupTypeFamily,
		OwnerEmail:  owner,
		Members:     coreEntity.StringList{owner},
		MemberNames: coreEntity.EmailMap{owner: owner},
		MemberRoles: coreEntity.EmailMap{owner: string(groupEntity.RoleAdmin)},
	}
	g.ID = uuid.New()
	for _, m := range members {
		g.AddMember(m, m)
	}
	return g
}

func newService(repo *fakeInvitationRepo, groups *fakeGroupRepo, users *fakeUserRepo, notifier *fakeNotifier) *InvitationService {
	return NewInvitationService(repo, groups, users, notifier)
}

func TestCreateInvitation(t *testing.T) {
	owner := "owner@x.com"
	group := familyGroup(owner)
	repo := newFakeInvitationRepo()
	notifier := &fakeNotifier{}
	svc := newService(repo, newFakeGroupRepo(group), newFakeUserRepo(owner, "new@x.com"), notifier)

	resp, appErr := svc.Create(context.Background(), &dto.CreateInvitationRequest{
		GroupID:      group.ID,
		InviteeEmail: "new@x.com",
	}, owner)

	require.Nil(t, appErr)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, group.Name, resp.GroupName)
	require.Len(t, notifier.created, 1)
	assert.Equal(t, "invitation", notifier.created[0].Type)
}

func TestCreateInvitationRequiresAdmin(t *testing.T) {
	owner := "owner@x.com"
	group := familyGroup(owner, "member@x.com")
	svc := newService(newFakeInvitationRepo(), newFakeGroupRepo(group), newFakeUserRepo(owner), &fakeNotifier{})

	_, appErr := svc.Create(context.Background(), &dto.CreateInvitationRequest{
		GroupID:      group.ID,
		InviteeEmail: "new@x.com",
	}, "member@x.com")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestCreateInvitationSelfInviteMixedCase(t *testing.T) {
	// A mixed-case registration email must not slip past the self-invite
	// check when the request carries the lowercased form.
	owner := "Owner@X.com"
	group := familyGroup(owner)
	repo := newFakeInvitationRepo()
	svc := newService(repo, newFakeGroupRepo(group), newFakeUserRepo(owner), &fakeNotifier{})

	_, appErr := svc.Create(context.Background(), &dto.CreateInvitationRequest{
		GroupID:      group.ID,
		InviteeEmail: "owner@x.com",
	}, owner)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Empty(t, repo.invitations)
}

func TestCreateInvitationAlreadyMember(t *testing.T) {
	owner := "owner@x.com"
	group := familyGroup(owner, "member@x.com")
	repo := newFakeInvitationRepo()
	svc := newService(repo, newFakeGroupRepo(group), newFakeUserRepo(owner), &fakeNotifier{})

	_, appErr := svc.Create(context.Background(), &dto.CreateInvitationRequest{
		GroupID:      group.ID,
		InviteeEmail: "member@x.com",
	}, owner)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Empty(t, repo.invitations)
}

func TestCreateInvitationCoupleAtCapacity(t *testing.T) {
	owner := "a@x.com"
	group := familyGroup(owner, "b@x.com")
	group.Type = groupEntity.GroupTypeCouple
	repo := newFakeInvitationRepo()
	svc := newService(repo, newFakeGroupRepo(group), newFakeUserRepo(owner), &fakeNotifier{})

	_, appErr := svc.Create(context.Background(), &dto.CreateInvitationRequest{
		GroupID:      group.ID,
		InviteeEmail: "c@x.com",
	}, owner)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Empty(t, repo.invitations, "rejected before any write")
}

func TestCreateInvitationDuplicatePending(t *testing.T) {
	owner := "owner@x.com"
	group := familyGroup(owner)
	repo := newFakeInvitationRepo()
	svc := newService(repo, newFakeGroupRepo(group), newFakeUserRepo(owner), &fakeNotifier{})

	req := &dto.CreateInvitationRequest{GroupID: group.ID, InviteeEmail: "new@x.com"}
	_, appErr := svc.Create(context.Background(), req, owner)
	require.Nil(t, appErr)

	_, appErr = svc.Create(context.Background(), req, owner)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
	assert.Len(t, repo.invitations, 1)
}

func acceptFixture(t *testing.T) (*InvitationService, *fakeInvitationRepo, *fakeGroupRepo, *groupEntity.Group, uuid.UUID) {
	t.Helper()
	owner := "owner@x.com"
	group := familyGroup(owner)
	repo := newFakeInvitationRepo()
	groups := newFakeGroupRepo(group)
	svc := newService(repo, groups, newFakeUserRepo(owner, "new@x.com"), &fakeNotifier{})

	resp, appErr := svc.Create(context.Background(), &dto.CreateInvitationRequest{
		GroupID:      group.ID,
		InviteeEmail: "new@x.com",
	}, owner)
	require.Nil(t, appErr)
	return svc, repo, groups, group, resp.ID
}

func TestAcceptInvitation(t *testing.T) {
	svc, repo, _, group, invID := acceptFixture(t)

	resp, appErr := svc.UpdateStatus(context.Background(), invID,
		&dto.UpdateInvitationStatusRequest{Status: "accepted"}, "new@x.com")

	require.Nil(t, appErr)
	assert.Equal(t, "accepted", resp.Status)
	require.NotNil(t, resp.RespondedAt)

	require.NotNil(t, repo.accepted, "membership and status must go through the transactional path")
	assert.True(t, repo.accepted.HasMember("new@x.com"))
	assert.Equal(t, string(groupEntity.RoleMember), repo.accepted.MemberRoles["new@x.com"])
	assert.Equal(t, group.OwnerEmail, repo.accepted.OwnerEmail)
}

func TestAcceptOnlyInvitee(t *testing.T) {
	svc, _, _, _, invID := acceptFixture(t)

	_, appErr := svc.UpdateStatus(context.Background(), invID,
		&dto.UpdateInvitationStatusRequest{Status: "accepted"}, "intruder@x.com")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestAcceptTwiceRejected(t *testing.T) {
	svc, _, _, _, invID := acceptFixture(t)

	_, appErr := svc.UpdateStatus(context.Background(), invID,
		&dto.UpdateInvitationStatusRequest{Status: "accepted"}, "new@x.com")
	require.Nil(t, appErr)

	_, appErr = svc.UpdateStatus(context.Background(), invID,
		&dto.UpdateInvitationStatusRequest{Status: "accepted"}, "new@x.com")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestAcceptGroupDeleted(t *testing.T) {
	svc, repo, groups, group, invID := acceptFixture(t)
	require.NoError(t, groups.Delete(context.Background(), group.ID))

	_, appErr := svc.UpdateStatus(context.Background(), invID,
		&dto.UpdateInvitationStatusRequest{Status: "accepted"}, "new@x.com")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	// The invitation must not flip when the join cannot happen.
	inv, err := repo.GetByID(context.Background(), invID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationStatusPending, inv.Status)
}

func TestDeclineLeavesGroupUntouched(t *testing.T) {
	svc, repo, groups, group, invID := acceptFixture(t)

	resp, appErr := svc.UpdateStatus(context.Background(), invID,
		&dto.UpdateInvitationStatusRequest{Status: "declined"}, "new@x.com")

	require.Nil(t, appErr)
	assert.Equal(t, "declined", resp.Status)
	assert.Nil(t, repo.accepted)

	g, err := groups.GetByID(context.Background(), group.ID)
	require.NoError(t, err)
	assert.False(t, g.HasMember("new@x.com"))
}

func TestDeleteInvitationByInviterOrInvitee(t *testing.T) {
	svc, repo, _, _, invID := acceptFixture(t)

	appErr := svc.Delete(context.Background(), invID, "stranger@x.com")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)

	appErr = svc.Delete(context.Background(), invID, "new@x.com")
	require.Nil(t, appErr)
	assert.Empty(t, repo.invitations)
}

func TestExpireStale(t *testing.T) {
	svc, repo, _, _, invID := acceptFixture(t)
	repo.invitations[invID].CreatedAt = time.Now().UTC().AddDate(0, 0, -20)

	svc.ExpireStale(context.Background())

	inv, err := repo.GetByID(context.Background(), invID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationStatusExpired, inv.Status)
}
