package service

import (
	"context"
	"testing"
	"time"

	"familyhub/core/errors"
	"familyhub/core/params"
	"familyhub/modules/group/dto"
	"familyhub/modules/group/entity"
	userEntity "familyhub/modules/user/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroupRepo struct {
	groups map[uuid.UUID]*entity.Group
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: map[uuid.UUID]*entity.Group{}}
}

func (f *fakeGroupRepo) Create(ctx context.Context, g *entity.Group) error {
	g.ID = uuid.New()
	g.CreatedAt = time.Now().UTC()
	cp := *g
	f.groups[g.ID] = &cp
	return nil
}

func (f *fakeGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGroupRepo) GetBySlug(ctx context.Context, slug string) (*entity.Group, error) {
	for _, g := range f.groups {
		if g.Slug == slug {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeGroupRepo) GetByMember(ctx context.Context, email string, qp params.QueryParams) (*entity.PaginatedGroupEntity, error) {
	var items []entity.Group
	for _, g := range f.groups {
		if g.HasMember(email) {
			items = append(items, *g)
		}
	}
	return &entity.PaginatedGroupEntity{
		Items:      items,
		TotalItems: len(items),
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

func (f *fakeGroupRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	g, _ := f.GetBySlug(ctx, slug)
	return g != nil, nil
}

func (f *fakeGroupRepo) Update(ctx context.Context, g *entity.Group) error {
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

func newFakeUserRepo(names map[string]string) *fakeUserRepo {
	f := &fakeUserRepo{byEmail: map[string]*userEntity.User{}}
	for email, name := range names {
		u := &userEntity.User{Email: email, Name: name}
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

func newTestService(users map[string]string) (*GroupService, *fakeGroupRepo) {
	repo := newFakeGroupRepo()
	return NewGroupService(repo, newFakeUserRepo(users)), repo
}

func TestCreateGroupOwnerIsSoleAdminMember(t *testing.T) {
	svc, _ := newTestService(map[string]string{"owner@x.com": "Olive"})

	resp, appErr := svc.Create(context.Background(), &dto.GroupRequest{
		Name: "Weekend Crew",
		Type: "friends",
	}, "owner@x.com")

	require.Nil(t, appErr)
	assert.Equal(t, "owner@x.com", resp.Owner)
	assert.Equal(t, []string{"owner@x.com"}, []string(resp.Members))
	assert.Equal(t, "Olive", resp.MemberNames["owner@x.com"])
	assert.Equal(t, "admin", resp.MemberRoles["owner@x.com"])
	assert.Equal(t, "weekend-crew", resp.Slug)
	assert.Contains(t, resp.Members, resp.Owner, "owner must be a member")
}

func TestCreateGroupDisplayNameFallsBackToLocalPart(t *testing.T) {
	svc, _ := newTestService(nil)

	resp, appErr := svc.Create(context.Background(), &dto.GroupRequest{
		Name: "Fam",
		Type: "family",
	}, "jane.doe@x.com")

	require.Nil(t, appErr)
	assert.Equal(t, "jane.doe", resp.MemberNames["jane.doe@x.com"])
}

func TestCreateGroupAnniversaryOnlyForCouples(t *testing.T) {
	svc, _ := newTestService(nil)
	anniversary := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)

	_, appErr := svc.Create(context.Background(), &dto.GroupRequest{
		Name:            "Fam",
		Type:            "family",
		AnniversaryDate: &anniversary,
	}, "a@x.com")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	resp, appErr := svc.Create(context.Background(), &dto.GroupRequest{
		Name:            "Us",
		Type:            "couple",
		AnniversaryDate: &anniversary,
	}, "a@x.com")
	require.Nil(t, appErr)
	require.NotNil(t, resp.AnniversaryDate)
	assert.True(t, anniversary.Equal(*resp.AnniversaryDate))
}

func TestCreateGroupSlugCollisionGetsSuffix(t *testing.T) {
	svc, _ := newTestService(nil)

	first, appErr := svc.Create(context.Background(), &dto.GroupRequest{Name: "Book Club", Type: "friends"}, "a@x.com")
	require.Nil(t, appErr)
	second, appErr := svc.Create(context.Background(), &dto.GroupRequest{Name: "Book Club", Type: "friends"}, "b@x.com")
	require.Nil(t, appErr)

	assert.Equal(t, "book-club", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "book-club-")
}

func createWithMembers(t *testing.T, svc *GroupService, repo *fakeGroupRepo, owner string, members ...string) uuid.UUID {
	t.Helper()
	resp, appErr := svc.Create(context.Background(), &dto.GroupRequest{Name: "G", Type: "family"}, owner)
	require.Nil(t, appErr)

	g := repo.groups[resp.ID]
	for _, m := range members {
		g.AddMember(m, m)
	}
	return resp.ID
}

func TestTransferOwnershipKeepsOwnerInMembers(t *testing.T) {
	svc, repo := newTestService(nil)
	id := createWithMembers(t, svc, repo, "owner@x.com", "next@x.com")
	next := "next@x.com"

	resp, appErr := svc.Update(context.Background(), id, &dto.UpdateGroupRequest{
		TransferOwnership: &next,
	}, "owner@x.com")

	require.Nil(t, appErr)
	assert.Equal(t, next, resp.Owner)
	assert.Contains(t, resp.Members, resp.Owner)
	assert.Equal(t, "admin", resp.MemberRoles[next])
	// The previous owner stays a member.
	assert.Contains(t, resp.Members, "owner@x.com")
}

func TestTransferOwnershipRequiresExistingMember(t *testing.T) {
	svc, repo := newTestService(nil)
	id := createWithMembers(t, svc, repo, "owner@x.com")
	outsider := "outsider@x.com"

	_, appErr := svc.Update(context.Background(), id, &dto.UpdateGroupRequest{
		TransferOwnership: &outsider,
	}, "owner@x.com")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestTransferOwnershipOwnerOnly(t *testing.T) {
	svc, repo := newTestService(nil)
	id := createWithMembers(t, svc, repo, "owner@x.com", "member@x.com")
	repo.groups[id].MemberRoles["member@x.com"] = string(entity.RoleAdmin)
	target := "member@x.com"

	_, appErr := svc.Update(context.Background(), id, &dto.UpdateGroupRequest{
		TransferOwnership: &target,
	}, "member@x.com")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestRemoveMemberCannotRemoveOwner(t *testing.T) {
	svc, repo := newTestService(nil)
	id := createWithMembers(t, svc, repo, "owner@x.com", "member@x.com")
	owner := "owner@x.com"

	_, appErr := svc.Update(context.Background(), id, &dto.UpdateGroupRequest{
		RemoveMember: &owner,
	}, "owner@x.com")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestRemoveMember(t *testing.T) {
	svc, repo := newTestService(nil)
	id := createWithMembers(t, svc, repo, "owner@x.com", "member@x.com")
	target := "member@x.com"

	resp, appErr := svc.Update(context.Background(), id, &dto.UpdateGroupRequest{
		RemoveMember: &target,
	}, "owner@x.com")

	require.Nil(t, appErr)
	assert.NotContains(t, resp.Members, target)
	assert.NotContains(t, resp.MemberNames, target)
	assert.NotContains(t, resp.MemberRoles, target)
	assert.Contains(t, resp.Members, resp.Owner)
}

func TestUpdateRequiresAdmin(t *testing.T) {
	svc, repo := newTestService(nil)
	id := createWithMembers(t, svc, repo, "owner@x.com", "member@x.com")
	name := "Renamed"

	_, appErr := svc.Update(context.Background(), id, &dto.UpdateGroupRequest{Name: &name}, "member@x.com")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestDeleteOwnerOnly(t *testing.T) {
	svc, repo := newTestService(nil)
	id := createWithMembers(t, svc, repo, "owner@x.com", "member@x.com")

	appErr := svc.Delete(context.Background(), id, "member@x.com")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)

	appErr = svc.Delete(context.Background(), id, "owner@x.com")
	require.Nil(t, appErr)
	assert.Empty(t, repo.groups)
}

func TestGetByIDMemberOnly(t *testing.T) {
	svc, repo := newTestService(nil)
	id := createWithMembers(t, svc, repo, "owner@x.com")

	_, appErr := svc.GetByID(context.Background(), id, "stranger@x.com")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)

	_, appErr = svc.GetByID(context.Background(), uuid.New(), "owner@x.com")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
