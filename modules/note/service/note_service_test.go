package service

import (
	"context"
	"testing"

	coreEntity "familyhub/core/entity"
	"familyhub/core/errors"
	"familyhub/core/params"
	groupEntity "familyhub/modules/group/entity"
	groupService "familyhub/modules/group/service"
	"familyhub/modules/note/dto"
	"familyhub/modules/note/entity"
	userEntity "familyhub/modules/user/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoteRepo struct {
	notes map[uuid.UUID]*entity.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[uuid.UUID]*entity.Note{}}
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	note.ID = uuid.New()
	cp := *note
	f.notes[note.ID] = &cp
	return nil
}

func (f *fakeNoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	note, ok := f.notes[id]
	if !ok {
		return nil, nil
	}
	cp := *note
	return &cp, nil
}

func (f *fakeNoteRepo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.Note, error) {
	var out []entity.Note
	for _, note := range f.notes {
		if note.GroupID == groupID {
			out = append(out, *note)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	cp := *note
	f.notes[note.ID] = &cp
	return nil
}

func (f *fakeNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.notes, id)
	return nil
}

type singleGroupRepo struct {
	group *groupEntity.Group
}

func (f *singleGroupRepo) Create(ctx context.Context, g *groupEntity.Group) error { return nil }

func (f *singleGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*groupEntity.Group, error) {
	if f.group != nil && f.group.ID == id {
		cp := *f.group
		return &cp, nil
	}
	return nil, nil
}

func (f *singleGroupRepo) GetBySlug(ctx context.Context, slug string) (*groupEntity.Group, error) {
	return nil, nil
}

func (f *singleGroupRepo) GetByMember(ctx context.Context, email string, qp params.QueryParams) (*groupEntity.PaginatedGroupEntity, error) {
	return &groupEntity.PaginatedGroupEntity{}, nil
}

func (f *singleGroupRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return false, nil
}

func (f *singleGroupRepo) Update(ctx context.Context, g *groupEntity.Group) error { return nil }
func (f *singleGroupRepo) Delete(ctx context.Context, id uuid.UUID) error         { return nil }

type namedUserRepo struct {
	names map[string]string
}

func (f namedUserRepo) Create(ctx context.Context, u *userEntity.User) error { return nil }
func (f namedUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*userEntity.User, error) {
	return nil, nil
}
func (f namedUserRepo) GetByEmail(ctx context.Context, email string) (*userEntity.User, error) {
	if name, ok := f.names[email]; ok {
		return &userEntity.User{Email: email, Name: name}, nil
	}
	return nil, nil
}
func (f namedUserRepo) GetByGoogleID(ctx context.Context, googleID string) (*userEntity.User, error) {
	return nil, nil
}
func (f namedUserRepo) Update(ctx context.Context, u *userEntity.User) error { return nil }

func noteFixture(names map[string]string, members ...string) (*NoteService, *fakeNoteRepo, *groupEntity.Group) {
	group := &groupEntity.Group{
		Name:       "G",
		Type:       groupEntity.GroupTypeFamily,
		OwnerEmail: members[0],
		Members:    coreEntity.StringList(members),
	}
	group.ID = uuid.New()

	repo := newFakeNoteRepo()
	users := namedUserRepo{names: names}
	groups := groupService.NewGroupService(&singleGroupRepo{group: group}, users)
	return NewNoteService(repo, groups, users), repo, group
}

func TestCreateNoteRecordsAuthor(t *testing.T) {
	svc, _, group := noteFixture(map[string]string{"a@x.com": "Alice"}, "a@x.com")

	resp, appErr := svc.Create(context.Background(), &dto.CreateNoteRequest{
		GroupID: group.ID,
		Title:   "Shopping",
		Content: "milk",
	}, "a@x.com")

	require.Nil(t, appErr)
	assert.Equal(t, "a@x.com", resp.AuthorEmail)
	assert.Equal(t, "Alice", resp.AuthorName)
	assert.Nil(t, resp.LastEditedBy)
}

func TestUpdateNoteTracksLastEditor(t *testing.T) {
	svc, _, group := noteFixture(nil, "a@x.com", "b@x.com")

	created, appErr := svc.Create(context.Background(), &dto.CreateNoteRequest{
		GroupID: group.ID,
		Title:   "Plan",
	}, "a@x.com")
	require.Nil(t, appErr)

	content := "updated by b"
	resp, appErr := svc.Update(context.Background(), created.ID, &dto.UpdateNoteRequest{
		Content: &content,
	}, "b@x.com")

	require.Nil(t, appErr)
	require.NotNil(t, resp.LastEditedBy)
	assert.Equal(t, "b@x.com", *resp.LastEditedBy)
	assert.Equal(t, "a@x.com", resp.AuthorEmail, "author never changes")
	assert.Equal(t, content, resp.Content)
}

func TestNoteMemberOnly(t *testing.T) {
	svc, _, group := noteFixture(nil, "a@x.com")

	_, appErr := svc.Create(context.Background(), &dto.CreateNoteRequest{
		GroupID: group.ID,
		Title:   "Nope",
	}, "stranger@x.com")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}
