package service

import (
	"context"
	"testing"

	coreEntity "familyhub/core/entity"
	"familyhub/core/errors"
	"familyhub/core/params"
	groupEntity "familyhub/modules/group/entity"
	groupService "familyhub/modules/group/service"
	"familyhub/modules/task/dto"
	"familyhub/modules/task/entity"
	userEntity "familyhub/modules/user/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskRepo struct {
	tasks map[uuid.UUID]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[uuid.UUID]*entity.Task{}}
}

func (f *fakeTaskRepo) Create(ctx context.Context, task *entity.Task) error {
	task.ID = uuid.New()
	cp := *task
	f.tasks[task.ID] = &cp
	return nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, nil
	}
	cp := *task
	return &cp, nil
}

func (f *fakeTaskRepo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.Task, error) {
	var out []entity.Task
	for _, task := range f.tasks {
		if task.GroupID == groupID {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, task *entity.Task) error {
	cp := *task
	f.tasks[task.ID] = &cp
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.tasks, id)
	return nil
}

type fakeTaskListRepo struct {
	lists map[uuid.UUID]*entity.TaskList
}

func newFakeTaskListRepo() *fakeTaskListRepo {
	return &fakeTaskListRepo{lists: map[uuid.UUID]*entity.TaskList{}}
}

func (f *fakeTaskListRepo) Create(ctx context.Context, list *entity.TaskList) error {
	list.ID = uuid.New()
	cp := *list
	f.lists[list.ID] = &cp
	return nil
}

func (f *fakeTaskListRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.TaskList, error) {
	list, ok := f.lists[id]
	if !ok {
		return nil, nil
	}
	cp := *list
	return &cp, nil
}

func (f *fakeTaskListRepo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.TaskList, error) {
	var out []entity.TaskList
	for _, list := range f.lists {
		if list.GroupID == groupID {
			out = append(out, *list)
		}
	}
	return out, nil
}

func (f *fakeTaskListRepo) Update(ctx context.Context, list *entity.TaskList) error {
	cp := *list
	f.lists[list.ID] = &cp
	return nil
}

func (f *fakeTaskListRepo) Reorder(ctx context.Context, groupID uuid.UUID, ids []uuid.UUID) error {
	for position, id := range ids {
		if list, ok := f.lists[id]; ok && list.GroupID == groupID {
			list.Position = position
		}
	}
	return nil
}

func (f *fakeTaskListRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.lists, id)
	return nil
}

type memberGroupRepo struct {
	group *groupEntity.Group
}

func (f *memberGroupRepo) Create(ctx context.Context, g *groupEntity.Group) error { return nil }

func (f *memberGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*groupEntity.Group, error) {
	if f.group != nil && f.group.ID == id {
		cp := *f.group
		return &cp, nil
	}
	return nil, nil
}

func (f *memberGroupRepo) GetBySlug(ctx context.Context, slug string) (*groupEntity.Group, error) {
	return nil, nil
}

func (f *memberGroupRepo) GetByMember(ctx context.Context, email string, qp params.QueryParams) (*groupEntity.PaginatedGroupEntity, error) {
	return &groupEntity.PaginatedGroupEntity{}, nil
}

func (f *memberGroupRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return false, nil
}

func (f *memberGroupRepo) Update(ctx context.Context, g *groupEntity.Group) error { return nil }
func (f *memberGroupRepo) Delete(ctx context.Context, id uuid.UUID) error         { return nil }

type emptyUserRepo struct{}

func (emptyUserRepo) Create(ctx context.Context, u *userEntity.User) error { return nil }
func (emptyUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*userEntity.User, error) {
	return nil, nil
}
func (emptyUserRepo) GetByEmail(ctx context.Context, email string) (*userEntity.User, error) {
	return nil, nil
}
func (emptyUserRepo) GetByGoogleID(ctx context.Context, googleID string) (*userEntity.User, error) {
	return nil, nil
}
func (emptyUserRepo) Update(ctx context.Context, u *userEntity.User) error { return nil }

func testGroup(members ...string) *groupEntity.Group {
	g := &groupEntity.Group{
		Name:       "G",
		Type:       groupEntity.GroupTypeFamily,
		OwnerEmail: members[0],
		Members:    coreEntity.StringList(members),
	}
	g.ID = uuid.New()
	return g
}

func newTaskFixture(group *groupEntity.Group) (*TaskService, *fakeTaskRepo, *fakeTaskListRepo) {
	tasks := newFakeTaskRepo()
	lists := newFakeTaskListRepo()
	groups := groupService.NewGroupService(&memberGroupRepo{group: group}, emptyUserRepo{})
	return NewTaskService(tasks, lists, groups), tasks, lists
}

func TestCreateTaskDefaultsToTodo(t *testing.T) {
	group := testGroup("a@x.com")
	svc, _, _ := newTaskFixture(group)

	resp, appErr := svc.Create(context.Background(), &dto.CreateTaskRequest{
		GroupID: group.ID,
		Title:   "Buy groceries",
	}, "a@x.com")

	require.Nil(t, appErr)
	assert.Equal(t, "todo", resp.Status)
	assert.False(t, resp.Completed)
	assert.NotNil(t, resp.AssignedTo)
}

func TestCreateTaskMemberOnly(t *testing.T) {
	group := testGroup("a@x.com")
	svc, repo, _ := newTaskFixture(group)

	_, appErr := svc.Create(context.Background(), &dto.CreateTaskRequest{
		GroupID: group.ID,
		Title:   "Nope",
	}, "stranger@x.com")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
	assert.Empty(t, repo.tasks)
}

func TestUpdateTaskStatusSyncsCompleted(t *testing.T) {
	group := testGroup("a@x.com")
	svc, _, _ := newTaskFixture(group)

	created, appErr := svc.Create(context.Background(), &dto.CreateTaskRequest{
		GroupID: group.ID,
		Title:   "Dishes",
	}, "a@x.com")
	require.Nil(t, appErr)

	done := "done"
	resp, appErr := svc.Update(context.Background(), created.ID, &dto.UpdateTaskRequest{Status: &done}, "a@x.com")
	require.Nil(t, appErr)
	assert.Equal(t, "done", resp.Status)
	assert.True(t, resp.Completed)

	todo := "todo"
	resp, appErr = svc.Update(context.Background(), created.ID, &dto.UpdateTaskRequest{Status: &todo}, "a@x.com")
	require.Nil(t, appErr)
	assert.False(t, resp.Completed)
}

func TestUpdateTaskCompletedSyncsStatus(t *testing.T) {
	group := testGroup("a@x.com")
	svc, _, _ := newTaskFixture(group)

	created, appErr := svc.Create(context.Background(), &dto.CreateTaskRequest{
		GroupID: group.ID,
		Title:   "Laundry",
	}, "a@x.com")
	require.Nil(t, appErr)

	completed := true
	resp, appErr := svc.Update(context.Background(), created.ID, &dto.UpdateTaskRequest{Completed: &completed}, "a@x.com")
	require.Nil(t, appErr)
	assert.Equal(t, "done", resp.Status)

	completed = false
	resp, appErr = svc.Update(context.Background(), created.ID, &dto.UpdateTaskRequest{Completed: &completed}, "a@x.com")
	require.Nil(t, appErr)
	assert.Equal(t, "todo", resp.Status)
}

func TestReorderTaskLists(t *testing.T) {
	group := testGroup("a@x.com")
	svc, _, lists := newTaskFixture(group)

	var ids []string
	for _, name := range []string{"Todo", "Doing", "Done"} {
		resp, appErr := svc.CreateList(context.Background(), &dto.CreateTaskListRequest{
			GroupID: group.ID,
			Name:    name,
		}, "a@x.com")
		require.Nil(t, appErr)
		ids = append(ids, resp.ID.String())
	}

	// Reverse the columns.
	reversed := []string{ids[2], ids[1], ids[0]}
	resp, appErr := svc.ReorderLists(context.Background(), &dto.ReorderTaskListsRequest{
		GroupID: group.ID,
		IDs:     reversed,
	}, "a@x.com")
	require.Nil(t, appErr)
	require.Equal(t, 3, resp.Total)

	for position, raw := range reversed {
		id := uuid.MustParse(raw)
		assert.Equal(t, position, lists.lists[id].Position)
	}
}

func TestDeleteTaskMemberOnly(t *testing.T) {
	group := testGroup("a@x.com")
	svc, repo, _ := newTaskFixture(group)

	created, appErr := svc.Create(context.Background(), &dto.CreateTaskRequest{
		GroupID: group.ID,
		Title:   "Trash",
	}, "a@x.com")
	require.Nil(t, appErr)

	appErr = svc.Delete(context.Background(), created.ID, "stranger@x.com")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)

	appErr = svc.Delete(context.Background(), created.ID, "a@x.com")
	require.Nil(t, appErr)
	assert.Empty(t, repo.tasks)
}
