package service

import (
	"context"

	"familyhub/core/constants"
	coreEntity "familyhub/core/entity"
	"familyhub/core/errors"
	groupService "familyhub/modules/group/service"
	"familyhub/modules/task/dto"
	"familyhub/modules/task/entity"
	"familyhub/modules/task/mapper"
	"familyhub/modules/task/repository"

	"github.com/google/uuid"
)

type TaskService struct {
	tasks  repository.TaskRepository
	lists  repository.TaskListRepository
	groups *groupService.GroupService
}

func NewTaskService(tasks repository.TaskRepository, lists repository.TaskListRepository, groups *groupService.GroupService) *TaskService {
	return &TaskService{tasks: tasks, lists: lists, groups: groups}
}

func (s *TaskService) Create(ctx context.Context, req *dto.CreateTaskRequest, email string) (*dto.TaskResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, req.GroupID, email); appErr != nil {
		return nil, appErr
	}

	task := &entity.Task{
		GroupID:      req.GroupID,
		ListName:     req.ListName,
		Title:        req.Title,
		Description:  req.Description,
		Status:       entity.TaskStatusTodo,
		AssignedTo:   coreEntity.StringList(req.AssignedTo),
		DependsOn:    coreEntity.StringList(req.DependsOn),
		ParentTaskID: req.ParentTaskID,
		Position:     req.Position,
		CreatedBy:    email,
	}
	if req.Status != "" {
		task.Status = entity.TaskStatus(req.Status)
	}
	task.Completed = task.Status == entity.TaskStatusDone
	if task.AssignedTo == nil {
		task.AssignedTo = coreEntity.StringList{}
	}
	if task.DependsOn == nil {
		task.DependsOn = coreEntity.StringList{}
	}
	if req.DueDate != nil {
		due, err := mapper.ParseDate(*req.DueDate)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid due date", err)
		}
		task.DueDate = &due
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create task failed", err)
	}
	return mapper.ToTaskResponse(task), nil
}

func (s *TaskService) List(ctx context.Context, groupID uuid.UUID, email string) (*dto.TaskListsResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, groupID, email); appErr != nil {
		return nil, appErr
	}

	tasks, err := s.tasks.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list tasks failed", err)
	}
	return mapper.ToTasksResponse(tasks), nil
}

func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID, email string) (*dto.TaskResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	task, appErr := s.loadForMember(ctx, id, email)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToTaskResponse(task), nil
}

// Update applies the patch. The completed flag and the done status track
// each other in both directions.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest, email string) (*dto.TaskResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	task, appErr := s.loadForMember(ctx, id, email)
	if appErr != nil {
		return nil, appErr
	}

	if req.ListName != nil {
		task.ListName = *req.ListName
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = entity.TaskStatus(*req.Status)
		task.Completed = task.Status == entity.TaskStatusDone
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
		if task.Completed {
			task.Status = entity.TaskStatusDone
		} else if task.Status == entity.TaskStatusDone {
			task.Status = entity.TaskStatusTodo
		}
	}
	if req.AssignedTo != nil {
		task.AssignedTo = coreEntity.StringList(req.AssignedTo)
	}
	if req.DependsOn != nil {
		task.DependsOn = coreEntity.StringList(req.DependsOn)
	}
	if req.DueDate != nil {
		due, err := mapper.ParseDate(*req.DueDate)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid due date", err)
		}
		task.DueDate = &due
	}
	if req.Position != nil {
		task.Position = *req.Position
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update task failed", err)
	}
	return mapper.ToTaskResponse(task), nil
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID, email string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.loadForMember(ctx, id, email); appErr != nil {
		return appErr
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete task failed", err)
	}
	return nil
}

func (s *TaskService) CreateList(ctx context.Context, req *dto.CreateTaskListRequest, email string) (*dto.TaskListResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, req.GroupID, email); appErr != nil {
		return nil, appErr
	}

	list := &entity.TaskList{
		GroupID:  req.GroupID,
		Name:     req.Name,
		Position: req.Position,
	}
	if err := s.lists.Create(ctx, list); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create task list failed", err)
	}
	return mapper.ToTaskListResponse(list), nil
}

func (s *TaskService) GetLists(ctx context.Context, groupID uuid.UUID, email string) (*dto.TaskListCollectionResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, groupID, email); appErr != nil {
		return nil, appErr
	}

	lists, err := s.lists.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list task lists failed", err)
	}
	return mapper.ToTaskListCollectionResponse(lists), nil
}

func (s *TaskService) UpdateList(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskListRequest, email string) (*dto.TaskListResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	list, appErr := s.loadListForMember(ctx, id, email)
	if appErr != nil {
		return nil, appErr
	}

	if req.Name != nil {
		list.Name = *req.Name
	}
	if req.Position != nil {
		list.Position = *req.Position
	}

	if err := s.lists.Update(ctx, list); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update task list failed", err)
	}
	return mapper.ToTaskListResponse(list), nil
}

// ReorderLists sets the kanban column order from the given id sequence.
func (s *TaskService) ReorderLists(ctx context.Context, req *dto.ReorderTaskListsRequest, email string) (*dto.TaskListCollectionResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, req.GroupID, email); appErr != nil {
		return nil, appErr
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid task list id", err)
		}
		ids = append(ids, id)
	}

	if err := s.lists.Reorder(ctx, req.GroupID, ids); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "reorder task lists failed", err)
	}

	lists, err := s.lists.ListByGroup(ctx, req.GroupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list task lists failed", err)
	}
	return mapper.ToTaskListCollectionResponse(lists), nil
}

func (s *TaskService) DeleteList(ctx context.Context, id uuid.UUID, email string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.loadListForMember(ctx, id, email); appErr != nil {
		return appErr
	}

	if err := s.lists.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete task list failed", err)
	}
	return nil
}

func (s *TaskService) loadForMember(ctx context.Context, id uuid.UUID, email string) (*entity.Task, *errors.AppError) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get task failed", err)
	}
	if task == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "task not found", nil)
	}
	if _, appErr := s.groups.RequireMember(ctx, task.GroupID, email); appErr != nil {
		return nil, appErr
	}
	return task, nil
}

func (s *TaskService) loadListForMember(ctx context.Context, id uuid.UUID, email string) (*entity.TaskList, *errors.AppError) {
	list, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get task list failed", err)
	}
	if list == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "task list not found", nil)
	}
	if _, appErr := s.groups.RequireMember(ctx, list.GroupID, email); appErr != nil {
		return nil, appErr
	}
	return list, nil
}
