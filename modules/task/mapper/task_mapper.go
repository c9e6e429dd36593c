package mapper

import (
	"time"

	"familyhub/modules/task/dto"
	"familyhub/modules/task/entity"
)

const dateLayout = "2006-01-02"

func ToTaskResponse(task *entity.Task) *dto.TaskResponse {
	resp := &dto.TaskResponse{
		ID:           task.ID,
		GroupID:      task.GroupID,
		ListName:     task.ListName,
		Title:        task.Title,
		Description:  task.Description,
		Status:       string(task.Status),
		Completed:    task.Completed,
		AssignedTo:   task.AssignedTo,
		DependsOn:    task.DependsOn,
		ParentTaskID: task.ParentTaskID,
		Position:     task.Position,
		CreatedBy:    task.CreatedBy,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
	if task.DueDate != nil {
		due := task.DueDate.Format(dateLayout)
		resp.DueDate = &due
	}
	return resp
}

func ToTasksResponse(tasks []entity.Task) *dto.TaskListsResponse {
	items := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, *ToTaskResponse(&tasks[i]))
	}
	return &dto.TaskListsResponse{Tasks: items, Total: len(items)}
}

func ToTaskListResponse(list *entity.TaskList) *dto.TaskListResponse {
	return &dto.TaskListResponse{
		ID:        list.ID,
		GroupID:   list.GroupID,
		Name:      list.Name,
		Position:  list.Position,
		CreatedAt: list.CreatedAt,
	}
}

func ToTaskListCollectionResponse(lists []entity.TaskList) *dto.TaskListCollectionResponse {
	items := make([]dto.TaskListResponse, 0, len(lists))
	for i := range lists {
		items = append(items, *ToTaskListResponse(&lists[i]))
	}
	return &dto.TaskListCollectionResponse{Lists: items, Total: len(items)}
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
