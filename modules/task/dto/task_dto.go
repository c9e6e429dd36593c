package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	GroupID      uuid.UUID  `json:"group_id" validate:"required"`
	ListName     string     `json:"list_name"`
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description"`
	Status       string     `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	AssignedTo   []string   `json:"assigned_to" validate:"omitempty,dive,email"`
	DependsOn    []string   `json:"depends_on" validate:"omitempty,dive,uuid"`
	ParentTaskID *uuid.UUID `json:"parent_task_id"`
	DueDate      *string    `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Position     int        `json:"position"`
}

type UpdateTaskRequest struct {
	ListName    *string  `json:"list_name"`
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Completed   *bool    `json:"completed"`
	AssignedTo  []string `json:"assigned_to" validate:"omitempty,dive,email"`
	DependsOn   []string `json:"depends_on" validate:"omitempty,dive,uuid"`
	DueDate     *string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Position    *int     `json:"position"`
}

type TaskResponse struct {
	ID           uuid.UUID  `json:"id"`
	GroupID      uuid.UUID  `json:"group_id"`
	ListName     string     `json:"list_name"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Completed    bool       `json:"completed"`
	AssignedTo   []string   `json:"assigned_to"`
	DependsOn    []string   `json:"depends_on"`
	ParentTaskID *uuid.UUID `json:"parent_task_id"`
	DueDate      *string    `json:"due_date"`
	Position     int        `json:"position"`
	CreatedBy    string     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type TaskListsResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

type CreateTaskListRequest struct {
	GroupID  uuid.UUID `json:"group_id" validate:"required"`
	Name     string    `json:"name" validate:"required,max=100"`
	Position int       `json:"position"`
}

type UpdateTaskListRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Position *int    `json:"position"`
}

type ReorderTaskListsRequest struct {
	GroupID uuid.UUID `json:"group_id" validate:"required"`
	IDs     []string  `json:"ids" validate:"required,min=1,dive,uuid"`
}

type TaskListResponse struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"group_id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

type TaskListCollectionResponse struct {
	Lists []TaskListResponse `json:"lists"`
	Total int                `json:"total"`
}
