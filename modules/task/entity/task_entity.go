package entity

import (
	"time"

	"familyhub/core/entity"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type Task struct {
	entity.BaseEntity
	GroupID      uuid.UUID         `db:"group_id" json:"group_id"`
	ListName     string            `db:"list_name" json:"list_name"`
	Title        string            `db:"title" json:"title"`
	Description  string            `db:"description" json:"description"`
	Status       TaskStatus        `db:"status" json:"status"`
	Completed    bool              `db:"completed" json:"completed"`
	AssignedTo   entity.StringList `db:"assigned_to" json:"assigned_to"`
	DependsOn    entity.StringList `db:"depends_on" json:"depends_on"`
	ParentTaskID *uuid.UUID        `db:"parent_task_id" json:"parent_task_id"`
	DueDate      *time.Time        `db:"due_date" json:"due_date"`
	Position     int               `db:"position" json:"position"`
	CreatedBy    string            `db:"created_by" json:"created_by"`
}

type TaskList struct {
	entity.BaseEntity
	GroupID  uuid.UUID `db:"group_id" json:"group_id"`
	Name     string    `db:"name" json:"name"`
	Position int       `db:"position" json:"position"`
}
