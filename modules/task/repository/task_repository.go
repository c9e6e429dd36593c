package repository

import (
	"context"
	"database/sql"
	"fmt"

	"familyhub/core/database"
	"familyhub/core/logger"
	"familyhub/modules/task/entity"

	"github.com/google/uuid"
)

type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepository struct {
	db database.Database
}

func NewTaskRepository(db database.Database) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, group_id, list_name, title, description, status, completed,
	assigned_to, depends_on, parent_task_id, due_date, position, created_by,
	created_at, updated_at`

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (group_id, list_name, title, description, status, completed,
			assigned_to, depends_on, parent_task_id, due_date, position, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		task.GroupID,
		task.ListName,
		task.Title,
		task.Description,
		task.Status,
		task.Completed,
		task.AssignedTo,
		task.DependsOn,
		task.ParentTaskID,
		task.DueDate,
		task.Position,
		task.CreatedBy,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		logger.Error("TaskRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var task entity.Task
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	err := r.db.GetContext(ctx, &task, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TaskRepository:GetByID:Error:", err)
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.Task, error) {
	var tasks []entity.Task
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE group_id = $1
		ORDER BY list_name ASC, position ASC, created_at ASC`
	if err := r.db.SelectContext(ctx, &tasks, query, groupID); err != nil {
		if err == sql.ErrNoRows {
			return []entity.Task{}, nil
		}
		logger.Error("TaskRepository:ListByGroup:Error:", err)
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks
		SET list_name = $1, title = $2, description = $3, status = $4, completed = $5,
			assigned_to = $6, depends_on = $7, due_date = $8, position = $9, updated_at = now()
		WHERE id = $10
	`
	result, err := r.db.SQLx().ExecContext(ctx, query,
		task.ListName,
		task.Title,
		task.Description,
		task.Status,
		task.Completed,
		task.AssignedTo,
		task.DependsOn,
		task.DueDate,
		task.Position,
		task.ID,
	)
	if err != nil {
		logger.Error("TaskRepository:Update:Error:", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("TaskRepository:Update - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("task with id %s not found", task.ID)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("TaskRepository:Delete:Error:", err)
		return err
	}
	return nil
}
