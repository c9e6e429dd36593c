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

type TaskListRepository interface {
	Create(ctx context.Context, list *entity.TaskList) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TaskList, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.TaskList, error)
	Update(ctx context.Context, list *entity.TaskList) error
	Reorder(ctx context.Context, groupID uuid.UUID, ids []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskListRepository struct {
	db database.Database
}

func NewTaskListRepository(db database.Database) TaskListRepository {
	return &taskListRepository{db: db}
}

func (r *taskListRepository) Create(ctx context.Context, list *entity.TaskList) error {
	query := `
		INSERT INTO task_lists (group_id, name, position)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, list.GroupID, list.Name, list.Position).
		Scan(&list.ID, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		logger.Error("TaskListRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *taskListRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TaskList, error) {
	var list entity.TaskList
	query := `SELECT id, group_id, name, position, created_at, updated_at FROM task_lists WHERE id = $1`
	err := r.db.GetContext(ctx, &list, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TaskListRepository:GetByID:Error:", err)
		return nil, err
	}
	return &list, nil
}

func (r *taskListRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.TaskList, error) {
	var lists []entity.TaskList
	query := `SELECT id, group_id, name, position, created_at, updated_at FROM task_lists
		WHERE group_id = $1 ORDER BY position ASC, created_at ASC`
	if err := r.db.SelectContext(ctx, &lists, query, groupID); err != nil {
		if err == sql.ErrNoRows {
			return []entity.TaskList{}, nil
		}
		logger.Error("TaskListRepository:ListByGroup:Error:", err)
		return nil, err
	}
	return lists, nil
}

func (r *taskListRepository) Update(ctx context.Context, list *entity.TaskList) error {
	query := `UPDATE task_lists SET name = $1, position = $2, updated_at = now() WHERE id = $3`
	result, err := r.db.SQLx().ExecContext(ctx, query, list.Name, list.Position, list.ID)
	if err != nil {
		logger.Error("TaskListRepository:Update:Error:", err)
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("TaskListRepository:Update - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("task list with id %s not found", list.ID)
	}
	return nil
}

// Reorder assigns positions from the order of ids, all in one transaction so
// a half-applied reorder never lands.
func (r *taskListRepository) Reorder(ctx context.Context, groupID uuid.UUID, ids []uuid.UUID) error {
	tx, err := r.db.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("TaskListRepository:Reorder - Begin", err)
		return err
	}
	defer tx.Rollback()

	for position, id := range ids {
		_, err := tx.ExecContext(ctx,
			`UPDATE task_lists SET position = $1, updated_at = now() WHERE id = $2 AND group_id = $3`,
			position, id, groupID)
		if err != nil {
			logger.Error("TaskListRepository:Reorder:Error:", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("TaskListRepository:Reorder - Commit", err)
		return err
	}
	return nil
}

func (r *taskListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM task_lists WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("TaskListRepository:Delete:Error:", err)
		return err
	}
	return nil
}
