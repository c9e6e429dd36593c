package repository

import (
	"context"
	"database/sql"
	"time"

	"familyhub/core/database"
	"familyhub/core/logger"
	"familyhub/modules/whiteboard/entity"

	"github.com/google/uuid"
)

type WhiteboardRepository interface {
	Create(ctx context.Context, stroke *entity.Stroke) error
	ListByGroup(ctx context.Context, groupID uuid.UUID, since *time.Time) ([]entity.Stroke, error)
	Clear(ctx context.Context, groupID uuid.UUID) error
}

type whiteboardRepository struct {
	db database.Database
}

func NewWhiteboardRepository(db database.Database) WhiteboardRepository {
	return &whiteboardRepository{db: db}
}

func (r *whiteboardRepository) Create(ctx context.Context, stroke *entity.Stroke) error {
	query := `
		INSERT INTO whiteboard_strokes (stroke_id, group_id, author_email, color, width, points)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		stroke.StrokeID,
		stroke.GroupID,
		stroke.AuthorEmail,
		stroke.Color,
		stroke.Width,
		stroke.Points,
	).Scan(&stroke.ID, &stroke.CreatedAt, &stroke.UpdatedAt)
	if err != nil {
		logger.Error("WhiteboardRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *whiteboardRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, since *time.Time) ([]entity.Stroke, error) {
	query := `SELECT id, stroke_id, group_id, author_email, color, width, points, created_at, updated_at
		FROM whiteboard_strokes WHERE group_id = $1`
	args := []interface{}{groupID}
	if since != nil {
		query += ` AND created_at > $2`
		args = append(args, *since)
	}
	query += ` ORDER BY created_at ASC`

	var strokes []entity.Stroke
	if err := r.db.SelectContext(ctx, &strokes, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return []entity.Stroke{}, nil
		}
		logger.Error("WhiteboardRepository:ListByGroup:Error:", err)
		return nil, err
	}
	return strokes, nil
}

func (r *whiteboardRepository) Clear(ctx context.Context, groupID uuid.UUID) error {
	query := `DELETE FROM whiteboard_strokes WHERE group_id = $1`
	err := r.db.ExecContext(ctx, query, groupID)
	if err != nil {
		logger.Error("WhiteboardRepository:Clear:Error:", err)
		return err
	}
	return nil
}
