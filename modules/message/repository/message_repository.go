package repository

import (
	"context"
	"database/sql"
	"time"

	"familyhub/core/database"
	"familyhub/core/logger"
	"familyhub/modules/message/entity"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *entity.Message) error
	ListByGroup(ctx context.Context, groupID uuid.UUID, after *time.Time, limit int) ([]entity.Message, error)
}

type messageRepository struct {
	db database.Database
}

func NewMessageRepository(db database.Database) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *entity.Message) error {
	query := `
		INSERT INTO messages (group_id, sender_email, sender_name, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		msg.GroupID,
		msg.SenderEmail,
		msg.SenderName,
		msg.Content,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
	if err != nil {
		logger.Error("MessageRepository:Create:Error:", err)
		return err
	}
	return nil
}

// ListByGroup returns messages in chronological order; with after set only
// newer ones, which is what the polling clients ask for.
func (r *messageRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, after *time.Time, limit int) ([]entity.Message, error) {
	query := `SELECT id, group_id, sender_email, sender_name, content, created_at, updated_at
		FROM messages WHERE group_id = $1`
	args := []interface{}{groupID}
	if after != nil {
		query += ` AND created_at > $2`
		args = append(args, *after)
	}
	query += ` ORDER BY created_at ASC`
	if limit > 0 {
		if after != nil {
			query += ` LIMIT $3`
		} else {
			query += ` LIMIT $2`
		}
		args = append(args, limit)
	}

	var messages []entity.Message
	if err := r.db.SelectContext(ctx, &messages, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return []entity.Message{}, nil
		}
		logger.Error("MessageRepository:ListByGroup:Error:", err)
		return nil, err
	}
	return messages, nil
}
