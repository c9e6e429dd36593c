package repository

import (
	"context"
	"database/sql"
	"fmt"

	"familyhub/core/database"
	"familyhub/core/logger"
	"familyhub/modules/note/entity"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.Note, error)
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteRepository struct {
	db database.Database
}

func NewNoteRepository(db database.Database) NoteRepository {
	return &noteRepository{db: db}
}

const noteColumns = `id, group_id, title, content, color, pinned, author_email,
	author_name, last_edited_by, created_at, updated_at`

func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	query := `
		INSERT INTO notes (group_id, title, content, color, pinned, author_email, author_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		note.GroupID,
		note.Title,
		note.Content,
		note.Color,
		note.Pinned,
		note.AuthorEmail,
		note.AuthorName,
	).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		logger.Error("NoteRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	var note entity.Note
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`
	err := r.db.GetContext(ctx, &note, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("NoteRepository:GetByID:Error:", err)
		return nil, err
	}
	return &note, nil
}

// ListByGroup returns pinned notes first, newest first within each bucket.
func (r *noteRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.Note, error) {
	var notes []entity.Note
	query := `SELECT ` + noteColumns + ` FROM notes WHERE group_id = $1
		ORDER BY pinned DESC, updated_at DESC`
	if err := r.db.SelectContext(ctx, &notes, query, groupID); err != nil {
		if err == sql.ErrNoRows {
			return []entity.Note{}, nil
		}
		logger.Error("NoteRepository:ListByGroup:Error:", err)
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	query := `
		UPDATE notes
		SET title = $1, content = $2, color = $3, pinned = $4, last_edited_by = $5, updated_at = now()
		WHERE id = $6
	`
	result, err := r.db.SQLx().ExecContext(ctx, query,
		note.Title,
		note.Content,
		note.Color,
		note.Pinned,
		note.LastEditedBy,
		note.ID,
	)
	if err != nil {
		logger.Error("NoteRepository:Update:Error:", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("NoteRepository:Update - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("note with id %s not found", note.ID)
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("NoteRepository:Delete:Error:", err)
		return err
	}
	return nil
}
