package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	GroupID uuid.UUID `json:"group_id" validate:"required"`
	Title   string    `json:"title" validate:"required,max=200"`
	Content string    `json:"content"`
	Color   string    `json:"color"`
	Pinned  bool      `json:"pinned"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitempty,max=200"`
	Content *string `json:"content"`
	Color   *string `json:"color"`
	Pinned  *bool   `json:"pinned"`
}

type NoteResponse struct {
	ID           uuid.UUID `json:"id"`
	GroupID      uuid.UUID `json:"group_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Color        string    `json:"color"`
	Pinned       bool      `json:"pinned"`
	AuthorEmail  string    `json:"author_email"`
	AuthorName   string    `json:"author_name"`
	LastEditedBy *string   `json:"last_edited_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
	Total int            `json:"total"`
}
