package entity

import (
	"familyhub/core/entity"

	"github.com/google/uuid"
)

type Note struct {
	entity.BaseEntity
	GroupID      uuid.UUID `db:"group_id" json:"group_id"`
	Title        string    `db:"title" json:"title"`
	Content      string    `db:"content" json:"content"`
	Color        string    `db:"color" json:"color"`
	Pinned       bool      `db:"pinned" json:"pinned"`
	AuthorEmail  string    `db:"author_email" json:"author_email"`
	AuthorName   string    `db:"author_name" json:"author_name"`
	LastEditedBy *string   `db:"last_edited_by" json:"last_edited_by"`
}
