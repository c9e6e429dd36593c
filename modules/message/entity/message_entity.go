package entity

import (
	"familyhub/core/entity"

	"github.com/google/uuid"
)

type Message struct {
	entity.BaseEntity
	GroupID     uuid.UUID `db:"group_id" json:"group_id"`
	SenderEmail string    `db:"sender_email" json:"sender_email"`
	SenderName  string    `db:"sender_name" json:"sender_name"`
	Content     string    `db:"content" json:"content"`
}
