package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	Content string `json:"content" validate:"required,max=4000"`
}

type MessageResponse struct {
	ID          uuid.UUID `json:"id"`
	GroupID     uuid.UUID `json:"group_id"`
	SenderEmail string    `json:"sender_email"`
	SenderName  string    `json:"sender_name"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
}

type PresenceResponse struct {
	Online []string `json:"online"`
}

type TypingResponse struct {
	Typing []string `json:"typing"`
}
