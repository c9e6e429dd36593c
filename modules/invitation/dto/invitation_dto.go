package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInvitationRequest struct {
	GroupID      uuid.UUID `json:"group_id" validate:"required"`
	InviteeEmail string    `json:"invitee_email" validate:"required,email"`
}

type UpdateInvitationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}

type InvitationResponse struct {
	ID           uuid.UUID  `json:"id"`
	GroupID      uuid.UUID  `json:"group_id"`
	GroupName    string     `json:"group_name"`
	InviterEmail string     `json:"inviter_email"`
	InviterName  string     `json:"inviter_name"`
	InviteeEmail string     `json:"invitee_email"`
	Status       string     `json:"status"`
	RespondedAt  *time.Time `json:"responded_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

type PendingInvitationsResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
	Total       int                  `json:"total"`
}
