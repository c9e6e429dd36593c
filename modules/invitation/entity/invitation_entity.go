package entity

import (
	"time"

	"familyhub/core/entity"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
	InvitationStatusExpired  InvitationStatus = "expired"
)

type Invitation struct {
	entity.BaseEntity
	GroupID      uuid.UUID        `db:"group_id" json:"group_id"`
	GroupName    string           `db:"group_name" json:"group_name"`
	InviterEmail string           `db:"inviter_email" json:"inviter_email"`
	InviterName  string           `db:"inviter_name" json:"inviter_name"`
	InviteeEmail string           `db:"invitee_email" json:"invitee_email"`
	Status       InvitationStatus `db:"status" json:"status"`
	RespondedAt  *time.Time       `db:"responded_at" json:"responded_at"`
}
