package dto

import (
	"time"

	"familyhub/core/dto"
	"familyhub/core/entity"

	"github.com/google/uuid"
)

type GroupRequest struct {
	Name                 string     `json:"name" validate:"required,min=1,max=120"`
	Type                 string     `json:"type" validate:"required,oneof=family couple friends work"`
	NotificationsEnabled *bool      `json:"notifications_enabled"`
	IsPrivate            *bool      `json:"is_private"`
	AnniversaryDate      *time.Time `json:"anniversary_date"`
}

type UpdateGroupRequest struct {
	Name                 *string    `json:"name" validate:"omitempty,min=1,max=120"`
	NotificationsEnabled *bool      `json:"notifications_enabled"`
	IsPrivate            *bool      `json:"is_private"`
	AnniversaryDate      *time.Time `json:"anniversary_date"`
	TransferOwnership    *string    `json:"transfer_ownership" validate:"omitempty,email"`
	RemoveMember         *string    `json:"remove_member" validate:"omitempty,email"`
}

type GroupResponse struct {
	ID                   uuid.UUID         `json:"id"`
	Name                 string            `json:"name"`
	Slug                 string            `json:"slug"`
	Type                 string            `json:"type"`
	Owner                string            `json:"owner"`
	Members              entity.StringList `json:"members"`
	MemberNames          entity.EmailMap   `json:"member_names"`
	MemberRoles          entity.EmailMap   `json:"member_roles"`
	NotificationsEnabled bool              `json:"notifications_enabled"`
	IsPrivate            bool              `json:"is_private"`
	AnniversaryDate      *time.Time        `json:"anniversary_date,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

type PaginatedGroupResponse = dto.Pagination[GroupResponse]
