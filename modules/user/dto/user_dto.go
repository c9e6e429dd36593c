package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=120"`
	ThemeHue  *int    `json:"theme_hue" validate:"omitempty,min=0,max=360"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url"`
	ThemeHue  *int      `json:"theme_hue"`
	CreatedAt time.Time `json:"created_at"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}
