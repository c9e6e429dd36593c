package entity

import (
	"familyhub/core/entity"
)

type User struct {
	entity.BaseEntity
	Email        string  `db:"email" json:"email"`
	Name         string  `db:"name" json:"name"`
	PasswordHash *string `db:"password_hash" json:"-"`
	AvatarURL    *string `db:"avatar_url" json:"avatar_url"`
	ThemeHue     *int    `db:"theme_hue" json:"theme_hue"`
	GoogleID     *string `db:"google_id" json:"-"`
}
