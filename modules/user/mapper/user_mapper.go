package mapper

import (
	"familyhub/modules/user/dto"
	"familyhub/modules/user/entity"
)

func ToUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		ThemeHue:  user.ThemeHue,
		CreatedAt: user.CreatedAt,
	}
}
