package dto

import (
	userDto "familyhub/modules/user/dto"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	Code string `json:"code" validate:"required"`
}

type AuthResponse struct {
	User  *userDto.UserResponse `json:"user"`
	Token string                `json:"token"`
}

type GoogleAuthURLResponse struct {
	URL string `json:"url"`
}
