package service

import (
	"context"

	"familyhub/core/cache"
	"familyhub/core/config"
	"familyhub/core/constants"
	"familyhub/core/errors"
	"familyhub/core/logger"
	"familyhub/core/utils"
	"familyhub/modules/auth/dto"
	userEntity "familyhub/modules/user/entity"
	userMapper "familyhub/modules/user/mapper"
	userRepo "familyhub/modules/user/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type AuthService struct {
	users userRepo.UserRepository
	cache *cache.Cache
	oauth *oauth2.Config
}

func NewAuthService(users userRepo.UserRepository, c *cache.Cache, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		cache: c,
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "email already registered", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user := &userEntity.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: &hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create user failed", err)
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil || user.PasswordHash == nil || !utils.CheckPassword(*user.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	return s.issueToken(user)
}

// Logout blacklists the presented token for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		if ae, ok := err.(*errors.AppError); ok {
			return ae
		}
		return errors.NewAppError(errors.ErrUnauthorized, "invalid token", err)
	}

	if err := s.cache.BlacklistToken(ctx, token, utils.TokenRemainingTTL(claims)); err != nil {
		logger.Error("AuthService:Logout:BlacklistToken:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to blacklist token", err)
	}
	return nil
}

func (s *AuthService) issueToken(user *userEntity.User) (*dto.AuthResponse, *errors.AppError) {
	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Error("AuthService:issueToken:GenerateToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate token", err)
	}
	return &dto.AuthResponse{
		User:  userMapper.ToUserResponse(user),
		Token: token,
	}, nil
}
