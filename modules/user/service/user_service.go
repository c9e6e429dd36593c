package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"familyhub/core/constants"
	"familyhub/core/errors"
	"familyhub/core/logger"
	"familyhub/modules/user/dto"
	"familyhub/modules/user/mapper"
	"familyhub/modules/user/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/google/uuid"
)

// AvatarStorage is satisfied by core/storage.S3Storage.
type AvatarStorage interface {
	UploadAvatar(ctx context.Context, userID, filename, contentType string, body io.Reader) (string, error)
}

type UserService struct {
	repo    repository.UserRepository
	storage AvatarStorage
}

func NewUserService(repo repository.UserRepository, storage AvatarStorage) *UserService {
	return &UserService{repo: repo, storage: storage}
}

func (s *UserService) GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return mapper.ToUserResponse(user), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ThemeHue != nil {
		user.ThemeHue = req.ThemeHue
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update user failed", err)
	}
	return mapper.ToUserResponse(user), nil
}

// UploadAvatar stores the uploaded image and persists its public URL on the
// profile.
func (s *UserService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (*dto.AvatarResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" && ext != ".webp" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unsupported image type", nil)
	}

	objectName, err := gonanoid.New()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "generate object name failed", err)
	}

	url, err := s.storage.UploadAvatar(ctx, userID.String(), fmt.Sprintf("%s%s", objectName, ext), contentType, body)
	if err != nil {
		logger.Error("UserService:UploadAvatar:Storage:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "avatar upload failed", err)
	}

	user.AvatarURL = &url
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update user failed", err)
	}

	return &dto.AvatarResponse{AvatarURL: url}, nil
}
