package service

import (
	"context"
	"strings"
	"time"

	"familyhub/core/cache"
	"familyhub/core/constants"
	"familyhub/core/errors"
	groupService "familyhub/modules/group/service"
	"familyhub/modules/message/dto"
	"familyhub/modules/message/entity"
	"familyhub/modules/message/mapper"
	"familyhub/modules/message/repository"
	userRepo "familyhub/modules/user/repository"

	"github.com/google/uuid"
)

type MessageService struct {
	repo   repository.MessageRepository
	groups *groupService.GroupService
	users  userRepo.UserRepository
	cache  *cache.Cache
}

func NewMessageService(repo repository.MessageRepository, groups *groupService.GroupService, users userRepo.UserRepository, cache *cache.Cache) *MessageService {
	return &MessageService{repo: repo, groups: groups, users: users, cache: cache}
}

func (s *MessageService) Send(ctx context.Context, groupID uuid.UUID, req *dto.CreateMessageRequest, email string) (*dto.MessageResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, groupID, email); appErr != nil {
		return nil, appErr
	}

	msg := &entity.Message{
		GroupID:     groupID,
		SenderEmail: email,
		SenderName:  s.displayName(ctx, email),
		Content:     req.Content,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "send message failed", err)
	}
	return mapper.ToMessageResponse(msg), nil
}

// List serves the polling clients: messages after the given timestamp, up to
// the limit.
func (s *MessageService) List(ctx context.Context, groupID uuid.UUID, after *time.Time, limit int, email string) (*dto.MessageListResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, groupID, email); appErr != nil {
		return nil, appErr
	}

	if limit <= 0 || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	messages, err := s.repo.ListByGroup(ctx, groupID, after, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list messages failed", err)
	}
	return mapper.ToMessageListResponse(messages), nil
}

// Heartbeat refreshes the caller's presence key.
func (s *MessageService) Heartbeat(ctx context.Context, groupID uuid.UUID, email string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, groupID, email); appErr != nil {
		return appErr
	}
	if err := s.cache.SetPresence(ctx, groupID.String(), email); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update presence failed", err)
	}
	return nil
}

func (s *MessageService) Presence(ctx context.Context, groupID uuid.UUID, email string) (*dto.PresenceResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, groupID, email); appErr != nil {
		return nil, appErr
	}
	online, err := s.cache.GetPresence(ctx, groupID.String())
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get presence failed", err)
	}
	return &dto.PresenceResponse{Online: online}, nil
}

// Typing refreshes the caller's typing key (5s TTL, so it decays on its own
// once they stop).
func (s *MessageService) Typing(ctx context.Context, groupID uuid.UUID, email string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, groupID, email); appErr != nil {
		return appErr
	}
	if err := s.cache.SetTyping(ctx, groupID.String(), email); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update typing failed", err)
	}
	return nil
}

func (s *MessageService) WhoIsTyping(ctx context.Context, groupID uuid.UUID, email string) (*dto.TypingResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, groupID, email); appErr != nil {
		return nil, appErr
	}
	typing, err := s.cache.GetTyping(ctx, groupID.String())
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get typing failed", err)
	}
	return &dto.TypingResponse{Typing: typing}, nil
}

func (s *MessageService) displayName(ctx context.Context, email string) string {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || user == nil {
		if at := strings.Index(email, "@"); at > 0 {
			return email[:at]
		}
		return email
	}
	return user.Name
}
