package service

import (
	"context"
	"strings"

	"familyhub/core/constants"
	coreEntity "familyhub/core/entity"
	"familyhub/core/errors"
	"familyhub/core/logger"
	"familyhub/core/params"
	"familyhub/core/utils"
	"familyhub/modules/group/dto"
	"familyhub/modules/group/entity"
	"familyhub/modules/group/mapper"
	"familyhub/modules/group/repository"
	userRepo "familyhub/modules/user/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type GroupService struct {
	repo  repository.GroupRepository
	users userRepo.UserRepository
}

func NewGroupService(repo repository.GroupRepository, users userRepo.UserRepository) *GroupService {
	return &GroupService{repo: repo, users: users}
}

// Create makes the caller the group's owner, sole member and admin.
func (s *GroupService) Create(ctx context.Context, req *dto.GroupRequest, ownerEmail string) (*dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	ownerName := s.displayName(ctx, ownerEmail)

	group := &entity.Group{
		Name:        req.Name,
		Type:        entity.GroupType(req.Type),
		OwnerEmail:  ownerEmail,
		Members:     coreEntity.StringList{ownerEmail},
		MemberNames: coreEntity.EmailMap{ownerEmail: ownerName},
		MemberRoles: coreEntity.EmailMap{ownerEmail: string(entity.RoleAdmin)},
	}
	group.NotificationsEnabled = true
	if req.NotificationsEnabled != nil {
		group.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.IsPrivate != nil {
		group.IsPrivate = *req.IsPrivate
	}
	if req.AnniversaryDate != nil {
		if group.Type != entity.GroupTypeCouple {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "anniversary date is only valid for couple groups", nil)
		}
		group.AnniversaryDate = req.AnniversaryDate
	}

	groupSlug, appErr := s.uniqueSlug(ctx, req.Name)
	if appErr != nil {
		return nil, appErr
	}
	group.Slug = groupSlug

	if err := s.repo.Create(ctx, group); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create group failed", err)
	}
	return mapper.ToGroupResponse(group), nil
}

func (s *GroupService) GetMine(ctx context.Context, email string, qp params.QueryParams) (*dto.PaginatedGroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	page, err := s.repo.GetByMember(ctx, email, qp)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get groups failed", err)
	}
	return mapper.ToGroupPaginationResponse(page), nil
}

func (s *GroupService) GetByID(ctx context.Context, id uuid.UUID, email string) (*dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, appErr := s.loadForMember(ctx, id, email)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToGroupResponse(group), nil
}

func (s *GroupService) GetBySlug(ctx context.Context, groupSlug, email string) (*dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, err := s.repo.GetBySlug(ctx, groupSlug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get group failed", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "group not found", nil)
	}
	if !group.HasMember(email) {
		return nil, errors.NewAppError(errors.ErrForbidden, "not a member of this group", nil)
	}
	return mapper.ToGroupResponse(group), nil
}

func (s *GroupService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateGroupRequest, email string) (*dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, appErr := s.loadForMember(ctx, id, email)
	if appErr != nil {
		return nil, appErr
	}
	if !group.IsAdmin(email) {
		return nil, errors.NewAppError(errors.ErrForbidden, "only admins can update the group", nil)
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.NotificationsEnabled != nil {
		group.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.IsPrivate != nil {
		group.IsPrivate = *req.IsPrivate
	}
	if req.AnniversaryDate != nil {
		if group.Type != entity.GroupTypeCouple {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "anniversary date is only valid for couple groups", nil)
		}
		group.AnniversaryDate = req.AnniversaryDate
	}

	if req.TransferOwnership != nil {
		if email != group.OwnerEmail {
			return nil, errors.NewAppError(errors.ErrForbidden, "only the owner can transfer ownership", nil)
		}
		newOwner := *req.TransferOwnership
		if !group.HasMember(newOwner) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "new owner must already be a member", nil)
		}
		group.OwnerEmail = newOwner
		group.MemberRoles[newOwner] = string(entity.RoleAdmin)
	}

	if req.RemoveMember != nil {
		if email != group.OwnerEmail {
			return nil, errors.NewAppError(errors.ErrForbidden, "only the owner can remove members", nil)
		}
		target := *req.RemoveMember
		if target == group.OwnerEmail {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "cannot remove the owner", nil)
		}
		group.RemoveMember(target)
	}

	if err := s.repo.Update(ctx, group); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update group failed", err)
	}
	return mapper.ToGroupResponse(group), nil
}

func (s *GroupService) Delete(ctx context.Context, id uuid.UUID, email string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get group failed", err)
	}
	if group == nil {
		return errors.NewAppError(errors.ErrNotFound, "group not found", nil)
	}
	if email != group.OwnerEmail {
		return errors.NewAppError(errors.ErrForbidden, "only the owner can delete the group", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete group failed", err)
	}
	return nil
}

// RequireMember loads the group and verifies membership; used by the other
// modules to authorize resource access.
func (s *GroupService) RequireMember(ctx context.Context, id uuid.UUID, email string) (*entity.Group, *errors.AppError) {
	return s.loadForMember(ctx, id, email)
}

func (s *GroupService) loadForMember(ctx context.Context, id uuid.UUID, email string) (*entity.Group, *errors.AppError) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get group failed", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "group not found", nil)
	}
	if !group.HasMember(email) {
		return nil, errors.NewAppError(errors.ErrForbidden, "not a member of this group", nil)
	}
	return group, nil
}

func (s *GroupService) uniqueSlug(ctx context.Context, name string) (string, *errors.AppError) {
	base := slug.Make(name)
	exists, err := s.repo.SlugExists(ctx, base)
	if err != nil {
		return "", errors.NewAppError(errors.ErrGetFailed, "check slug failed", err)
	}
	if !exists {
		return base, nil
	}
	return base + "-" + strings.ToLower(utils.GenerateID()), nil
}

func (s *GroupService) displayName(ctx context.Context, email string) string {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || user == nil {
		logger.Warn("GroupService:displayName:Fallback", "email", email)
		if at := strings.Index(email, "@"); at > 0 {
			return email[:at]
		}
		return email
	}
	return user.Name
}
