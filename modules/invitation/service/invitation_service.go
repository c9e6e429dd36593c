package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"familyhub/core/constants"
	"familyhub/core/errors"
	"familyhub/core/logger"
	groupEntity "familyhub/modules/group/entity"
	groupRepo "familyhub/modules/group/repository"
	"familyhub/modules/invitation/dto"
	"familyhub/modules/invitation/entity"
	"familyhub/modules/invitation/mapper"
	"familyhub/modules/invitation/repository"
	notificationDto "familyhub/modules/notification/dto"
	notificationService "familyhub/modules/notification/service"
	userRepo "familyhub/modules/user/repository"

	"github.com/google/uuid"
)

type InvitationService struct {
	repo     repository.InvitationRepository
	groups   groupRepo.GroupRepository
	users    userRepo.UserRepository
	notifier notificationService.Notifier
}

func NewInvitationService(
	repo repository.InvitationRepository,
	groups groupRepo.GroupRepository,
	users userRepo.UserRepository,
	notifier notificationService.Notifier,
) *InvitationService {
	return &InvitationService{repo: repo, groups: groups, users: users, notifier: notifier}
}

// Create invites an email address into a group. Only group admins can
// invite, and the capacity and duplicate checks run before anything is
// written.
func (s *InvitationService) Create(ctx context.Context, req *dto.CreateInvitationRequest, inviterEmail string) (*dto.InvitationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, err := s.groups.GetByID(ctx, req.GroupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get group failed", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "group not found", nil)
	}
	if !group.IsAdmin(inviterEmail) {
		return nil, errors.NewAppError(errors.ErrForbidden, "only admins can invite members", nil)
	}

	invitee := strings.ToLower(strings.TrimSpace(req.InviteeEmail))
	if invitee == strings.ToLower(strings.TrimSpace(inviterEmail)) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "cannot invite yourself", nil)
	}
	if group.HasMember(invitee) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "already a member of this group", nil)
	}
	if group.Type == groupEntity.GroupTypeCouple && len(group.Members) >= constants.CoupleGroupMaxMembers {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "couple groups are limited to two members", nil)
	}

	pending, err := s.repo.HasPending(ctx, group.ID, invitee)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "check pending invitation failed", err)
	}
	if pending {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "an invitation for this email is already pending", nil)
	}

	inv := &entity.Invitation{
		GroupID:      group.ID,
		GroupName:    group.Name,
		InviterEmail: inviterEmail,
		InviterName:  s.displayName(ctx, inviterEmail),
		InviteeEmail: invitee,
		Status:       entity.InvitationStatusPending,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		// The partial unique index on pending invitations closes the race
		// between the existence check and the insert.
		if strings.Contains(err.Error(), "idx_invitations_pending_unique") {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "an invitation for this email is already pending", nil)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create invitation failed", err)
	}

	s.notifyByEmail(ctx, invitee, "Group invitation",
		fmt.Sprintf("%s invited you to join %s", inv.InviterName, group.Name),
		"invitation", map[string]interface{}{"invitation_id": inv.ID.String(), "group_id": group.ID.String()})

	return mapper.ToInvitationResponse(inv), nil
}

func (s *InvitationService) GetPending(ctx context.Context, email string) (*dto.PendingInvitationsResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	invitations, err := s.repo.GetPendingByInvitee(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get invitations failed", err)
	}
	return mapper.ToPendingInvitationsResponse(invitations), nil
}

func (s *InvitationService) CountPending(ctx context.Context, email string) (int, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	count, err := s.repo.CountPendingByInvitee(ctx, email)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrGetFailed, "count invitations failed", err)
	}
	return count, nil
}

// UpdateStatus lets the invitee accept or decline. Accepting adds them to the
// group and flips the invitation in one transaction; if the group has been
// deleted in the meantime the invitation stays pending and the caller gets a
// not-found error.
func (s *InvitationService) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateInvitationStatusRequest, email string) (*dto.InvitationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get invitation failed", err)
	}
	if inv == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "invitation not found", nil)
	}
	if inv.InviteeEmail != email {
		return nil, errors.NewAppError(errors.ErrForbidden, "only the invitee can respond", nil)
	}
	if inv.Status != entity.InvitationStatusPending {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invitation has already been responded to", nil)
	}

	now := time.Now().UTC()
	inv.RespondedAt = &now

	if req.Status == string(entity.InvitationStatusDeclined) {
		inv.Status = entity.InvitationStatusDeclined
		if err := s.repo.UpdateStatus(ctx, inv); err != nil {
			return nil, errors.NewAppError(errors.ErrUpdateFailed, "update invitation failed", err)
		}
		return mapper.ToInvitationResponse(inv), nil
	}

	group, err := s.groups.GetByID(ctx, inv.GroupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get group failed", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "the group no longer exists", nil)
	}
	if group.Type == groupEntity.GroupTypeCouple && len(group.Members) >= constants.CoupleGroupMaxMembers {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "couple groups are limited to two members", nil)
	}

	group.AddMember(email, s.displayName(ctx, email))
	inv.Status = entity.InvitationStatusAccepted
	if err := s.repo.AcceptWithMembership(ctx, inv, group); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "accept invitation failed", err)
	}

	s.notifyByEmail(ctx, inv.InviterEmail, "Invitation accepted",
		fmt.Sprintf("%s joined %s", s.displayName(ctx, email), group.Name),
		"invitation", map[string]interface{}{"group_id": group.ID.String()})

	return mapper.ToInvitationResponse(inv), nil
}

// Delete revokes an invitation. The inviter or the invitee may do it.
func (s *InvitationService) Delete(ctx context.Context, id uuid.UUID, email string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get invitation failed", err)
	}
	if inv == nil {
		return errors.NewAppError(errors.ErrNotFound, "invitation not found", nil)
	}
	if inv.InviterEmail != email && inv.InviteeEmail != email {
		return errors.NewAppError(errors.ErrForbidden, "not allowed to delete this invitation", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete invitation failed", err)
	}
	return nil
}

// ExpireStale marks pending invitations past the expiry window as expired.
// Wired to the hourly cron job.
func (s *InvitationService) ExpireStale(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	cutoff := time.Now().UTC().AddDate(0, 0, -constants.InvitationExpiryDays)
	expired, err := s.repo.ExpireOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error("InvitationService:ExpireStale:Error:", err)
		return
	}
	if expired > 0 {
		logger.Info("InvitationService:ExpireStale", "expired", expired)
	}
}

func (s *InvitationService) displayName(ctx context.Context, email string) string {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || user == nil {
		if at := strings.Index(email, "@"); at > 0 {
			return email[:at]
		}
		return email
	}
	return user.Name
}

// notifyByEmail creates an in-app notification when the email belongs to a
// registered user. Invitees without an account simply get nothing until they
// sign up.
func (s *InvitationService) notifyByEmail(ctx context.Context, email, title, message, notifType string, data map[string]interface{}) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return
	}
	if err := s.notifier.Create(ctx, &notificationDto.CreateNotificationRequest{
		UserID:  user.ID,
		Title:   title,
		Message: message,
		Type:    notifType,
		Data:    data,
	}); err != nil {
		logger.Warn("InvitationService:notifyByEmail:Error:", "email", email, "error", err.Error())
	}
}
