package service

import (
	"context"
	"time"

	"familyhub/core/constants"
	"familyhub/core/errors"
	"familyhub/core/utils"
	groupService "familyhub/modules/group/service"
	"familyhub/modules/whiteboard/dto"
	"familyhub/modules/whiteboard/entity"
	"familyhub/modules/whiteboard/mapper"
	"familyhub/modules/whiteboard/repository"

	"github.com/google/uuid"
)

type WhiteboardService struct {
	repo   repository.WhiteboardRepository
	groups *groupService.GroupService
}

func NewWhiteboardService(repo repository.WhiteboardRepository, groups *groupService.GroupService) *WhiteboardService {
	return &WhiteboardService{repo: repo, groups: groups}
}

func (s *WhiteboardService) AddStroke(ctx context.Context, groupID uuid.UUID, req *dto.CreateStrokeRequest, email string) (*dto.StrokeResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, groupID, email); appErr != nil {
		return nil, appErr
	}

	stroke := &entity.Stroke{
		StrokeID:    utils.GenerateID(),
		GroupID:     groupID,
		AuthorEmail: email,
		Color:       req.Color,
		Width:       req.Width,
		Points:      entity.PointList(req.Points),
	}
	if stroke.Color == "" {
		stroke.Color = "#000000"
	}
	if stroke.Width == 0 {
		stroke.Width = 2
	}

	if err := s.repo.Create(ctx, stroke); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "add stroke failed", err)
	}
	return mapper.ToStrokeResponse(stroke), nil
}

// List returns strokes for the board; with since set, only strokes drawn
// after that instant, which the polling clients use for incremental sync.
func (s *WhiteboardService) List(ctx context.Context, groupID uuid.UUID, since *time.Time, email string) (*dto.StrokeListResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, groupID, email); appErr != nil {
		return nil, appErr
	}

	strokes, err := s.repo.ListByGroup(ctx, groupID, since)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list strokes failed", err)
	}
	return mapper.ToStrokeListResponse(strokes), nil
}

// Clear wipes the board. Admin or owner only.
func (s *WhiteboardService) Clear(ctx context.Context, groupID uuid.UUID, email string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, appErr := s.groups.RequireMember(ctx, groupID, email)
	if appErr != nil {
		return appErr
	}
	if !group.IsAdmin(email) {
		return errors.NewAppError(errors.ErrForbidden, "only admins can clear the whiteboard", nil)
	}

	if err := s.repo.Clear(ctx, groupID); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "clear whiteboard failed", err)
	}
	return nil
}
