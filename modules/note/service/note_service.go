package service

import (
	"context"
	"strings"

	"familyhub/core/constants"
	"familyhub/core/errors"
	groupService "familyhub/modules/group/service"
	"familyhub/modules/note/dto"
	"familyhub/modules/note/entity"
	"familyhub/modules/note/mapper"
	"familyhub/modules/note/repository"
	userRepo "familyhub/modules/user/repository"

	"github.com/google/uuid"
)

type NoteService struct {
	repo   repository.NoteRepository
	groups *groupService.GroupService
	users  userRepo.UserRepository
}

func NewNoteService(repo repository.NoteRepository, groups *groupService.GroupService, users userRepo.UserRepository) *NoteService {
	return &NoteService{repo: repo, groups: groups, users: users}
}

func (s *NoteService) Create(ctx context.Context, req *dto.CreateNoteRequest, email string) (*dto.NoteResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, req.GroupID, email); appErr != nil {
		return nil, appErr
	}

	note := &entity.Note{
		GroupID:     req.GroupID,
		Title:       req.Title,
		Content:     req.Content,
		Color:       req.Color,
		Pinned:      req.Pinned,
		AuthorEmail: email,
		AuthorName:  s.displayName(ctx, email),
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create note failed", err)
	}
	return mapper.ToNoteResponse(note), nil
}

func (s *NoteService) List(ctx context.Context, groupID uuid.UUID, email string) (*dto.NoteListResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.groups.RequireMember(ctx, groupID, email); appErr != nil {
		return nil, appErr
	}

	notes, err := s.repo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list notes failed", err)
	}
	return mapper.ToNoteListResponse(notes), nil
}

func (s *NoteService) GetByID(ctx context.Context, id uuid.UUID, email string) (*dto.NoteResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	note, appErr := s.loadForMember(ctx, id, email)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToNoteResponse(note), nil
}

// Update applies the patch last-write-wins and records the editor.
func (s *NoteService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNoteRequest, email string) (*dto.NoteResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	note, appErr := s.loadForMember(ctx, id, email)
	if appErr != nil {
		return nil, appErr
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Color != nil {
		note.Color = *req.Color
	}
	if req.Pinned != nil {
		note.Pinned = *req.Pinned
	}
	note.LastEditedBy = &email

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update note failed", err)
	}
	return mapper.ToNoteResponse(note), nil
}

func (s *NoteService) Delete(ctx context.Context, id uuid.UUID, email string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.loadForMember(ctx, id, email); appErr != nil {
		return appErr
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete note failed", err)
	}
	return nil
}

func (s *NoteService) loadForMember(ctx context.Context, id uuid.UUID, email string) (*entity.Note, *errors.AppError) {
	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get note failed", err)
	}
	if note == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "note not found", nil)
	}
	if _, appErr := s.groups.RequireMember(ctx, note.GroupID, email); appErr != nil {
		return nil, appErr
	}
	return note, nil
}

func (s *NoteService) displayName(ctx context.Context, email string) string {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || user == nil {
		if at := strings.Index(email, "@"); at > 0 {
			return email[:at]
		}
		return email
	}
	return user.Name
}
