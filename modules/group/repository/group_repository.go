package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"familyhub/core/database"
	"familyhub/core/logger"
	"familyhub/core/params"
	"familyhub/modules/group/entity"

	"github.com/google/uuid"
)

type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Group, error)
	GetByMember(ctx context.Context, email string, params params.QueryParams) (*entity.PaginatedGroupEntity, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, group *entity.Group) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type groupRepository struct {
	db database.Database
}

func NewGroupRepository(db database.Database) GroupRepository {
	return &groupRepository{db: db}
}

const groupColumns = `id, name, slug, type, owner_email, members, member_names, member_roles,
	notifications_enabled, is_private, anniversary_date, created_at, updated_at`

func (r *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	query := `
		INSERT INTO groups (name, slug, type, owner_email, members, member_names, member_roles,
			notifications_enabled, is_private, anniversary_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		group.Name,
		group.Slug,
		group.Type,
		group.OwnerEmail,
		group.Members,
		group.MemberNames,
		group.MemberRoles,
		group.NotificationsEnabled,
		group.IsPrivate,
		group.AnniversaryDate,
	).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		logger.Error("GroupRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *groupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var group entity.Group
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`
	err := r.db.GetContext(ctx, &group, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GroupRepository:GetByID:Error:", err)
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*entity.Group, error) {
	var group entity.Group
	query := `SELECT ` + groupColumns + ` FROM groups WHERE slug = $1`
	err := r.db.GetContext(ctx, &group, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GroupRepository:GetBySlug:Error:", err)
		return nil, err
	}
	return &group, nil
}

// GetByMember lists groups whose members array contains the email.
func (r *groupRepository) GetByMember(ctx context.Context, email string, qp params.QueryParams) (*entity.PaginatedGroupEntity, error) {
	offset := (qp.PageNumber - 1) * qp.PageSize

	conditions := []string{"members @> to_jsonb($1::text)"}
	args := []interface{}{email}
	argIndex := 2

	if qp.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+qp.Search+"%")
		argIndex++
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	var totalItems int
	countQuery := "SELECT COUNT(*) FROM groups" + whereClause
	if err := r.db.GetContext(ctx, &totalItems, countQuery, args...); err != nil {
		logger.Error("GroupRepository:GetByMember - Count", err)
		return nil, err
	}

	dataQuery := `SELECT ` + groupColumns + ` FROM groups` + whereClause + `
		ORDER BY created_at DESC
		LIMIT $` + fmt.Sprintf("%d", argIndex) + ` OFFSET $` + fmt.Sprintf("%d", argIndex+1)
	args = append(args, qp.PageSize, offset)

	var groups []entity.Group
	if err := r.db.SelectContext(ctx, &groups, dataQuery, args...); err != nil {
		if err == sql.ErrNoRows {
			groups = []entity.Group{}
		} else {
			logger.Error("GroupRepository:GetByMember - Select", err)
			return nil, err
		}
	}

	return &entity.PaginatedGroupEntity{
		Items:      groups,
		TotalItems: totalItems,
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

func (r *groupRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM groups WHERE slug = $1)`
	if err := r.db.GetContext(ctx, &exists, query, slug); err != nil {
		logger.Error("GroupRepository:SlugExists:Error:", err)
		return false, err
	}
	return exists, nil
}

func (r *groupRepository) Update(ctx context.Context, group *entity.Group) error {
	query := `
		UPDATE groups
		SET name = $1, owner_email = $2, members = $3, member_names = $4, member_roles = $5,
			notifications_enabled = $6, is_private = $7, anniversary_date = $8, updated_at = now()
		WHERE id = $9
	`
	result, err := r.db.SQLx().ExecContext(ctx, query,
		group.Name,
		group.OwnerEmail,
		group.Members,
		group.MemberNames,
		group.MemberRoles,
		group.NotificationsEnabled,
		group.IsPrivate,
		group.AnniversaryDate,
		group.ID,
	)
	if err != nil {
		logger.Error("GroupRepository:Update:Error:", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("GroupRepository:Update - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("group with id %s not found", group.ID)
	}
	return nil
}

// Delete removes the group; events, tasks, notes, messages, strokes and
// invitations go with it via FK cascade.
func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM groups WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("GroupRepository:Delete:Error:", err)
		return err
	}
	return nil
}
