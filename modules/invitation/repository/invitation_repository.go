package repository

import (
	"context"
	"database/sql"
	"time"

	"familyhub/core/database"
	"familyhub/core/logger"
	groupEntity "familyhub/modules/group/entity"
	"familyhub/modules/invitation/entity"

	"github.com/google/uuid"
)

type InvitationRepository interface {
	Create(ctx context.Context, inv *entity.Invitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error)
	GetPendingByInvitee(ctx context.Context, email string) ([]entity.Invitation, error)
	CountPendingByInvitee(ctx context.Context, email string) (int, error)
	HasPending(ctx context.Context, groupID uuid.UUID, inviteeEmail string) (bool, error)
	UpdateStatus(ctx context.Context, inv *entity.Invitation) error
	AcceptWithMembership(ctx context.Context, inv *entity.Invitation, group *groupEntity.Group) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExpireOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type invitationRepository struct {
	db database.Database
}

func NewInvitationRepository(db database.Database) InvitationRepository {
	return &invitationRepository{db: db}
}

const invitationColumns = `id, group_id, group_name, inviter_email, inviter_name,
	invitee_email, status, responded_at, created_at, updated_at`

func (r *invitationRepository) Create(ctx context.Context, inv *entity.Invitation) error {
	query := `
		INSERT INTO invitations (group_id, group_name, inviter_email, inviter_name, invitee_email, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		inv.GroupID,
		inv.GroupName,
		inv.InviterEmail,
		inv.InviterName,
		inv.InviteeEmail,
		inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		logger.Error("InvitationRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *invitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error) {
	var inv entity.Invitation
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`
	err := r.db.GetContext(ctx, &inv, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("InvitationRepository:GetByID:Error:", err)
		return nil, err
	}
	return &inv, nil
}

func (r *invitationRepository) GetPendingByInvitee(ctx context.Context, email string) ([]entity.Invitation, error) {
	var invitations []entity.Invitation
	query := `SELECT ` + invitationColumns + ` FROM invitations
		WHERE invitee_email = $1 AND status = 'pending'
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &invitations, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.Invitation{}, nil
		}
		logger.Error("InvitationRepository:GetPendingByInvitee:Error:", err)
		return nil, err
	}
	return invitations, nil
}

func (r *invitationRepository) CountPendingByInvitee(ctx context.Context, email string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM invitations WHERE invitee_email = $1 AND status = 'pending'`
	if err := r.db.GetContext(ctx, &count, query, email); err != nil {
		logger.Error("InvitationRepository:CountPendingByInvitee:Error:", err)
		return 0, err
	}
	return count, nil
}

func (r *invitationRepository) HasPending(ctx context.Context, groupID uuid.UUID, inviteeEmail string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
		SELECT 1 FROM invitations WHERE group_id = $1 AND invitee_email = $2 AND status = 'pending'
	)`
	if err := r.db.GetContext(ctx, &exists, query, groupID, inviteeEmail); err != nil {
		logger.Error("InvitationRepository:HasPending:Error:", err)
		return false, err
	}
	return exists, nil
}

func (r *invitationRepository) UpdateStatus(ctx context.Context, inv *entity.Invitation) error {
	query := `
		UPDATE invitations
		SET status = $1, responded_at = $2, updated_at = now()
		WHERE id = $3
	`
	err := r.db.ExecContext(ctx, query, inv.Status, inv.RespondedAt, inv.ID)
	if err != nil {
		logger.Error("InvitationRepository:UpdateStatus:Error:", err)
		return err
	}
	return nil
}

// AcceptWithMembership flips the invitation to accepted and adds the invitee
// to the group's membership columns in a single transaction, so a failure on
// either side leaves both untouched.
func (r *invitationRepository) AcceptWithMembership(ctx context.Context, inv *entity.Invitation, group *groupEntity.Group) error {
	tx, err := r.db.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("InvitationRepository:AcceptWithMembership - Begin", err)
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE groups
		SET members = $1, member_names = $2, member_roles = $3, updated_at = now()
		WHERE id = $4
	`, group.Members, group.MemberNames, group.MemberRoles, group.ID)
	if err != nil {
		logger.Error("InvitationRepository:AcceptWithMembership - Group", err)
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE invitations
		SET status = $1, responded_at = $2, updated_at = now()
		WHERE id = $3
	`, inv.Status, inv.RespondedAt, inv.ID)
	if err != nil {
		logger.Error("InvitationRepository:AcceptWithMembership - Invitation", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("InvitationRepository:AcceptWithMembership - Commit", err)
		return err
	}
	return nil
}

func (r *invitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM invitations WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("InvitationRepository:Delete:Error:", err)
		return err
	}
	return nil
}

// ExpireOlderThan marks pending invitations created before the cutoff as
// expired. Runs from the hourly sweep.
func (r *invitationRepository) ExpireOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE invitations
		SET status = 'expired', updated_at = now()
		WHERE status = 'pending' AND created_at < $1
	`
	result, err := r.db.SQLx().ExecContext(ctx, query, cutoff)
	if err != nil {
		logger.Error("InvitationRepository:ExpireOlderThan:Error:", err)
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		logger.Error("InvitationRepository:ExpireOlderThan - RowsAffected", err)
		return 0, err
	}
	return affected, nil
}
