package mapper

import (
	"familyhub/modules/invitation/dto"
	"familyhub/modules/invitation/entity"
)

func ToInvitationResponse(inv *entity.Invitation) *dto.InvitationResponse {
	return &dto.InvitationResponse{
		ID:           inv.ID,
		GroupID:      inv.GroupID,
		GroupName:    inv.GroupName,
		InviterEmail: inv.InviterEmail,
		InviterName:  inv.InviterName,
		InviteeEmail: inv.InviteeEmail,
		Status:       string(inv.Status),
		RespondedAt:  inv.RespondedAt,
		CreatedAt:    inv.CreatedAt,
	}
}

func ToPendingInvitationsResponse(invitations []entity.Invitation) *dto.PendingInvitationsResponse {
	items := make([]dto.InvitationResponse, 0, len(invitations))
	for i := range invitations {
		items = append(items, *ToInvitationResponse(&invitations[i]))
	}
	return &dto.PendingInvitationsResponse{
		Invitations: items,
		Total:       len(items),
	}
}
