package mapper

import (
	"familyhub/modules/group/dto"
	"familyhub/modules/group/entity"
)

func ToGroupResponse(group *entity.Group) *dto.GroupResponse {
	return &dto.GroupResponse{
		ID:                   group.ID,
		Name:                 group.Name,
		Slug:                 group.Slug,
		Type:                 string(group.Type),
		Owner:                group.OwnerEmail,
		Members:              group.Members,
		MemberNames:          group.MemberNames,
		MemberRoles:          group.MemberRoles,
		NotificationsEnabled: group.NotificationsEnabled,
		IsPrivate:            group.IsPrivate,
		AnniversaryDate:      group.AnniversaryDate,
		CreatedAt:            group.CreatedAt,
		UpdatedAt:            group.UpdatedAt,
	}
}

func ToGroupPaginationResponse(page *entity.PaginatedGroupEntity) *dto.PaginatedGroupResponse {
	if page == nil {
		return &dto.PaginatedGroupResponse{Items: []dto.GroupResponse{}}
	}

	items := make([]dto.GroupResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *ToGroupResponse(&page.Items[i])
	}

	totalPages := 0
	if page.PageSize > 0 {
		totalPages = (page.TotalItems + page.PageSize - 1) / page.PageSize
	}

	return &dto.PaginatedGroupResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		TotalPages: totalPages,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
