package mapper

import (
	"familyhub/modules/message/dto"
	"familyhub/modules/message/entity"
)

func ToMessageResponse(msg *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:          msg.ID,
		GroupID:     msg.GroupID,
		SenderEmail: msg.SenderEmail,
		SenderName:  msg.SenderName,
		Content:     msg.Content,
		CreatedAt:   msg.CreatedAt,
	}
}

func ToMessageListResponse(messages []entity.Message) *dto.MessageListResponse {
	items := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, *ToMessageResponse(&messages[i]))
	}
	return &dto.MessageListResponse{Messages: items, Total: len(items)}
}
