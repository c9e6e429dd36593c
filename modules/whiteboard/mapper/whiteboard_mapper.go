package mapper

import (
	"familyhub/modules/whiteboard/dto"
	"familyhub/modules/whiteboard/entity"
)

func ToStrokeResponse(stroke *entity.Stroke) *dto.StrokeResponse {
	return &dto.StrokeResponse{
		StrokeID:    stroke.StrokeID,
		AuthorEmail: stroke.AuthorEmail,
		Color:       stroke.Color,
		Width:       stroke.Width,
		Points:      stroke.Points,
		CreatedAt:   stroke.CreatedAt,
	}
}

func ToStrokeListResponse(strokes []entity.Stroke) *dto.StrokeListResponse {
	items := make([]dto.StrokeResponse, 0, len(strokes))
	for i := range strokes {
		items = append(items, *ToStrokeResponse(&strokes[i]))
	}
	return &dto.StrokeListResponse{Strokes: items, Total: len(items)}
}
