package dto

import (
	"time"

	"familyhub/modules/whiteboard/entity"
)

type CreateStrokeRequest struct {
	Color  string         `json:"color"`
	Width  float64        `json:"width" validate:"omitempty,gt=0"`
	Points []entity.Point `json:"points" validate:"required,min=1"`
}

type StrokeResponse struct {
	StrokeID    string           `json:"stroke_id"`
	AuthorEmail string           `json:"author_email"`
	Color       string           `json:"color"`
	Width       float64          `json:"width"`
	Points      entity.PointList `json:"points"`
	CreatedAt   time.Time        `json:"created_at"`
}

type StrokeListResponse struct {
	Strokes []StrokeResponse `json:"strokes"`
	Total   int              `json:"total"`
}
