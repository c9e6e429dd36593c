package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"familyhub/core/entity"

	"github.com/google/uuid"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointList stores a stroke's path as jsonb.
type PointList []Point

func (p PointList) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p)
}

func (p *PointList) Scan(src interface{}) error {
	if src == nil {
		*p = PointList{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into PointList", src)
	}
	return json.Unmarshal(b, p)
}

type Stroke struct {
	entity.BaseEntity
	StrokeID    string    `db:"stroke_id" json:"stroke_id"`
	GroupID     uuid.UUID `db:"group_id" json:"group_id"`
	AuthorEmail string    `db:"author_email" json:"author_email"`
	Color       string    `db:"color" json:"color"`
	Width       float64   `db:"width" json:"width"`
	Points      PointList `db:"points" json:"points"`
}
