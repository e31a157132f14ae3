package models

import "time"

type TableShape string

const (
	ShapeSquare TableShape = "square"
	ShapeCircle TableShape = "circle"
	ShapeLong   TableShape = "long"
)

// TablePosition is the persisted placement of a physical table on the
// heatmap. Coordinates are stored as percentages of the layout surface so
// the layout is resolution-independent; pixel coordinates exist only while
// an operator is editing and are never persisted.
type TablePosition struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	VenueID     uint       `json:"venue_id" gorm:"not null;uniqueIndex:idx_venue_table"`
	TableNumber int        `json:"table_number" gorm:"not null;uniqueIndex:idx_venue_table"`
	Shape       TableShape `json:"shape" gorm:"type:varchar(10);not null;default:'square';check:shape IN ('square','circle','long')"`
	XPercent    float64    `json:"x_percent" gorm:"not null;check:x_percent >= 0 AND x_percent <= 100"`
	YPercent    float64    `json:"y_percent" gorm:"not null;check:y_percent >= 0 AND y_percent <= 100"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the TablePosition model
func (TablePosition) TableName() string {
	return "table_positions"
}

// TableSummary is the per-table classification data shown on the heatmap.
// It is keyed by table number, so it must be refetched after a layout save.
type TableSummary struct {
	TableNumber     int      `json:"table_number"`
	AverageRating   *float64 `json:"average_rating"`
	FeedbackCount   int      `json:"feedback_count"`
	UnresolvedCount int      `json:"unresolved_count"`
	HasAlert        bool     `json:"has_alert"`
}
