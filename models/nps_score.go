package models

import "time"

// NPSScore is a single 0-10 "would you recommend us" response.
type NPSScore struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	VenueID   uint      `json:"venue_id" gorm:"not null;index"`
	Score     int       `json:"score" gorm:"type:int;not null;check:score >= 0 AND score <= 10"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName specifies the table name for the NPSScore model
func (NPSScore) TableName() string {
	return "nps_scores"
}
