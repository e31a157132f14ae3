package models

import "time"

// Staff is a venue staff member. Staff ids are recorded on feedback rows
// when a session is marked actioned.
type Staff struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	VenueID   uint      `json:"venue_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Staff model
func (Staff) TableName() string {
	return "staff"
}
