package models

import "time"

// Feedback is one row per question answered by a guest, or a single
// table-level submission. All rows sharing a SessionID were submitted during
// one guest visit and are resolved together as one unit.
type Feedback struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	VenueID            uint       `json:"venue_id" gorm:"not null;index"`
	SessionID          *string    `json:"session_id" gorm:"size:36;index"` // nil for sessionless table feedback
	QuestionID         *uint      `json:"question_id"`
	TableNumber        *int       `json:"table_number"`
	Rating             *int       `json:"rating" gorm:"type:int;check:rating IS NULL OR (rating >= 1 AND rating <= 5)"`
	Sentiment          *string    `json:"sentiment" gorm:"size:50"`
	AdditionalFeedback *string    `json:"additional_feedback" gorm:"type:text"`
	IsActioned         bool       `json:"is_actioned" gorm:"default:false;index"`
	ResolvedBy         *uint      `json:"resolved_by"` // staff id
	ResolvedAt         *time.Time `json:"resolved_at" gorm:"index"`
	CreatedAt          time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName sets custom table name
func (Feedback) TableName() string { return "feedback" }

// FeedbackAnswer is one question answer inside a guest submission.
type FeedbackAnswer struct {
	QuestionID         *uint   `json:"question_id"`
	Rating             *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Sentiment          *string `json:"sentiment"`
	AdditionalFeedback *string `json:"additional_feedback"`
}

// FeedbackSubmission is the request structure for a guest QR submission. All
// answers in one submission share a generated session id.
type FeedbackSubmission struct {
	VenueID     uint             `json:"venue_id" binding:"required"`
	TableNumber *int             `json:"table_number"`
	Answers     []FeedbackAnswer `json:"answers" binding:"required,min=1,dive"`
}
