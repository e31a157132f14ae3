package models

import (
	"errors"
	"strings"
	"time"
)

// MaxQuestionLength caps the text of a configured question.
const MaxQuestionLength = 200

var (
	ErrQuestionEmpty     = errors.New("question text cannot be empty")
	ErrQuestionTooLong   = errors.New("question text is too long")
	ErrQuestionDuplicate = errors.New("an identical question already exists")
)

// Question is a prompt a venue asks its guests.
type Question struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	VenueID   uint      `json:"venue_id" gorm:"not null;index"`
	Text      string    `json:"text" gorm:"size:200;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Question model
func (Question) TableName() string {
	return "questions"
}

// ValidateQuestionText checks a candidate question against the venue's
// existing questions. Duplicate comparison is case-insensitive on the
// trimmed text.
func ValidateQuestionText(text string, existing []Question) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrQuestionEmpty
	}
	if len(trimmed) > MaxQuestionLength {
		return ErrQuestionTooLong
	}
	for _, q := range existing {
		if strings.EqualFold(strings.TrimSpace(q.Text), trimmed) {
			return ErrQuestionDuplicate
		}
	}
	return nil
}
