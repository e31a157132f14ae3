package services

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"venue-feedback-server/models"
)

// ErrStaffRequired is returned when a session is actioned without picking a
// staff member; the message is surfaced to the operator as-is.
var ErrStaffRequired = errors.New("Please select a staff member")

// ErrSessionNotFound is returned when no feedback rows match the session.
var ErrSessionNotFound = errors.New("session not found")

// ResolutionService marks feedback sessions as actioned
type ResolutionService struct {
	db *gorm.DB
}

// NewResolutionService creates a new resolution service
func NewResolutionService(db *gorm.DB) *ResolutionService {
	return &ResolutionService{db: db}
}

// MarkSessionActioned resolves every feedback row in a session: sets
// is_actioned, records the resolving staff member and the resolution time.
// The update runs in a single transaction so a session is either fully
// resolved or untouched; partial resolution states cannot be observed.
func (s *ResolutionService) MarkSessionActioned(venueID uint, sessionID string, staffID uint) (int64, error) {
	if staffID == 0 {
		return 0, ErrStaffRequired
	}

	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Staff must belong to the venue being acted on
		var staff models.Staff
		if err := tx.Where("id = ? AND venue_id = ?", staffID, venueID).First(&staff).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStaffRequired
			}
			return err
		}

		now := time.Now()
		result := tx.Model(&models.Feedback{}).
			Where("venue_id = ? AND session_id = ?", venueID, sessionID).
			Updates(map[string]interface{}{
				"is_actioned": true,
				"resolved_by": staffID,
				"resolved_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSessionNotFound
		}

		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("✅ Session %s actioned by staff %d (%d rows)", sessionID, staffID, affected)
	return affected, nil
}

// MarkRowActioned resolves a single sessionless feedback row (table-level
// feedback submitted without a session id).
func (s *ResolutionService) MarkRowActioned(venueID uint, rowID uint, staffID uint) error {
	if staffID == 0 {
		return ErrStaffRequired
	}

	now := time.Now()
	result := s.db.Model(&models.Feedback{}).
		Where("id = ? AND venue_id = ?", rowID, venueID).
		Updates(map[string]interface{}{
			"is_actioned": true,
			"resolved_by": staffID,
			"resolved_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}
