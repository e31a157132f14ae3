package services

import (
	"time"

	"gorm.io/gorm"

	"venue-feedback-server/analytics"
	"venue-feedback-server/models"
)

// LeaderboardWindow selects how far back resolution credit is counted.
type LeaderboardWindow string

const (
	Window7Days   LeaderboardWindow = "7d"
	Window30Days  LeaderboardWindow = "30d"
	WindowAllTime LeaderboardWindow = "all"
)

// ParseLeaderboardWindow maps a query value to a window, defaulting to 7d.
func ParseLeaderboardWindow(value string) LeaderboardWindow {
	switch LeaderboardWindow(value) {
	case Window30Days, WindowAllTime:
		return LeaderboardWindow(value)
	default:
		return Window7Days
	}
}

// LeaderboardService ranks staff by resolved feedback sessions
type LeaderboardService struct {
	db *gorm.DB
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// Compute loads the rows resolved inside the window, groups them into
// sessions and ranks staff by earned credits (see analytics.CreditResolutions
// for the attribution rules).
func (s *LeaderboardService) Compute(venueID uint, window LeaderboardWindow, now time.Time) ([]analytics.ResolutionCredit, error) {
	query := s.db.Where("venue_id = ? AND resolved_at IS NOT NULL", venueID)
	switch window {
	case Window7Days:
		query = query.Where("resolved_at >= ?", now.AddDate(0, 0, -7))
	case Window30Days:
		query = query.Where("resolved_at >= ?", now.AddDate(0, 0, -30))
	}

	var rows []models.Feedback
	if err := query.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	var staff []models.Staff
	if err := s.db.Where("venue_id = ?", venueID).Order("id ASC").Find(&staff).Error; err != nil {
		return nil, err
	}

	credits := analytics.CreditResolutions(rows)
	return analytics.RankCredits(credits, staff), nil
}
