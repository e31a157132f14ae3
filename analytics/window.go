package analytics

import (
	"math"
	"time"

	"venue-feedback-server/models"
)

// Trend directions reported alongside a comparison. A change of exactly 0%
// is reported as up; the dashboard has always rendered it that way.
const (
	TrendUp            = "up"
	TrendDown          = "down"
	TrendIndeterminate = "indeterminate"
)

// Comparison is a windowed count measured against the preceding window of
// the same length.
type Comparison struct {
	Label            string  `json:"label"`
	Current          int     `json:"current"`
	Previous         int     `json:"previous"`
	PercentChange    float64 `json:"percent_change"`
	Trend            string  `json:"trend"`
	HasDataToCompare bool    `json:"has_data_to_compare"`
}

// CountInWindow counts rows whose submission time falls in [start, end).
func CountInWindow(rows []models.Feedback, start, end time.Time) int {
	count := 0
	for _, row := range rows {
		if !row.CreatedAt.Before(start) && row.CreatedAt.Before(end) {
			count++
		}
	}
	return count
}

// PercentChange reports current against previous as a percentage, rounded
// to one decimal place. A zero previous count yields 0 rather than a
// division blowup.
func PercentChange(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	change := (float64(current-previous) / float64(previous)) * 100
	return math.Round(change*10) / 10
}

// Compare builds a Comparison for a window against its predecessor. When
// the previous window is empty there is nothing meaningful to compare
// against, so the trend is indeterminate instead of a misleading 0%.
func Compare(rows []models.Feedback, label string, prevStart, curStart, curEnd time.Time) Comparison {
	current := CountInWindow(rows, curStart, curEnd)
	previous := CountInWindow(rows, prevStart, curStart)

	change := PercentChange(current, previous)
	trend := TrendIndeterminate
	if previous > 0 {
		trend = TrendDown
		if change >= 0 {
			trend = TrendUp
		}
	}

	return Comparison{
		Label:            label,
		Current:          current,
		Previous:         previous,
		PercentChange:    change,
		Trend:            trend,
		HasDataToCompare: previous > 0,
	}
}

// StandardComparisons computes the four windows every dashboard view shows:
// last 30 minutes, last hour, today vs yesterday, last 7 days. Day windows
// use local midnight boundaries in now's location.
func StandardComparisons(rows []models.Feedback, now time.Time) []Comparison {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return []Comparison{
		Compare(rows, "last_30_minutes", now.Add(-60*time.Minute), now.Add(-30*time.Minute), now),
		Compare(rows, "last_hour", now.Add(-2*time.Hour), now.Add(-time.Hour), now),
		Compare(rows, "today", midnight.AddDate(0, 0, -1), midnight, now),
		Compare(rows, "last_7_days", now.AddDate(0, 0, -14), now.AddDate(0, 0, -7), now),
	}
}
