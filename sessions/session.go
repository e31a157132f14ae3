package sessions

import (
	"time"

	"venue-feedback-server/models"
)

// ExpiryThresholdMinutes is how long an unactioned session stays live before
// it is considered expired. Fixed product-wide; not configurable per venue.
const ExpiryThresholdMinutes = 120

// Session is all feedback rows submitted during one guest visit. It is a
// derived view over the feedback table, never persisted: grouping and
// classification are recomputed on every read.
type Session struct {
	ID        string            `json:"session_id"`
	Items     []models.Feedback `json:"items"`
	CreatedAt time.Time         `json:"created_at"`
}

// Group builds sessions from an unordered slice of feedback rows for one
// venue. Sessions appear in order of first occurrence, and rows keep their
// input order within a session. Rows without a session id are excluded;
// they are sessionless table feedback and are handled individually.
//
// Rows are not de-duplicated by id: if the caller hands the same row twice
// it is counted twice.
func Group(rows []models.Feedback) []Session {
	index := make(map[string]int)
	var result []Session

	for _, row := range rows {
		if row.SessionID == nil || *row.SessionID == "" {
			continue
		}
		id := *row.SessionID
		i, ok := index[id]
		if !ok {
			i = len(result)
			index[id] = i
			result = append(result, Session{ID: id, CreatedAt: row.CreatedAt})
		}
		result[i].Items = append(result[i].Items, row)
		if row.CreatedAt.Before(result[i].CreatedAt) {
			result[i].CreatedAt = row.CreatedAt
		}
	}

	return result
}
