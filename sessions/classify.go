package sessions

import "time"

// Flags are the derived per-session classification bits.
type Flags struct {
	IsActioned bool `json:"is_actioned"`
	LowScore   bool `json:"low_score"`
	IsExpired  bool `json:"is_expired"`
}

// Classify derives a session's flags at a given wall-clock instant.
//
//   - IsActioned: every row in the session has been resolved by staff.
//   - LowScore: at least one row carries a rating of 2 or below.
//   - IsExpired: the session started more than ExpiryThresholdMinutes ago
//     and was never actioned. Actioned sessions never expire.
func Classify(s Session, now time.Time) Flags {
	actioned := true
	lowScore := false
	for _, item := range s.Items {
		if !item.IsActioned {
			actioned = false
		}
		if item.Rating != nil && *item.Rating <= 2 {
			lowScore = true
		}
	}

	expired := now.Sub(s.CreatedAt).Minutes() > ExpiryThresholdMinutes && !actioned

	return Flags{
		IsActioned: actioned,
		LowScore:   lowScore,
		IsExpired:  expired,
	}
}
