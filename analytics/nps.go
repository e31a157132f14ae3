package analytics

import (
	"math"
	"sort"
	"time"

	"venue-feedback-server/models"
)

// NPSBreakdown partitions 0-10 scores into the standard NPS buckets.
type NPSBreakdown struct {
	Promoters  int     `json:"promoters"`  // score >= 9
	Passives   int     `json:"passives"`   // 7-8
	Detractors int     `json:"detractors"` // <= 6
	Total      int     `json:"total"`
	Score      float64 `json:"score"`
}

// NPSDailyPoint is one entry of the cumulative daily series.
type NPSDailyPoint struct {
	Date      time.Time `json:"date"`
	Score     float64   `json:"score"`
	Responses int       `json:"responses"`
}

// BreakdownNPS classifies a set of scores and computes the net promoter
// score: ((promoters - detractors) / total) * 100, rounded to one decimal.
// An empty set scores 0.
func BreakdownNPS(scores []int) NPSBreakdown {
	b := NPSBreakdown{Total: len(scores)}
	for _, s := range scores {
		switch {
		case s >= 9:
			b.Promoters++
		case s >= 7:
			b.Passives++
		default:
			b.Detractors++
		}
	}
	if b.Total > 0 {
		raw := (float64(b.Promoters-b.Detractors) / float64(b.Total)) * 100
		b.Score = math.Round(raw*10) / 10
	}
	return b
}

// NPS is the score alone; see BreakdownNPS.
func NPS(scores []int) float64 {
	return BreakdownNPS(scores).Score
}

// CumulativeDailySeries produces one point per distinct calendar day with a
// response, each computed over ALL scores up to and including that day. The
// series never resets and is never windowed; each point folds in the full
// history before it.
func CumulativeDailySeries(scores []models.NPSScore) []NPSDailyPoint {
	if len(scores) == 0 {
		return nil
	}

	ordered := make([]models.NPSScore, len(scores))
	copy(ordered, scores)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	var series []NPSDailyPoint
	var cumulative []int
	for i, s := range ordered {
		cumulative = append(cumulative, s.Score)

		day := truncateToDay(s.CreatedAt)
		last := i == len(ordered)-1
		if !last && truncateToDay(ordered[i+1].CreatedAt).Equal(day) {
			continue
		}

		series = append(series, NPSDailyPoint{
			Date:      day,
			Score:     NPS(cumulative),
			Responses: len(cumulative),
		})
	}

	return series
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
