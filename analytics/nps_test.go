package analytics

import (
	"testing"
	"time"

	"venue-feedback-server/models"
)

func TestBreakdownNPS(t *testing.T) {
	// 3 promoters, 2 passives, 2 detractors
	scores := []int{10, 10, 9, 8, 7, 3, 2}

	b := BreakdownNPS(scores)
	if b.Promoters != 3 || b.Passives != 2 || b.Detractors != 2 {
		t.Errorf("Breakdown = %+v, want 3/2/2", b)
	}
	if b.Score != 14.3 {
		t.Errorf("NPS = %v, want 14.3", b.Score)
	}
}

func TestNPSEmpty(t *testing.T) {
	if got := NPS(nil); got != 0 {
		t.Errorf("NPS of no responses = %v, want 0", got)
	}
}

func TestNPSBucketBoundaries(t *testing.T) {
	cases := []struct {
		score  int
		bucket string
	}{
		{9, "promoter"}, {10, "promoter"},
		{7, "passive"}, {8, "passive"},
		{6, "detractor"}, {0, "detractor"},
	}

	for _, tc := range cases {
		b := BreakdownNPS([]int{tc.score})
		got := "detractor"
		if b.Promoters == 1 {
			got = "promoter"
		} else if b.Passives == 1 {
			got = "passive"
		}
		if got != tc.bucket {
			t.Errorf("Score %d classified as %s, want %s", tc.score, got, tc.bucket)
		}
	}
}

func TestCumulativeDailySeries(t *testing.T) {
	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	scores := []models.NPSScore{
		// Deliberately out of order; series must sort by date
		{ID: 3, Score: 0, CreatedAt: day2},
		{ID: 1, Score: 10, CreatedAt: day1},
		{ID: 2, Score: 10, CreatedAt: day1.Add(time.Hour)},
	}

	series := CumulativeDailySeries(scores)
	if len(series) != 2 {
		t.Fatalf("Expected 2 daily points, got %d", len(series))
	}

	// Day 1: two promoters -> 100
	if series[0].Score != 100 || series[0].Responses != 2 {
		t.Errorf("Day 1 = %+v, want score 100 over 2 responses", series[0])
	}

	// Day 2 folds in all history: 2 promoters, 1 detractor over 3 -> 33.3
	if series[1].Score != 33.3 || series[1].Responses != 3 {
		t.Errorf("Day 2 = %+v, want cumulative score 33.3 over 3 responses", series[1])
	}
}

func TestCumulativeDailySeriesEmpty(t *testing.T) {
	if got := CumulativeDailySeries(nil); got != nil {
		t.Errorf("Expected nil series for no scores, got %v", got)
	}
}
