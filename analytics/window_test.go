package analytics

import (
	"testing"
	"time"

	"venue-feedback-server/models"
)

func rowsAt(times ...time.Time) []models.Feedback {
	rows := make([]models.Feedback, len(times))
	for i, ts := range times {
		rows[i] = models.Feedback{ID: uint(i + 1), VenueID: 1, CreatedAt: ts}
	}
	return rows
}

func TestCountInWindowHalfOpen(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	rows := rowsAt(
		start.Add(-time.Second), // before window
		start,                   // inclusive lower bound
		start.Add(15*time.Minute),
		end,                // exclusive upper bound
		end.Add(time.Hour), // after window
	)

	if got := CountInWindow(rows, start, end); got != 2 {
		t.Errorf("CountInWindow = %d, want 2", got)
	}
}

func TestPercentChange(t *testing.T) {
	cases := []struct {
		current, previous int
		want              float64
	}{
		{5, 0, 0}, // no previous data, not infinity
		{10, 5, 100.0},
		{0, 0, 0},
		{5, 10, -50.0},
		{1, 3, -66.7}, // rounded to one decimal
	}

	for _, tc := range cases {
		if got := PercentChange(tc.current, tc.previous); got != tc.want {
			t.Errorf("PercentChange(%d, %d) = %v, want %v", tc.current, tc.previous, got, tc.want)
		}
	}
}

func TestCompareTrendDirection(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	prevStart := now.Add(-time.Hour)
	curStart := now.Add(-30 * time.Minute)

	// Equal windows: 0% change still reports "up"
	rows := rowsAt(prevStart.Add(time.Minute), curStart.Add(time.Minute))
	cmp := Compare(rows, "test", prevStart, curStart, now)
	if cmp.PercentChange != 0 || cmp.Trend != TrendUp {
		t.Errorf("0%% change should report up, got %+v", cmp)
	}

	// Shrinking volume trends down
	rows = rowsAt(prevStart.Add(time.Minute), prevStart.Add(2*time.Minute))
	cmp = Compare(rows, "test", prevStart, curStart, now)
	if cmp.Trend != TrendDown {
		t.Errorf("Expected down trend, got %+v", cmp)
	}

	// Empty previous window cannot be compared against
	rows = rowsAt(curStart.Add(time.Minute))
	cmp = Compare(rows, "test", prevStart, curStart, now)
	if cmp.HasDataToCompare || cmp.Trend != TrendIndeterminate {
		t.Errorf("Empty previous window should be indeterminate, got %+v", cmp)
	}
}

func TestStandardComparisonsDayBoundary(t *testing.T) {
	// 01:00 local time: today's window is one hour old, yesterday is a full day
	now := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	rows := rowsAt(
		midnight.Add(30*time.Minute),  // today
		midnight.Add(-2*time.Hour),    // yesterday evening
		midnight.Add(-23*time.Hour),   // yesterday morning
		midnight.Add(-25*time.Hour),   // day before yesterday
	)

	var today Comparison
	for _, cmp := range StandardComparisons(rows, now) {
		if cmp.Label == "today" {
			today = cmp
		}
	}

	if today.Current != 1 || today.Previous != 2 {
		t.Errorf("today = %d vs yesterday = %d, want 1 vs 2", today.Current, today.Previous)
	}
	if today.PercentChange != -50.0 || today.Trend != TrendDown {
		t.Errorf("Expected -50%% down, got %+v", today)
	}
}
