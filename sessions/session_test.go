package sessions

import (
	"testing"
	"time"

	"venue-feedback-server/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func row(id uint, sessionID string, createdAt time.Time) models.Feedback {
	f := models.Feedback{ID: id, VenueID: 1, CreatedAt: createdAt}
	if sessionID != "" {
		f.SessionID = strPtr(sessionID)
	}
	return f
}

func TestGroupCardinality(t *testing.T) {
	now := time.Now()
	rows := []models.Feedback{
		row(1, "s1", now),
		row(2, "s2", now),
		row(3, "s1", now),
		row(4, "s1", now),
	}

	grouped := Group(rows)
	if len(grouped) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(grouped))
	}
	if grouped[0].ID != "s1" || len(grouped[0].Items) != 3 {
		t.Errorf("Expected s1 with 3 rows, got %s with %d", grouped[0].ID, len(grouped[0].Items))
	}
	if grouped[1].ID != "s2" || len(grouped[1].Items) != 1 {
		t.Errorf("Expected s2 with 1 row, got %s with %d", grouped[1].ID, len(grouped[1].Items))
	}

	// Row identity must be preserved
	if grouped[0].Items[0].ID != 1 || grouped[0].Items[1].ID != 3 || grouped[0].Items[2].ID != 4 {
		t.Errorf("Row identity not preserved in s1: %+v", grouped[0].Items)
	}
}

func TestGroupExcludesSessionlessRows(t *testing.T) {
	now := time.Now()
	rows := []models.Feedback{
		row(1, "s1", now),
		row(2, "", now), // table-level feedback without a session
	}

	grouped := Group(rows)
	if len(grouped) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(grouped))
	}
}

func TestGroupDoesNotDeduplicate(t *testing.T) {
	// A redundant delivery of the same row is counted twice. This mirrors
	// the product's current behavior and is deliberate.
	now := time.Now()
	rows := []models.Feedback{
		row(1, "s1", now),
		row(1, "s1", now),
	}

	grouped := Group(rows)
	if len(grouped[0].Items) != 2 {
		t.Errorf("Expected duplicate row to be counted twice, got %d items", len(grouped[0].Items))
	}
}

func TestGroupCreatedAtIsEarliestRow(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []models.Feedback{
		row(1, "s1", base.Add(5*time.Minute)),
		row(2, "s1", base),
	}

	grouped := Group(rows)
	if !grouped[0].CreatedAt.Equal(base) {
		t.Errorf("Expected session start %v, got %v", base, grouped[0].CreatedAt)
	}
}

func TestClassifyActioned(t *testing.T) {
	now := time.Now()
	s := Session{ID: "s1", CreatedAt: now, Items: []models.Feedback{
		{ID: 1, IsActioned: true, CreatedAt: now},
		{ID: 2, IsActioned: true, CreatedAt: now},
		{ID: 3, IsActioned: true, CreatedAt: now},
	}}

	if !Classify(s, now).IsActioned {
		t.Error("Session with all rows actioned should be actioned")
	}

	// Flipping any single row must flip the session
	for i := range s.Items {
		s.Items[i].IsActioned = false
		if Classify(s, now).IsActioned {
			t.Errorf("Session with row %d unactioned should not be actioned", i)
		}
		s.Items[i].IsActioned = true
	}
}

func TestClassifyLowScore(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name    string
		ratings []*int
		want    bool
	}{
		{"contains a 2", []*int{intPtr(5), intPtr(3), intPtr(2)}, true},
		{"all above 2", []*int{intPtr(5), intPtr(3), intPtr(4)}, false},
		{"no ratings", []*int{nil, nil}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Session{ID: "s1", CreatedAt: now}
			for i, r := range tc.ratings {
				s.Items = append(s.Items, models.Feedback{ID: uint(i + 1), Rating: r, CreatedAt: now})
			}
			if got := Classify(s, now).LowScore; got != tc.want {
				t.Errorf("LowScore = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyExpiryBoundary(t *testing.T) {
	now := time.Now()

	fresh := Session{ID: "s1", CreatedAt: now.Add(-119 * time.Minute), Items: []models.Feedback{{ID: 1}}}
	if Classify(fresh, now).IsExpired {
		t.Error("Session created 119 minutes ago should not be expired")
	}

	stale := Session{ID: "s2", CreatedAt: now.Add(-121 * time.Minute), Items: []models.Feedback{{ID: 2}}}
	if !Classify(stale, now).IsExpired {
		t.Error("Unactioned session created 121 minutes ago should be expired")
	}

	resolved := Session{ID: "s3", CreatedAt: now.Add(-121 * time.Minute), Items: []models.Feedback{{ID: 3, IsActioned: true}}}
	if Classify(resolved, now).IsExpired {
		t.Error("Actioned session should never be expired")
	}
}

func TestFilterTabs(t *testing.T) {
	now := time.Now()
	alert := Session{ID: "alert", CreatedAt: now.Add(-10 * time.Minute), Items: []models.Feedback{
		{ID: 1, Rating: intPtr(1)},
	}}
	actioned := Session{ID: "actioned", CreatedAt: now.Add(-10 * time.Minute), Items: []models.Feedback{
		{ID: 2, Rating: intPtr(2), IsActioned: true},
	}}
	expired := Session{ID: "expired", CreatedAt: now.Add(-3 * time.Hour), Items: []models.Feedback{
		{ID: 3, Rating: intPtr(1)},
	}}
	all := []Session{alert, actioned, expired}

	if got := Filter(all, TabAlerts, now); len(got) != 1 || got[0].ID != "alert" {
		t.Errorf("Alerts tab = %+v, want just the live low-score session", ids(got))
	}
	if got := Filter(all, TabActioned, now); len(got) != 1 || got[0].ID != "actioned" {
		t.Errorf("Actioned tab = %+v", ids(got))
	}
	if got := Filter(all, TabExpired, now); len(got) != 1 || got[0].ID != "expired" {
		t.Errorf("Expired tab = %+v", ids(got))
	}
	if got := Filter(all, TabAll, now); len(got) != 3 {
		t.Errorf("All tab should return everything, got %d", len(got))
	}
}

func TestSortByCreatedAtStable(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	list := []Session{
		{ID: "a", CreatedAt: base},
		{ID: "b", CreatedAt: base}, // same timestamp as a
		{ID: "c", CreatedAt: base.Add(-time.Hour)},
	}

	SortByCreatedAt(list, true)
	if list[0].ID != "c" || list[1].ID != "a" || list[2].ID != "b" {
		t.Errorf("Ascending sort = %v, tie must keep insertion order", ids(list))
	}

	SortByCreatedAt(list, false)
	if list[0].ID != "a" || list[1].ID != "b" || list[2].ID != "c" {
		t.Errorf("Descending sort = %v, tie must keep insertion order", ids(list))
	}
}

func ids(list []Session) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}
