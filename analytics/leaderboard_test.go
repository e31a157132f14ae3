package analytics

import (
	"testing"
	"time"

	"venue-feedback-server/models"
)

func resolvedRow(id uint, sessionID string, staffID uint, at time.Time) models.Feedback {
	sid := sessionID
	return models.Feedback{
		ID:         id,
		VenueID:    1,
		SessionID:  &sid,
		IsActioned: true,
		ResolvedBy: &staffID,
		ResolvedAt: &at,
		CreatedAt:  at.Add(-time.Hour),
	}
}

func TestCreditResolutions(t *testing.T) {
	now := time.Now()
	rows := []models.Feedback{
		// Two sessions resolved by staff 1
		resolvedRow(1, "s1", 1, now),
		resolvedRow(2, "s1", 1, now),
		resolvedRow(3, "s2", 1, now),
		// One session resolved by staff 2
		resolvedRow(4, "s3", 2, now),
	}

	credits := CreditResolutions(rows)
	if credits[1] != 2 || credits[2] != 1 {
		t.Errorf("Credits = %v, want staff 1: 2, staff 2: 1", credits)
	}
}

func TestCreditResolutionsSkipsPartialSessions(t *testing.T) {
	now := time.Now()
	partial := resolvedRow(2, "s1", 1, now)
	partial.IsActioned = false

	rows := []models.Feedback{resolvedRow(1, "s1", 1, now), partial}

	if credits := CreditResolutions(rows); len(credits) != 0 {
		t.Errorf("Partially actioned session should earn no credit, got %v", credits)
	}
}

func TestCreditResolutionsSkipsMissingResolver(t *testing.T) {
	now := time.Now()
	sid := "s1"
	rows := []models.Feedback{{
		ID: 1, VenueID: 1, SessionID: &sid, IsActioned: true, CreatedAt: now,
	}}

	if credits := CreditResolutions(rows); len(credits) != 0 {
		t.Errorf("Session without a resolver should earn no credit, got %v", credits)
	}
}

func TestCreditResolutionsFirstRowAttribution(t *testing.T) {
	// When rows in one session carry different resolvers, the first row wins.
	now := time.Now()
	rows := []models.Feedback{
		resolvedRow(1, "s1", 1, now),
		resolvedRow(2, "s1", 2, now),
	}

	credits := CreditResolutions(rows)
	if credits[1] != 1 || credits[2] != 0 {
		t.Errorf("Credit should go to the first row's resolver, got %v", credits)
	}
}

func TestRankCredits(t *testing.T) {
	staff := []models.Staff{
		{ID: 2, VenueID: 1, Name: "Ben"},
		{ID: 1, VenueID: 1, Name: "Ana"},
		{ID: 3, VenueID: 1, Name: "Cam"}, // no credits, omitted
	}
	credits := map[uint]int{1: 2, 2: 1}

	board := RankCredits(credits, staff)
	if len(board) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(board))
	}
	if board[0].Name != "Ana" || board[0].Count != 2 {
		t.Errorf("Top entry = %+v, want Ana with 2", board[0])
	}
	if board[1].Name != "Ben" || board[1].Count != 1 {
		t.Errorf("Second entry = %+v, want Ben with 1", board[1])
	}
}
