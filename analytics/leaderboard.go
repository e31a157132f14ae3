package analytics

import (
	"sort"

	"venue-feedback-server/models"
	"venue-feedback-server/sessions"
)

// ResolutionCredit is one leaderboard entry: a staff member and how many
// sessions they resolved.
type ResolutionCredit struct {
	StaffID uint   `json:"staff_id"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
}

// CreditResolutions attributes one credit per fully-actioned session to the
// resolver recorded on the session's first row. Sessions that are not fully
// actioned, or whose first row carries no resolver, contribute nothing.
//
// Attribution deliberately reads items[0].resolved_by rather than the most
// recent resolver; the product has always credited the first row.
func CreditResolutions(rows []models.Feedback) map[uint]int {
	credits := make(map[uint]int)
	for _, s := range sessions.Group(rows) {
		actioned := true
		for _, item := range s.Items {
			if !item.IsActioned {
				actioned = false
				break
			}
		}
		if !actioned {
			continue
		}
		resolver := s.Items[0].ResolvedBy
		if resolver == nil {
			continue
		}
		credits[*resolver]++
	}
	return credits
}

// RankCredits joins credit counts against staff names and orders the board
// descending by count. Staff with zero credits are omitted; ties keep the
// order the staff list was supplied in.
func RankCredits(credits map[uint]int, staff []models.Staff) []ResolutionCredit {
	var board []ResolutionCredit
	for _, member := range staff {
		if count, ok := credits[member.ID]; ok {
			board = append(board, ResolutionCredit{
				StaffID: member.ID,
				Name:    member.Name,
				Count:   count,
			})
		}
	}
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Count > board[j].Count
	})
	return board
}
