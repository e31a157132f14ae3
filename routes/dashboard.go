package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"venue-feedback-server/analytics"
	"venue-feedback-server/database"
	"venue-feedback-server/models"
	"venue-feedback-server/sessions"
)

// RegisterDashboardRoutes registers the dashboard stats endpoint
func RegisterDashboardRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard/stats", getDashboardStats)
}

// getDashboardStats returns the venue's windowed volume comparisons plus
// the current triage counts. Everything is recomputed from the row set on
// every call; nothing is cached.
func getDashboardStats(c *gin.Context) {
	venueID := c.GetUint("venue_id")
	now := time.Now()

	// Two weeks of rows covers the widest comparison window (7d vs prior 7d)
	var rows []models.Feedback
	if err := database.DB.
		Where("venue_id = ? AND created_at >= ?", venueID, now.AddDate(0, 0, -14)).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}

	comparisons := analytics.StandardComparisons(rows, now)

	grouped := sessions.Group(rows)
	var alerts, actioned, expired int
	for _, s := range grouped {
		flags := sessions.Classify(s, now)
		switch {
		case flags.IsActioned:
			actioned++
		case flags.IsExpired:
			expired++
		case flags.LowScore:
			alerts++
		}
	}

	var totalAllTime int64
	if err := database.DB.Model(&models.Feedback{}).
		Where("venue_id = ?", venueID).
		Count(&totalAllTime).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comparisons": comparisons,
		"sessions": gin.H{
			"total":    len(grouped),
			"alerts":   alerts,
			"actioned": actioned,
			"expired":  expired,
		},
		"total_feedback": totalAllTime,
	})
}
