package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"venue-feedback-server/database"
	"venue-feedback-server/services"
)

// RegisterLeaderboardRoutes registers the staff leaderboard endpoint
func RegisterLeaderboardRoutes(router *gin.RouterGroup) {
	router.GET("/leaderboard", getLeaderboard)
}

// getLeaderboard ranks the venue's staff by sessions resolved in the
// requested window (7d, 30d or all)
func getLeaderboard(c *gin.Context) {
	venueID := c.GetUint("venue_id")
	window := services.ParseLeaderboardWindow(c.Query("window"))

	board, err := services.NewLeaderboardService(database.DB).Compute(venueID, window, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window":      string(window),
		"leaderboard": board,
	})
}
