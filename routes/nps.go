package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-feedback-server/analytics"
	"venue-feedback-server/database"
	"venue-feedback-server/models"
)

// RegisterPublicNPSRoutes registers the guest-facing NPS submission endpoint
func RegisterPublicNPSRoutes(router *gin.RouterGroup) {
	router.POST("/nps", submitNPSScore)
}

// RegisterNPSRoutes registers the protected NPS dashboard routes
func RegisterNPSRoutes(router *gin.RouterGroup) {
	router.GET("/nps/summary", getNPSSummary)
}

// submitNPSScore stores a guest's 0-10 recommendation score
func submitNPSScore(c *gin.Context) {
	var req struct {
		VenueID uint `json:"venue_id" binding:"required"`
		Score   *int `json:"score" binding:"required,min=0,max=10"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid NPS data", "details": err.Error()})
		return
	}

	var venue models.Venue
	if err := database.DB.First(&venue, req.VenueID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	score := models.NPSScore{VenueID: req.VenueID, Score: *req.Score}
	if err := database.DB.Create(&score).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save score"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Score recorded"})
}

// getNPSSummary returns the venue's current NPS, its promoter/passive/
// detractor breakdown and the cumulative daily series
func getNPSSummary(c *gin.Context) {
	venueID := c.GetUint("venue_id")

	var scores []models.NPSScore
	if err := database.DB.
		Where("venue_id = ?", venueID).
		Order("created_at ASC").
		Find(&scores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scores"})
		return
	}

	values := make([]int, len(scores))
	for i, s := range scores {
		values[i] = s.Score
	}

	c.JSON(http.StatusOK, gin.H{
		"breakdown": analytics.BreakdownNPS(values),
		"series":    analytics.CumulativeDailySeries(scores),
	})
}
