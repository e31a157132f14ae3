package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-feedback-server/config"
	"venue-feedback-server/database"
	"venue-feedback-server/models"
)

// RegisterVenueRoutes registers the venue settings routes
func RegisterVenueRoutes(router *gin.RouterGroup) {
	router.GET("/venue", getVenue)
	router.PUT("/venue", updateVenue)
}

// getVenue returns the authenticated venue plus the QR target URLs the
// printable table templates encode
func getVenue(c *gin.Context) {
	venue := c.MustGet("venue").(models.Venue)
	base := config.AppConfig.Server.BaseURL

	c.JSON(http.StatusOK, gin.H{
		"venue": venue,
		"qr": gin.H{
			"feedback_url": fmt.Sprintf("%s/v/%d/feedback", base, venue.ID),
			"nps_url":      fmt.Sprintf("%s/v/%d/nps", base, venue.ID),
		},
	})
}

// updateVenue renames the venue
func updateVenue(c *gin.Context) {
	venue := c.MustGet("venue").(models.Venue)

	var req struct {
		Name string `json:"name" binding:"required,min=1,max=255"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
		return
	}

	venue.Name = req.Name
	if err := database.DB.Save(&venue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update venue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Venue updated",
		"venue":   venue,
	})
}
