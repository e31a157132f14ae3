package routes

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"venue-feedback-server/database"
	"venue-feedback-server/middleware"
	"venue-feedback-server/models"
)

// RegisterStaffRoutes registers the staff management routes
func RegisterStaffRoutes(router *gin.RouterGroup) {
	staffRoutes := router.Group("/staff")
	{
		staffRoutes.GET("", listStaff)
		staffRoutes.POST("", createStaff)
		staffRoutes.PUT("/:id", updateStaff)
		staffRoutes.DELETE("/:id", deleteStaff)
	}
}

// listStaff returns the venue's staff members
func listStaff(c *gin.Context) {
	venueID := c.GetUint("venue_id")

	var staff []models.Staff
	if err := database.DB.
		Where("venue_id = ?", venueID).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// createStaff adds a staff member
func createStaff(c *gin.Context) {
	venueID := c.GetUint("venue_id")

	var req struct {
		Name string `json:"name" binding:"required,min=1,max=100"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
		return
	}

	name := strings.TrimSpace(middleware.SanitizeInput(req.Name))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "message": "Staff name cannot be empty"})
		return
	}

	member := models.Staff{VenueID: venueID, Name: name, IsActive: true}
	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Staff member created",
		"staff":   member,
	})
}

// updateStaff renames or re-activates a staff member
func updateStaff(c *gin.Context) {
	venueID := c.GetUint("venue_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID"})
		return
	}

	var member models.Staff
	if err := database.DB.Where("id = ? AND venue_id = ?", id, venueID).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	var req struct {
		Name     *string `json:"name"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(middleware.SanitizeInput(*req.Name))
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "message": "Staff name cannot be empty"})
			return
		}
		member.Name = name
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Staff member updated",
		"staff":   member,
	})
}

// deleteStaff removes a staff member. Resolution history keeps the staff id
// so past leaderboard windows are unaffected until the join drops the name.
func deleteStaff(c *gin.Context) {
	venueID := c.GetUint("venue_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID"})
		return
	}

	result := database.DB.Where("id = ? AND venue_id = ?", id, venueID).Delete(&models.Staff{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff member"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}
