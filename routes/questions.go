package routes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"venue-feedback-server/database"
	"venue-feedback-server/middleware"
	"venue-feedback-server/models"
)

// RegisterPublicQuestionRoutes exposes a venue's active questions to the
// guest submission page
func RegisterPublicQuestionRoutes(router *gin.RouterGroup) {
	router.GET("/venues/:venueId/questions", getVenueQuestions)
}

// RegisterQuestionRoutes registers the protected question management routes
func RegisterQuestionRoutes(router *gin.RouterGroup) {
	questionRoutes := router.Group("/questions")
	{
		questionRoutes.GET("", listQuestions)
		questionRoutes.POST("", createQuestion)
		questionRoutes.PUT("/:id", updateQuestion)
		questionRoutes.DELETE("/:id", deleteQuestion)
	}
}

// getVenueQuestions returns the active questions a guest is asked
func getVenueQuestions(c *gin.Context) {
	venueID, err := strconv.ParseUint(c.Param("venueId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue ID"})
		return
	}

	var questions []models.Question
	if err := database.DB.
		Where("venue_id = ? AND is_active = ?", venueID, true).
		Order("sort_order ASC, id ASC").
		Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// listQuestions returns all of the venue's questions, active or not
func listQuestions(c *gin.Context) {
	venueID := c.GetUint("venue_id")

	var questions []models.Question
	if err := database.DB.
		Where("venue_id = ?", venueID).
		Order("sort_order ASC, id ASC").
		Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// createQuestion adds a question after validating its text against the
// venue's existing set
func createQuestion(c *gin.Context) {
	venueID := c.GetUint("venue_id")

	var req struct {
		Text      string `json:"text" binding:"required"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
		return
	}

	text := middleware.SanitizeInput(req.Text)

	var existing []models.Question
	if err := database.DB.Where("venue_id = ?", venueID).Find(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	if err := models.ValidateQuestionText(text, existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "message": err.Error()})
		return
	}

	question := models.Question{
		VenueID:   venueID,
		Text:      strings.TrimSpace(text),
		IsActive:  true,
		SortOrder: req.SortOrder,
	}
	if err := database.DB.Create(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Question created",
		"question": question,
	})
}

// updateQuestion edits a question's text, order or active flag
func updateQuestion(c *gin.Context) {
	venueID := c.GetUint("venue_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	var question models.Question
	if err := database.DB.Where("id = ? AND venue_id = ?", id, venueID).First(&question).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	var req struct {
		Text      *string `json:"text"`
		SortOrder *int    `json:"sort_order"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
		return
	}

	if req.Text != nil {
		text := middleware.SanitizeInput(*req.Text)

		// Validate against the venue's other questions
		var others []models.Question
		if err := database.DB.
			Where("venue_id = ? AND id != ?", venueID, question.ID).
			Find(&others).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
			return
		}
		if err := models.ValidateQuestionText(text, others); err != nil {
			if errors.Is(err, models.ErrQuestionDuplicate) {
				c.JSON(http.StatusConflict, gin.H{"error": "Validation error", "message": err.Error()})
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "message": err.Error()})
			}
			return
		}
		question.Text = strings.TrimSpace(text)
	}
	if req.SortOrder != nil {
		question.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update question"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Question updated",
		"question": question,
	})
}

// deleteQuestion removes a question. Feedback rows keep their question_id;
// historical answers are not rewritten.
func deleteQuestion(c *gin.Context) {
	venueID := c.GetUint("venue_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	result := database.DB.Where("id = ? AND venue_id = ?", id, venueID).Delete(&models.Question{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete question"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
}
