package routes

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"venue-feedback-server/database"
	"venue-feedback-server/models"
	"venue-feedback-server/services"
	"venue-feedback-server/sessions"
	ws "venue-feedback-server/websocket"
)

// feedHub receives feedback change events for the dashboard live feed
var feedHub *ws.Hub

// InitFeedHub wires the routes to the WebSocket hub
func InitFeedHub(hub *ws.Hub) {
	feedHub = hub
}

// RegisterPublicFeedbackRoutes registers the guest-facing submission
// endpoint. No authentication: guests reach it from a QR code.
func RegisterPublicFeedbackRoutes(router *gin.RouterGroup) {
	router.POST("/feedback", submitFeedback)
}

// RegisterFeedbackRoutes registers the protected dashboard routes
func RegisterFeedbackRoutes(router *gin.RouterGroup) {
	feedbackRoutes := router.Group("/feedback")
	{
		// Grouped sessions with classification, filtered by tab
		feedbackRoutes.GET("", listSessions)

		// Sessionless table-level rows
		feedbackRoutes.GET("/unsessioned", listUnsessionedFeedback)

		// Resolve a whole session
		feedbackRoutes.POST("/sessions/:sessionId/action", actionSession)

		// Resolve a single sessionless row
		feedbackRoutes.POST("/rows/:rowId/action", actionRow)

		// Delete a row (e.g. abusive free text)
		feedbackRoutes.DELETE("/rows/:rowId", deleteRow)
	}
}

// submitFeedback stores a guest submission. Every answer in the submission
// shares one generated session id, which ties them into a single resolvable
// unit on the dashboard.
func submitFeedback(c *gin.Context) {
	var submission models.FeedbackSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback data", "details": err.Error()})
		return
	}

	// The venue must exist; QR codes for deleted venues are dead links
	var venue models.Venue
	if err := database.DB.First(&venue, submission.VenueID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	sessionID := uuid.NewString()
	now := time.Now()

	rows := make([]models.Feedback, 0, len(submission.Answers))
	for _, answer := range submission.Answers {
		rows = append(rows, models.Feedback{
			VenueID:            submission.VenueID,
			SessionID:          &sessionID,
			QuestionID:         answer.QuestionID,
			TableNumber:        submission.TableNumber,
			Rating:             answer.Rating,
			Sentiment:          answer.Sentiment,
			AdditionalFeedback: answer.AdditionalFeedback,
			CreatedAt:          now,
		})
	}

	if err := database.DB.Create(&rows).Error; err != nil {
		log.Printf("❌ Feedback insert failed for venue %d: %v", submission.VenueID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}

	// Push inserts to live dashboards after the commit
	if feedHub != nil {
		for _, row := range rows {
			feedHub.PublishInsert(row)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Feedback submitted",
		"session_id": sessionID,
		"count":      len(rows),
	})
}

// sessionView is a grouped session plus its classification flags
type sessionView struct {
	sessions.Session
	sessions.Flags
}

// listSessions returns the venue's feedback grouped into sessions,
// classified at request time and filtered by the requested tab
func listSessions(c *gin.Context) {
	venueID := c.GetUint("venue_id")
	tab := sessions.ParseTab(c.Query("tab"))
	ascending := c.DefaultQuery("sort", "desc") == "asc"

	// Optional time horizon, defaulting to the last 7 days of rows
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	if days < 1 || days > 90 {
		days = 7
	}

	var rows []models.Feedback
	if err := database.DB.
		Where("venue_id = ? AND created_at >= ?", venueID, time.Now().AddDate(0, 0, -days)).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}

	now := time.Now()
	grouped := sessions.Group(rows)
	filtered := sessions.Filter(grouped, tab, now)
	sessions.SortByCreatedAt(filtered, ascending)

	views := make([]sessionView, 0, len(filtered))
	for _, s := range filtered {
		views = append(views, sessionView{Session: s, Flags: sessions.Classify(s, now)})
	}

	c.JSON(http.StatusOK, gin.H{
		"tab":      string(tab),
		"sessions": views,
		"total":    len(grouped),
	})
}

// listUnsessionedFeedback returns rows submitted without a session id
func listUnsessionedFeedback(c *gin.Context) {
	venueID := c.GetUint("venue_id")

	var rows []models.Feedback
	if err := database.DB.
		Where("venue_id = ? AND session_id IS NULL", venueID).
		Order("created_at DESC").
		Limit(200).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

// actionSession marks every row of a session as resolved by a staff member
func actionSession(c *gin.Context) {
	venueID := c.GetUint("venue_id")
	sessionID := c.Param("sessionId")

	var req struct {
		StaffID uint `json:"staff_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
		return
	}

	resolution := services.NewResolutionService(database.DB)
	affected, err := resolution.MarkSessionActioned(venueID, sessionID, req.StaffID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStaffRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "message": err.Error()})
		case errors.Is(err, services.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		default:
			log.Printf("❌ Failed to action session %s: %v", sessionID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to action session"})
		}
		return
	}

	// Publish the updated rows so open dashboards re-triage immediately
	if feedHub != nil {
		var updated []models.Feedback
		if err := database.DB.
			Where("venue_id = ? AND session_id = ?", venueID, sessionID).
			Find(&updated).Error; err == nil {
			for _, row := range updated {
				feedHub.PublishUpdate(row)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session actioned",
		"rows":    affected,
	})
}

// actionRow resolves one sessionless feedback row
func actionRow(c *gin.Context) {
	venueID := c.GetUint("venue_id")
	rowID, err := strconv.ParseUint(c.Param("rowId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid row ID"})
		return
	}

	var req struct {
		StaffID uint `json:"staff_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
		return
	}

	resolution := services.NewResolutionService(database.DB)
	if err := resolution.MarkRowActioned(venueID, uint(rowID), req.StaffID); err != nil {
		switch {
		case errors.Is(err, services.ErrStaffRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "message": err.Error()})
		case errors.Is(err, services.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to action feedback"})
		}
		return
	}

	if feedHub != nil {
		var row models.Feedback
		if err := database.DB.First(&row, rowID).Error; err == nil {
			feedHub.PublishUpdate(row)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback actioned"})
}

// deleteRow removes one feedback row
func deleteRow(c *gin.Context) {
	venueID := c.GetUint("venue_id")
	rowID, err := strconv.ParseUint(c.Param("rowId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid row ID"})
		return
	}

	var row models.Feedback
	if err := database.DB.Where("id = ? AND venue_id = ?", rowID, venueID).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		return
	}

	if err := database.DB.Delete(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feedback"})
		return
	}

	if feedHub != nil {
		feedHub.PublishDelete(venueID, row.ID, row.SessionID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted"})
}
