package routes

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"venue-feedback-server/database"
	"venue-feedback-server/models"
)

// RegisterLayoutRoutes registers the heatmap layout routes
func RegisterLayoutRoutes(router *gin.RouterGroup) {
	layoutRoutes := router.Group("/layout")
	{
		layoutRoutes.GET("", getLayout)
		layoutRoutes.PUT("", saveLayout)
		layoutRoutes.DELETE("", clearLayout)
	}
}

// layoutPositionInput is one table position as submitted by the editor.
// Percentages only; pixel coordinates never reach the server.
type layoutPositionInput struct {
	TableNumber int               `json:"table_number" binding:"required,min=1"`
	Shape       models.TableShape `json:"shape" binding:"required,oneof=square circle long"`
	XPercent    float64           `json:"x_percent" binding:"min=0,max=100"`
	YPercent    float64           `json:"y_percent" binding:"min=0,max=100"`
}

// getLayout returns the persisted layout plus the per-table classification
// summaries the heatmap colors tables with
func getLayout(c *gin.Context) {
	venueID := c.GetUint("venue_id")

	var positions []models.TablePosition
	if err := database.DB.
		Where("venue_id = ?", venueID).
		Order("table_number ASC").
		Find(&positions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch layout"})
		return
	}

	summaries, err := tableSummaries(venueID, c.DefaultQuery("days", "7"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch table summaries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"positions": positions,
		"summaries": summaries,
	})
}

// saveLayout replaces the venue's layout with the submitted list in one
// batch: positions are upserted on (venue_id, table_number) and tables
// missing from the list are removed. Re-sending an unchanged layout is a
// no-op upsert. Two editors saving concurrently resolve as last write wins.
func saveLayout(c *gin.Context) {
	venueID := c.GetUint("venue_id")

	var req struct {
		Positions []layoutPositionInput `json:"positions" binding:"dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid layout data", "details": err.Error()})
		return
	}

	rows := make([]models.TablePosition, 0, len(req.Positions))
	tableNumbers := make([]int, 0, len(req.Positions))
	for _, p := range req.Positions {
		rows = append(rows, models.TablePosition{
			VenueID:     venueID,
			TableNumber: p.TableNumber,
			Shape:       p.Shape,
			XPercent:    p.XPercent,
			YPercent:    p.YPercent,
		})
		tableNumbers = append(tableNumbers, p.TableNumber)
	}

	tx := database.DB.Begin()

	// Drop tables the editor removed
	del := tx.Where("venue_id = ?", venueID)
	if len(tableNumbers) > 0 {
		del = del.Where("table_number NOT IN ?", tableNumbers)
	}
	if err := del.Delete(&models.TablePosition{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save layout"})
		return
	}

	if len(rows) > 0 {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "venue_id"}, {Name: "table_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"shape", "x_percent", "y_percent", "updated_at"}),
		}).Create(&rows).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save layout"})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save layout"})
		return
	}

	// Summaries are keyed by table number, which the save may have changed,
	// so they are refetched alongside the confirmed layout
	var saved []models.TablePosition
	if err := database.DB.
		Where("venue_id = ?", venueID).
		Order("table_number ASC").
		Find(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Layout saved but failed to reload"})
		return
	}

	summaries, err := tableSummaries(venueID, "7")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Layout saved but failed to load summaries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Layout saved",
		"positions": saved,
		"summaries": summaries,
	})
}

// clearLayout removes every table position for the venue
func clearLayout(c *gin.Context) {
	venueID := c.GetUint("venue_id")

	if err := database.DB.
		Where("venue_id = ?", venueID).
		Delete(&models.TablePosition{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear layout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Layout cleared"})
}

// tableSummaries aggregates recent feedback per table number
func tableSummaries(venueID uint, daysParam string) ([]models.TableSummary, error) {
	days, _ := strconv.Atoi(daysParam)
	if days < 1 || days > 90 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	var rows []models.Feedback
	if err := database.DB.
		Where("venue_id = ? AND table_number IS NOT NULL AND created_at >= ?", venueID, since).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	type acc struct {
		sum        int
		rated      int
		count      int
		unresolved int
		alert      bool
	}
	byTable := make(map[int]*acc)
	var order []int

	for _, row := range rows {
		n := *row.TableNumber
		a, ok := byTable[n]
		if !ok {
			a = &acc{}
			byTable[n] = a
			order = append(order, n)
		}
		a.count++
		if row.Rating != nil {
			a.sum += *row.Rating
			a.rated++
		}
		if !row.IsActioned {
			a.unresolved++
			if row.Rating != nil && *row.Rating <= 2 {
				a.alert = true
			}
		}
	}

	summaries := make([]models.TableSummary, 0, len(order))
	for _, n := range order {
		a := byTable[n]
		s := models.TableSummary{
			TableNumber:     n,
			FeedbackCount:   a.count,
			UnresolvedCount: a.unresolved,
			HasAlert:        a.alert,
		}
		if a.rated > 0 {
			avg := float64(a.sum) / float64(a.rated)
			s.AverageRating = &avg
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}
