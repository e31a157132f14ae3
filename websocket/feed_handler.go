package websocket

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FeedHandler exposes the venue feedback feed over a Gin route
type FeedHandler struct {
	hub *Hub
}

// NewFeedHandler creates a feed handler bound to a hub
func NewFeedHandler(hub *Hub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

// HandleFeed upgrades an authenticated dashboard connection. AuthMiddleware
// must run first; it puts user_id and venue_id on the context.
func (h *FeedHandler) HandleFeed(c *gin.Context) {
	userID, userOK := c.Get("user_id")
	venueID, venueOK := c.Get("venue_id")
	if !userOK || !venueOK {
		log.Printf("❌ Unauthenticated feed connection attempt from %s", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ServeFeed(h.hub, c.Writer, c.Request, userID.(uint), venueID.(uint))
}
