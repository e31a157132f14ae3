package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"venue-feedback-server/models"
)

// EventType mirrors the change kinds a database subscription would deliver.
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Event is one feedback change pushed to dashboard subscribers. Events are
// published after the database commit, from a single fan-out loop, so every
// subscriber of a venue observes them in commit order.
type Event struct {
	Type      EventType        `json:"type"`
	VenueID   uint             `json:"venue_id"`
	Row       *models.Feedback `json:"row,omitempty"`
	RowID     uint             `json:"row_id,omitempty"`
	SessionID *string          `json:"session_id,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// Hub manages all dashboard feed connections, grouped by venue
type Hub struct {
	// Venue members; only clients of the event's venue receive it
	venueClients map[uint]map[*Client]bool

	// Broadcast channel for feedback change events
	Broadcast chan *Event

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new feed hub
func NewHub() *Hub {
	return &Hub{
		venueClients: make(map[uint]map[*Client]bool),
		Broadcast:    make(chan *Event, 100),
		Register:     make(chan *Client),
		Unregister:   make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if h.venueClients[client.VenueID] == nil {
				h.venueClients[client.VenueID] = make(map[*Client]bool)
			}
			h.venueClients[client.VenueID][client] = true
			h.mu.Unlock()
			log.Printf("🔌 Feed client registered: user=%d venue=%d", client.UserID, client.VenueID)

		case client := <-h.Unregister:
			h.mu.Lock()
			if members, ok := h.venueClients[client.VenueID]; ok && members[client] {
				delete(members, client)
				close(client.Send)
				if len(members) == 0 {
					delete(h.venueClients, client.VenueID)
				}
			}
			h.mu.Unlock()
			log.Printf("🔌 Feed client unregistered: user=%d venue=%d", client.UserID, client.VenueID)

		case event := <-h.Broadcast:
			h.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends a feedback change to every client of its venue
func (h *Hub) broadcastEvent(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members := h.venueClients[event.VenueID]
	if len(members) == 0 {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Error marshaling feed event: %v", err)
		return
	}

	for client := range members {
		select {
		case client.Send <- data:
		default:
			// Slow consumer; drop it rather than stall the feed
			close(client.Send)
			delete(members, client)
		}
	}
}

// PublishInsert queues an insert event for a new feedback row
func (h *Hub) PublishInsert(row models.Feedback) {
	h.publish(&Event{
		Type:      EventInsert,
		VenueID:   row.VenueID,
		Row:       &row,
		Timestamp: time.Now(),
	})
}

// PublishUpdate queues an update event for a changed feedback row
func (h *Hub) PublishUpdate(row models.Feedback) {
	h.publish(&Event{
		Type:      EventUpdate,
		VenueID:   row.VenueID,
		Row:       &row,
		Timestamp: time.Now(),
	})
}

// PublishDelete queues a delete event carrying just the row identity
func (h *Hub) PublishDelete(venueID, rowID uint, sessionID *string) {
	h.publish(&Event{
		Type:      EventDelete,
		VenueID:   venueID,
		RowID:     rowID,
		SessionID: sessionID,
		Timestamp: time.Now(),
	})
}

func (h *Hub) publish(event *Event) {
	select {
	case h.Broadcast <- event:
	default:
		log.Printf("⚠️ Feed broadcast channel is full, dropping %s event for venue %d", event.Type, event.VenueID)
	}
}
