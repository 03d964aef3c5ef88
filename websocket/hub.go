package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Message types pushed to subscribers.
const (
	ServiceCreated = "service_created"
	RequestCreated = "request_created"
)

// Message is one event on the postings feed.
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub fans new postings out to every connected client.
type Hub struct {
	clients map[*Client]bool

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu sync.RWMutex
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Message, 100),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run is the hub's main loop. It returns, closing every client, when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("🔌 Postings client connected (%s)", client.conn.RemoteAddr())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("🔌 Postings client disconnected (%s)", client.conn.RemoteAddr())

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Publish queues an event for broadcast. When the queue is full the event is
// dropped rather than blocking the caller.
func (h *Hub) Publish(msgType string, data interface{}) {
	message := &Message{Type: msgType, Data: data, Timestamp: time.Now().UTC()}
	select {
	case h.broadcast <- message:
	default:
		log.Printf("⚠️ Postings broadcast queue is full, dropping %s", msgType)
	}
}

// ClientCount reports how many clients are currently subscribed.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("❌ Error marshaling message: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Slow consumer; drop it instead of stalling everyone else.
			close(client.send)
			delete(h.clients, client)
		}
	}
}
