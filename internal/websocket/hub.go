package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"hadith-voice-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub fans transcript and agent-state events out to the browser clients
// watching each room.
type Hub struct {
	// Registered clients map: room name -> list of clients (multi-tab)
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out (optional)
	rdb *redis.Client

	// instanceId filters out our own Redis echoes
	instanceId string

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		instanceId: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Room] = append(h.clients[client.Room], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"room": client.Room})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.Room]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.Room] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.Room]) == 0 {
					delete(h.clients, client.Room)
					h.logger.Info("Hub", "Room has no more clients", map[string]interface{}{"room": client.Room})
				}
			}
			h.mu.Unlock()
		}
	}
}

// SendToRoom delivers an event to every client watching a room, on this
// instance and (via Redis) on any other.
func (h *Hub) SendToRoom(room string, eventType string, payload interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": payload,
	})

	h.mu.RLock()
	clients, localFound := h.clients[room]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"room": room})
			}
		}
	}

	if h.rdb != nil {
		envelope := map[string]interface{}{
			"origin":      h.instanceId,
			"target_room": room,
			"message":     data,
		}
		jsonEnvelope, _ := json.Marshal(envelope)
		h.rdb.Publish(context.Background(), "room_events", jsonEnvelope)
	}
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to "room_events"; on message, deliver to
	// any locally connected clients for that room.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "room_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var envelope struct {
			Origin     string          `json:"origin"`
			TargetRoom string          `json:"target_room"`
			Message    json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}
		if envelope.Origin == h.instanceId {
			continue // already delivered locally
		}

		h.mu.RLock()
		clients := h.clients[envelope.TargetRoom]
		h.mu.RUnlock()

		for _, client := range clients {
			select {
			case client.Send <- envelope.Message:
			default:
			}
		}
	}
}
