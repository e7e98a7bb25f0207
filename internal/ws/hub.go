// Package ws pushes notifications to connected clients over
// websockets. Each connection is keyed by the authenticated user, so
// a notification reaches every open tab of its owner and nobody else.
package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	direct     chan directMessage
	mutex      sync.RWMutex
	logger     *log.Logger
}

type directMessage struct {
	userID  uuid.UUID
	payload []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		direct:     make(chan directMessage, 1024),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			conns := h.clients[client.userID]
			if conns == nil {
				conns = make(map[*Client]bool)
				h.clients[client.userID] = conns
			}
			conns[client] = true
			total := h.totalLocked()
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | user=%s total_clients=%d", client.userID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if conns, ok := h.clients[client.userID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.clients, client.userID)
					}
				}
			}
			total := h.totalLocked()
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | user=%s total_clients=%d", client.userID, total)
			}

		case msg := <-h.direct:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients[msg.userID]))
			for c := range h.clients[msg.userID] {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- msg.payload:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Send queues a payload for every open connection of the user.
// Dropped silently when the buffer is full; websocket delivery is
// best effort on top of the stored notification.
func (h *Hub) Send(userID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.direct <- directMessage{userID: userID, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS send dropped | user=%s reason=buffer_full", userID)
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.totalLocked()
}

func (h *Hub) totalLocked() int {
	n := 0
	for _, conns := range h.clients {
		n += len(conns)
	}
	return n
}
