package ws

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	logger *log.Logger
}

func NewHandler(hub *Hub, logger *log.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleNotificationsWS upgrades the connection for the authenticated
// user. The auth middleware must run first; the user id is captured
// before the upgrade because fiber locals do not survive the adaptor.
func (h *Handler) HandleNotificationsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	userID, ok := c.Locals("user_id").(uuid.UUID)
	if !ok {
		return fiber.ErrUnauthorized
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | error=%v", err)
			}
			return
		}

		client := NewClient(h.hub, conn, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
