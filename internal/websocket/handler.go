package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches one websocket connection to the hub as a watcher of
// the given session.
func ServeWs(hub *Hub, c *websocket.Conn, sessionId string) {
	client := &Client{Hub: hub, Conn: c, SessionId: sessionId, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}

// UpgradeHandler returns the Fiber handler for GET /ws/:sessionId.
func UpgradeHandler(hub *Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionId := c.Params("sessionId")
		if sessionId == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing session id"})
		}

		if websocket.IsWebSocketUpgrade(c) {
			return websocket.New(func(conn *websocket.Conn) {
				hub.logger.Info("Hub", "Starting WebSocket session", map[string]interface{}{"session_id": sessionId})
				ServeWs(hub, conn, sessionId)
				hub.logger.Info("Hub", "WebSocket session ended", map[string]interface{}{"session_id": sessionId})
			})(c)
		}
		return fiber.ErrUpgradeRequired
	}
}
