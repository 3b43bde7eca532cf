package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"staffhub_backend/internals/features/chat/messages/service"
)

/* ===== WEBSOCKET FEED ===== */

// RequireWebSocketUpgrade menolak request non-WS sebelum upgrade.
func RequireWebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// ChatFeedHandler: feed read-only; pesan masuk lewat REST, koneksi WS
// hanya menerima broadcast. Unregister dijamin jalan saat koneksi tutup.
func ChatFeedHandler(hub *service.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		hub.Register(conn)
		defer func() {
			hub.Unregister(conn)
			conn.Close()
		}()

		for {
			// drain frame client (ping/pong dsb); error = koneksi tutup
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("[ERROR] Koneksi chat terputus: %v", err)
				}
				return
			}
		}
	})
}
