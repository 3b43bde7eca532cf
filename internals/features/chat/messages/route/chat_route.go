package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatController "staffhub_backend/internals/features/chat/messages/controller"
	"staffhub_backend/internals/features/chat/messages/service"
)

// ChatRoutes memasang REST chat + feed websocket pada router ber-auth.
func ChatRoutes(router fiber.Router, db *gorm.DB, hub *service.Hub) {
	ctrl := chatController.NewGroupMessageController(db, hub)

	chat := router.Group("/chat")
	chat.Get("/messages", ctrl.ListMessages)
	chat.Post("/messages", ctrl.SendMessage)
	chat.Delete("/messages/:id", ctrl.DeleteMessage)

	chat.Use("/ws", chatController.RequireWebSocketUpgrade)
	chat.Get("/ws", chatController.ChatFeedHandler(hub))
}
