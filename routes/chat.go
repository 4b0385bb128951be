package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/config"
	chatControllers "github.com/rakshit9/WDM-ecom/controllers/chat"
	"github.com/rakshit9/WDM-ecom/middleware"
)

// SetupChatRoutes registers the chat REST endpoints and the websocket upgrade.
func SetupChatRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config, hub *chatControllers.Hub) {
	chat := api.Group("/chat")
	chat.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		chat.POST("/send", chatControllers.SendMessage(db, hub))
		chat.GET("/messages/:user1/:user2", chatControllers.GetMessages(db))
		chat.GET("/conversations", chatControllers.GetConversations(db))
	}

	// Websocket clients pass the token via query/header handling on the frontend;
	// the upgrade itself stays open so read-only dashboards can subscribe.
	api.GET("/chat/ws", hub.Handler())
}
