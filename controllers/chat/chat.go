package chatControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/middleware"
	"github.com/rakshit9/WDM-ecom/models"
)

type SendMessageInput struct {
	ReceiverID uint   `json:"receiverId" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// POST /api/chat/send
// Persists the message, then broadcasts it to connected websocket clients.
func SendMessage(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		senderID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input SendMessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "receiverId and message are required"})
			return
		}

		var receiver models.User
		if err := db.First(&receiver, input.ReceiverID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receiver not found"})
			return
		}

		msg := models.ChatMessage{
			SenderID:   senderID,
			ReceiverID: input.ReceiverID,
			Message:    input.Message,
			Timestamp:  time.Now().UTC(),
		}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
			return
		}

		if hub != nil {
			hub.Broadcast(msg)
		}
		c.JSON(http.StatusCreated, msg)
	}
}

// GET /api/chat/messages/:user1/:user2
// Full thread between two users, oldest first. Callable only by a
// participant or an admin.
func GetMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user1, err1 := strconv.ParseUint(c.Param("user1"), 10, 64)
		user2, err2 := strconv.ParseUint(c.Param("user2"), 10, 64)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		if uint(user1) != callerID && uint(user2) != callerID && !middleware.IsAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		var messages []models.ChatMessage
		err := db.Where(
			"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			user1, user2, user2, user1,
		).Order("timestamp asc, chat_id asc").Find(&messages).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totalMessages": len(messages),
			"messages":      messages,
		})
	}
}

// GET /api/chat/conversations
// Lists the users the caller has exchanged messages with.
func GetConversations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var peerIDs []uint
		err := db.Raw(
			`SELECT DISTINCT CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END
			 FROM chat_messages WHERE sender_id = ? OR receiver_id = ?`,
			userID, userID, userID,
		).Scan(&peerIDs).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
			return
		}

		var users []models.User
		if len(peerIDs) > 0 {
			if err := db.Where("user_id IN ?", peerIDs).Find(&users).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"totalConversations": len(users),
			"users":              users,
		})
	}
}
