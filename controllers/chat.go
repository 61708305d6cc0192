package controllers

import (
	"net/http"
	"time"

	"EchoChat/middleware"
	"EchoChat/models"
	"EchoChat/pkg/cache"
	"EchoChat/pkg/chat"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type submitPayload struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required,max=2000"`
}

// requestMetadata snapshots caller context once per exchange. Both stored
// records get the same bag; nothing downstream interprets it.
func requestMetadata(c *gin.Context) map[string]interface{} {
	return map[string]interface{}{
		"ip_address":    c.ClientIP(),
		"user_agent":    c.Request.UserAgent(),
		"session_start": time.Now().UTC().Format(time.RFC3339),
	}
}

func messagePayload(m models.Chat) gin.H {
	var username interface{}
	if m.User != nil {
		username = m.User.Username
	}
	return gin.H{
		"id":         m.ID,
		"session_id": m.SessionID,
		"message":    m.Message,
		"kind":       m.Kind,
		"username":   username,
		"metadata":   m.Metadata,
		"created_at": m.CreatedAt,
	}
}

func historyPayload(msgs []models.Chat) []gin.H {
	out := make([]gin.H, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messagePayload(m))
	}
	return out
}

// SubmitMessage stores the user message, generates the bot reply, stores
// it, and returns the pair plus the refreshed session history.
func SubmitMessage(db *gorm.DB) gin.HandlerFunc {
	svc := chat.NewService(db)
	return func(c *gin.Context) {
		var body submitPayload
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "message (1-2000 chars) and session_id are required"})
			return
		}

		userID := middleware.CurrentUserID(c)
		ex, err := svc.Process(userID, body.SessionID, body.Message, requestMetadata(c))
		if err != nil {
			if chat.IsValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to store exchange"})
			return
		}

		// dashboard numbers changed; drop stale cached blocks
		if userID != nil {
			cache.Default().InvalidateUserStats(*userID)
		}
		cache.Default().InvalidateGlobalStats()

		history, err := svc.History(body.SessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to load history"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"session_id":   body.SessionID,
			"user_message": messagePayload(ex.UserMessage),
			"bot_message":  messagePayload(ex.BotMessage),
			"chat_history": historyPayload(history),
		})
	}
}

// GetChat returns session history via the ?session_id= query parameter.
// No session id means a fresh chat: empty history, no error.
func GetChat(db *gorm.DB) gin.HandlerFunc {
	svc := chat.NewService(db)
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		history := []models.Chat{}
		if sessionID != "" {
			var err error
			history, err = svc.History(sessionID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to load history"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"session_id":   sessionID,
			"chat_history": historyPayload(history),
		})
	}
}

// ShowSession returns the ordered history for a session path parameter.
// Unknown sessions yield an empty list.
func ShowSession(db *gorm.DB) gin.HandlerFunc {
	svc := chat.NewService(db)
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")
		history, err := svc.History(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to load history"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"session_id":   sessionID,
			"chat_history": historyPayload(history),
		})
	}
}
