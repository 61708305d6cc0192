package chat

import (
	"EchoChat/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register registers chat routes. They run behind OptionalAuth at the
// caller: anonymous sessions are first-class.
func Register(g *gin.RouterGroup, db *gorm.DB) {
	g.GET("/chat", controllers.GetChat(db))
	g.POST("/chat", controllers.SubmitMessage(db))
	g.GET("/chat/:session_id", controllers.ShowSession(db))
}
