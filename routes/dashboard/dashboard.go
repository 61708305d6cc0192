package dashboard

import (
	"EchoChat/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register registers the dashboard route (protected)
func Register(g *gin.RouterGroup, db *gorm.DB) {
	g.GET("/dashboard", controllers.Dashboard(db))
}
