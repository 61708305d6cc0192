package routes

import (
	"net/http"
	"time"

	"EchoChat/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authRoutes "EchoChat/routes/auth"
	chatRoutes "EchoChat/routes/chat"
	dashboardRoutes "EchoChat/routes/dashboard"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "EchoChat backend running"})
	})
	r.GET("/health-check", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	authRoutes.RegisterPublic(r, db)

	// chat works for anonymous and authenticated callers alike
	open := r.Group("/")
	open.Use(middleware.OptionalAuth())
	chatRoutes.Register(open, db)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	authRoutes.RegisterProtected(protected, db)
	dashboardRoutes.Register(protected, db)
}
