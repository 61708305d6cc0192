package main

import (
	"log"
	"time"

	"EchoChat/models"
	"EchoChat/pkg/cache"
	"EchoChat/pkg/config"
	"EchoChat/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openDB() (*gorm.DB, error) {
	if config.DBDsn != "" {
		return gorm.Open(mysql.Open(config.DBDsn), &gorm.Config{})
	}
	// dev fallback: sqlite file next to the binary
	return gorm.Open(sqlite.Open("app.db"), &gorm.Config{})
}

func main() {
	// config loads via package init()

	db, err := openDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Chat{}); err != nil {
		log.Fatalf("failed migrate: %v", err)
	}

	cache.SetMaxItems(config.StatsCacheMaxItems)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db)
	r.Run(":" + config.Port)
}
