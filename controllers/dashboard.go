package controllers

import (
	"net/http"
	"time"

	"EchoChat/middleware"
	"EchoChat/pkg/cache"
	"EchoChat/pkg/config"
	"EchoChat/pkg/stats"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dashboard returns the per-account and platform-wide statistic blocks.
// Both are cached; readers may see values slightly behind in-flight
// writes, which the dashboard tolerates.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.CurrentUserID(c)
		if userID == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "authentication required"})
			return
		}

		ttl := time.Duration(config.StatsCacheTTLSeconds) * time.Second
		ch := cache.Default()

		var userStats *stats.UserStats
		if v, ok := ch.GetUserStats(*userID); ok {
			userStats, _ = v.(*stats.UserStats)
		}
		if userStats == nil {
			var err error
			userStats, err = stats.ForUser(db, *userID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to compute user stats"})
				return
			}
			ch.SetUserStats(*userID, userStats, ttl)
		}

		var globalStats *stats.GlobalStats
		if v, ok := ch.GetGlobalStats(); ok {
			globalStats, _ = v.(*stats.GlobalStats)
		}
		if globalStats == nil {
			var err error
			globalStats, err = stats.Global(db)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to compute global stats"})
				return
			}
			ch.SetGlobalStats(globalStats, ttl)
		}

		c.JSON(http.StatusOK, gin.H{
			"user_stats":   userStats,
			"global_stats": globalStats,
		})
	}
}
