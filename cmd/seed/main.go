// Command seed fills the database with demo users and chat sessions so the
// dashboard has something to show on a fresh install.
package main

import (
	"fmt"
	"log"
	"time"

	"EchoChat/models"
	"EchoChat/pkg/config"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type turn struct {
	user string
	bot  string
}

var demoConversations = [][]turn{
	{
		{
			user: "Hello! How are you today?",
			bot:  "Hello! 👋 I'm doing great, thanks for asking! I'm here and ready to help with whatever you need. How are you doing today?",
		},
		{
			user: "Tell me a funny programming joke!",
			bot:  "Why don't programmers like nature? Because it has too many bugs! 🐛😄",
		},
		{
			user: "That's hilarious! Can you help me with cooking pasta?",
			bot:  "Absolutely! 👨‍🍳 Bring salted water to a boil, cook 8-12 minutes, taste for al dente, then drain. Save some pasta water for the sauce!",
		},
	},
	{
		{
			user: "What can you help me with?",
			bot:  "I'm here to help! 🤖 I can answer questions, provide explanations, help with problem-solving, engage in conversations, and much more.",
		},
		{
			user: "Explain quantum physics in simple terms",
			bot:  "Great question! 🔬 Quantum physics is the rulebook for the tiniest particles: they can be in several states at once until observed, like a coin still spinning in the air.",
		},
	},
}

var anonymousConversation = []turn{
	{
		user: "Hi there!",
		bot:  "Hello! 😊 Welcome! How can I help you today?",
	},
	{
		user: "What's the weather like?",
		bot:  "I don't have access to real-time weather data, but I'd recommend checking your local weather service or a weather app for current conditions! ☀️🌧️ Is there anything else I can help you with?",
	},
}

func openDB() (*gorm.DB, error) {
	if config.DBDsn != "" {
		return gorm.Open(mysql.Open(config.DBDsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open("app.db"), &gorm.Config{})
}

func seedExchange(db *gorm.DB, userID *uint, sessionID string, tr turn, at time.Time, meta datatypes.JSONMap) error {
	userMsg := models.Chat{
		UserID:    userID,
		SessionID: sessionID,
		Message:   tr.user,
		Kind:      models.KindUser,
		Metadata:  meta,
	}
	userMsg.CreatedAt = at
	if err := db.Create(&userMsg).Error; err != nil {
		return err
	}

	botMsg := models.Chat{
		SessionID: sessionID,
		Message:   tr.bot,
		Kind:      models.KindBot,
		Metadata:  meta,
	}
	botMsg.CreatedAt = at.Add(30 * time.Second)
	return db.Create(&botMsg).Error
}

func main() {
	db, err := openDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Chat{}); err != nil {
		log.Fatalf("failed migrate: %v", err)
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		log.Fatalf("count users: %v", err)
	}

	var users []models.User
	if userCount == 0 {
		for i := 1; i <= 3; i++ {
			u := models.User{
				Email:    fmt.Sprintf("demo%d@example.com", i),
				Username: fmt.Sprintf("demo%d", i),
			}
			if err := u.SetPassword(fmt.Sprintf("demo-pass-%d", i)); err != nil {
				log.Fatalf("set password: %v", err)
			}
			if err := db.Create(&u).Error; err != nil {
				log.Fatalf("create user: %v", err)
			}
			users = append(users, u)
		}
	} else if err := db.Limit(3).Find(&users).Error; err != nil {
		log.Fatalf("load users: %v", err)
	}

	now := time.Now()
	for _, u := range users {
		for ci, conv := range demoConversations {
			sessionID := uuid.NewString()
			meta := datatypes.JSONMap{
				"ip_address":    "127.0.0.1",
				"user_agent":    "seed-script",
				"session_start": now.Add(-time.Duration(2+ci) * time.Hour).UTC().Format(time.RFC3339),
			}
			for ti, tr := range conv {
				at := now.Add(-time.Duration(2+ci)*time.Hour + time.Duration(ti*5)*time.Minute)
				if err := seedExchange(db, &u.ID, sessionID, tr, at, meta); err != nil {
					log.Fatalf("seed exchange: %v", err)
				}
			}
		}
	}

	// a handful of anonymous sessions spread over the last week
	for i := 0; i < 5; i++ {
		sessionID := uuid.NewString()
		start := now.Add(-time.Duration(i+1) * 24 * time.Hour)
		meta := datatypes.JSONMap{
			"ip_address":    fmt.Sprintf("203.0.113.%d", 10+i),
			"user_agent":    "seed-script",
			"session_start": start.UTC().Format(time.RFC3339),
		}
		for ti, tr := range anonymousConversation {
			if err := seedExchange(db, nil, sessionID, tr, start.Add(time.Duration(ti*2)*time.Minute), meta); err != nil {
				log.Fatalf("seed anonymous exchange: %v", err)
			}
		}
	}

	log.Printf("[seed] done: %d users, %d scripted sessions each, 5 anonymous sessions",
		len(users), len(demoConversations))
}
