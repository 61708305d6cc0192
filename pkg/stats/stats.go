package stats

import (
	"sort"
	"strings"
	"time"

	"EchoChat/models"

	"gorm.io/gorm"
)

// topicKeywords is the fixed table used for the dashboard topic counts.
// It is intentionally smaller than the responder's category table and the
// two are kept separate; the source system treats them as independent.
// Unlike generation, a single message may count toward several topics.
var topicKeywords = []struct {
	name string
	a, b string
}{
	{"humor", "joke", "funny"},
	{"cooking", "cook", "recipe"},
	{"assistance", "help", "assist"},
	{"weather", "weather", "temperature"},
	{"technology", "technology", "computer"},
}

// TopicCount is one topic with how many of the account's messages
// mentioned it.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// RecentChat is one dashboard entry for a recently stored message. The
// record is flattened here so the JSON stays snake_case like the rest of
// the API instead of leaking gorm.Model's embedded fields.
type RecentChat struct {
	ID        uint      `json:"id"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	Username  *string   `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStats is the per-account dashboard block.
type UserStats struct {
	TotalConversations int64        `json:"total_conversations"`
	TotalMessages      int64        `json:"total_messages"`
	RecentChats        []RecentChat `json:"recent_chats"`
	PopularTopics      []TopicCount `json:"popular_topics"`
}

// GlobalStats is the platform-wide dashboard block.
type GlobalStats struct {
	TotalUsersChatting int64 `json:"total_users_chatting"`
	TotalMessagesToday int64 `json:"total_messages_today"`
	ActiveSessions     int64 `json:"active_sessions"`
}

// TopicCounts scans every user-authored message belonging to the account
// (across all sessions) and returns the top 5 topics by count, descending.
// Topics with zero mentions are omitted. Order among equal counts follows
// the topic table and is not part of the contract.
func TopicCounts(db *gorm.DB, userID uint) ([]TopicCount, error) {
	var texts []string
	err := db.Model(&models.Chat{}).
		Where("user_id = ? AND kind = ?", userID, models.KindUser).
		Pluck("message", &texts).Error
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, text := range texts {
		msg := strings.ToLower(text)
		for _, t := range topicKeywords {
			if strings.Contains(msg, t.a) || strings.Contains(msg, t.b) {
				counts[t.name]++
			}
		}
	}

	result := make([]TopicCount, 0, len(counts))
	for _, t := range topicKeywords {
		if n := counts[t.name]; n > 0 {
			result = append(result, TopicCount{Topic: t.name, Count: n})
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Count > result[j].Count })
	if len(result) > 5 {
		result = result[:5]
	}
	return result, nil
}

// ForUser computes the per-account dashboard block.
func ForUser(db *gorm.DB, userID uint) (*UserStats, error) {
	s := &UserStats{RecentChats: []RecentChat{}}

	err := db.Model(&models.Chat{}).
		Where("user_id = ?", userID).
		Distinct("session_id").
		Count(&s.TotalConversations).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Chat{}).
		Where("user_id = ? AND kind = ?", userID, models.KindUser).
		Count(&s.TotalMessages).Error
	if err != nil {
		return nil, err
	}

	var recent []models.Chat
	err = db.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(5).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}
	for _, m := range recent {
		rc := RecentChat{
			ID:        m.ID,
			SessionID: m.SessionID,
			Message:   m.Message,
			Kind:      m.Kind,
			CreatedAt: m.CreatedAt,
		}
		if m.User != nil {
			name := m.User.Username
			rc.Username = &name
		}
		s.RecentChats = append(s.RecentChats, rc)
	}

	s.PopularTopics, err = TopicCounts(db, userID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Global computes the platform-wide dashboard block. Reads are unlocked
// and may lag in-flight writes; the dashboard tolerates stale values.
func Global(db *gorm.DB) (*GlobalStats, error) {
	s := &GlobalStats{}

	err := db.Model(&models.Chat{}).
		Where("user_id IS NOT NULL").
		Distinct("user_id").
		Count(&s.TotalUsersChatting).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	err = db.Model(&models.Chat{}).
		Where("created_at >= ?", dayStart).
		Count(&s.TotalMessagesToday).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Chat{}).
		Where("created_at >= ?", now.Add(-24*time.Hour)).
		Distinct("session_id").
		Count(&s.ActiveSessions).Error
	if err != nil {
		return nil, err
	}
	return s, nil
}
