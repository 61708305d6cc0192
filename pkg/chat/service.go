package chat

import (
	"strings"
	"time"
	"unicode/utf8"

	"EchoChat/models"
	"EchoChat/pkg/responder"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaxMessageLength is the cap on user-authored message length, counted in
// characters. Generated replies are not length-limited.
const MaxMessageLength = 2000

// Exchange is one user message plus the bot reply it produced.
type Exchange struct {
	UserMessage models.Chat `json:"user_message"`
	BotMessage  models.Chat `json:"bot_message"`
}

// Service orchestrates one chat exchange: persist the user message, run
// the responder on the raw text, persist the reply.
type Service struct {
	db  *gorm.DB
	bot *responder.Responder
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, bot: responder.New()}
}

// NewServiceWithResponder lets tests supply a responder with pinned
// randomness.
func NewServiceWithResponder(db *gorm.DB, bot *responder.Responder) *Service {
	return &Service{db: db, bot: bot}
}

// Validate checks the inbound payload without touching storage.
func Validate(sessionID, text string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrMissingSession
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// Process stores the user message, generates a reply, and stores that too.
// Both records share the same session id and the metadata snapshot taken
// at entry. userID is nil for anonymous callers; the bot record never
// carries a user id.
//
// The two writes are sequential and not wrapped in a transaction. If the
// bot write fails the user message stays stored; callers get the error and
// the partial state stands.
func (s *Service) Process(userID *uint, sessionID, text string, metadata map[string]interface{}) (*Exchange, error) {
	if err := Validate(sessionID, text); err != nil {
		return nil, err
	}

	meta := datatypes.JSONMap(metadata)

	userMsg := models.Chat{
		UserID:    userID,
		SessionID: sessionID,
		Message:   text,
		Kind:      models.KindUser,
		Metadata:  meta,
	}
	userMsg.CreatedAt = time.Now()
	if err := s.db.Create(&userMsg).Error; err != nil {
		return nil, err
	}

	// attach the author so the returned record carries the same display
	// identity History would; unlinked accounts are not an error
	if userID != nil {
		var author models.User
		if err := s.db.First(&author, *userID).Error; err == nil {
			userMsg.User = &author
		}
	}

	// The responder sees the raw text; it lowercases internally.
	reply := s.bot.Generate(text)

	botMsg := models.Chat{
		UserID:    nil,
		SessionID: sessionID,
		Message:   reply,
		Kind:      models.KindBot,
		Metadata:  meta,
	}
	// Keep creation order monotonic even under coarse clock resolution;
	// equal timestamps are tie-broken by the auto-increment id in History.
	botMsg.CreatedAt = time.Now()
	if botMsg.CreatedAt.Before(userMsg.CreatedAt) {
		botMsg.CreatedAt = userMsg.CreatedAt
	}
	if err := s.db.Create(&botMsg).Error; err != nil {
		return nil, err
	}

	return &Exchange{UserMessage: userMsg, BotMessage: botMsg}, nil
}

// History returns every message in a session in ascending creation order,
// with the author preloaded for display. An unknown session yields an
// empty slice, not an error.
func (s *Service) History(sessionID string) ([]models.Chat, error) {
	msgs := []models.Chat{}
	err := s.db.Preload("User").
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
