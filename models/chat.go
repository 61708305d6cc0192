package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Message kinds. Exactly two legal values; kind is set at creation and
// never changes.
const (
	KindUser = "user"
	KindBot  = "bot"
)

// Chat is a single persisted chat message. Records are append-only: the
// core never updates or deletes them. UserID is nil for bot messages and
// for anonymous user messages.
type Chat struct {
	gorm.Model
	UserID    *uint             `gorm:"index" json:"user_id"`
	User      *User             `json:"user,omitempty"`
	SessionID string            `gorm:"size:64;not null;index" json:"session_id"`
	Message   string            `gorm:"type:text;not null" json:"message"`
	Kind      string            `gorm:"size:10;not null;index" json:"kind"`
	Metadata  datatypes.JSONMap `json:"metadata"`
}

func (c *Chat) IsUserMessage() bool { return c.Kind == KindUser }
func (c *Chat) IsBotMessage() bool  { return c.Kind == KindBot }
