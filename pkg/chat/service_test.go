package chat

import (
	"errors"
	"strings"
	"testing"

	"EchoChat/models"
	"EchoChat/pkg/responder"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Chat{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func countChats(t *testing.T, db *gorm.DB, sessionID string) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Chat{}).Where("session_id = ?", sessionID).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestProcessCreatesExchange(t *testing.T) {
	db := testDB(t)
	svc := NewService(db)

	ex, err := svc.Process(nil, "s1", "Hello there", map[string]interface{}{
		"ip_address": "127.0.0.1",
		"user_agent": "test-agent",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if n := countChats(t, db, "s1"); n != 2 {
		t.Fatalf("expected 2 records, got %d", n)
	}
	if ex.UserMessage.Kind != models.KindUser {
		t.Errorf("user record kind = %q", ex.UserMessage.Kind)
	}
	if ex.BotMessage.Kind != models.KindBot {
		t.Errorf("bot record kind = %q", ex.BotMessage.Kind)
	}
	if ex.UserMessage.SessionID != "s1" || ex.BotMessage.SessionID != "s1" {
		t.Errorf("records do not share session id")
	}
	if ex.BotMessage.CreatedAt.Before(ex.UserMessage.CreatedAt) {
		t.Errorf("bot created_at precedes user created_at")
	}
	if ex.BotMessage.UserID != nil {
		t.Errorf("bot record carries a user id")
	}
	if ex.UserMessage.Metadata["ip_address"] != "127.0.0.1" {
		t.Errorf("metadata not stored on user record: %v", ex.UserMessage.Metadata)
	}
	if ex.BotMessage.Metadata["user_agent"] != "test-agent" {
		t.Errorf("metadata snapshot not shared with bot record: %v", ex.BotMessage.Metadata)
	}
}

func TestProcessLinksAuthenticatedUser(t *testing.T) {
	db := testDB(t)
	user := models.User{Email: "ana@example.com", Username: "ana"}
	if err := user.SetPassword("secret1"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	svc := NewService(db)
	ex, err := svc.Process(&user.ID, "s-auth", "hello", nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if ex.UserMessage.UserID == nil || *ex.UserMessage.UserID != user.ID {
		t.Errorf("user message not linked to account")
	}
	if ex.UserMessage.User == nil || ex.UserMessage.User.Username != "ana" {
		t.Errorf("returned user message missing author identity: %+v", ex.UserMessage.User)
	}
	if ex.BotMessage.UserID != nil {
		t.Errorf("bot message must stay anonymous")
	}
}

func TestProcessUnlinkedAccountTolerated(t *testing.T) {
	db := testDB(t)
	user := models.User{Email: "gone@example.com", Username: "gone"}
	if err := user.SetPassword("secret1"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := db.Delete(&user).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	// the account no longer resolves; the exchange still succeeds with
	// anonymous authorship
	svc := NewService(db)
	ex, err := svc.Process(&user.ID, "s-ghost", "hello", nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if ex.UserMessage.User != nil {
		t.Errorf("unlinked account should have no author identity")
	}
	if n := countChats(t, db, "s-ghost"); n != 2 {
		t.Errorf("expected 2 records, got %d", n)
	}
}

func TestProcessJokeReply(t *testing.T) {
	db := testDB(t)
	svc := NewService(db)

	ex, err := svc.Process(nil, "s1", "Tell me a joke", nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	jokes := responder.ResponsesFor("joke")
	found := false
	for _, j := range jokes {
		if ex.BotMessage.Message == j {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("bot reply %q not in joke pool", ex.BotMessage.Message)
	}
}

func TestProcessPinnedResponder(t *testing.T) {
	db := testDB(t)
	bot := responder.NewWithIntn(func(n int) int { return 0 })
	svc := NewServiceWithResponder(db, bot)

	ex, err := svc.Process(nil, "s1", "thanks a lot", nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	want := responder.ResponsesFor("gratitude")[0]
	if ex.BotMessage.Message != want {
		t.Errorf("pinned responder reply = %q, want %q", ex.BotMessage.Message, want)
	}
}

func TestProcessValidation(t *testing.T) {
	db := testDB(t)
	svc := NewService(db)

	t.Run("empty message", func(t *testing.T) {
		_, err := svc.Process(nil, "s1", "", nil)
		if !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
		if n := countChats(t, db, "s1"); n != 0 {
			t.Errorf("expected no writes on validation failure, got %d", n)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := svc.Process(nil, "", "hello", nil)
		if !errors.Is(err, ErrMissingSession) {
			t.Fatalf("expected ErrMissingSession, got %v", err)
		}
	})

	t.Run("2000 chars accepted", func(t *testing.T) {
		_, err := svc.Process(nil, "s-max", strings.Repeat("a", 2000), nil)
		if err != nil {
			t.Fatalf("2000-char message rejected: %v", err)
		}
		if n := countChats(t, db, "s-max"); n != 2 {
			t.Errorf("expected 2 records, got %d", n)
		}
	})

	t.Run("2001 chars rejected", func(t *testing.T) {
		_, err := svc.Process(nil, "s-over", strings.Repeat("a", 2001), nil)
		if !errors.Is(err, ErrMessageTooLong) {
			t.Fatalf("expected ErrMessageTooLong, got %v", err)
		}
		if n := countChats(t, db, "s-over"); n != 0 {
			t.Errorf("expected no writes, got %d", n)
		}
	})
}

func TestIsValidationError(t *testing.T) {
	for _, err := range []error{ErrMissingSession, ErrEmptyMessage, ErrMessageTooLong} {
		if !IsValidationError(err) {
			t.Errorf("%v not recognized as validation error", err)
		}
	}
	if IsValidationError(errors.New("disk full")) {
		t.Errorf("storage error misclassified as validation")
	}
}

func TestHistoryOrderingAndIdempotence(t *testing.T) {
	db := testDB(t)
	svc := NewService(db)

	for _, text := range []string{"first question", "second question", "third question"} {
		if _, err := svc.Process(nil, "s-hist", text, nil); err != nil {
			t.Fatalf("Process: %v", err)
		}
	}

	msgs, err := svc.History("s-hist")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(msgs) != 6 {
		t.Fatalf("expected 6 messages, got %d", len(msgs))
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt) {
			t.Errorf("messages out of order at %d", i)
		}
		if msgs[i].CreatedAt.Equal(msgs[i-1].CreatedAt) && msgs[i].ID < msgs[i-1].ID {
			t.Errorf("tie-break by id violated at %d", i)
		}
	}
	// user and bot alternate, user first
	for i, m := range msgs {
		want := models.KindUser
		if i%2 == 1 {
			want = models.KindBot
		}
		if m.Kind != want {
			t.Errorf("message %d kind = %q, want %q", i, m.Kind, want)
		}
	}

	again, err := svc.History("s-hist")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(again) != len(msgs) {
		t.Fatalf("repeated read changed length: %d vs %d", len(again), len(msgs))
	}
	for i := range msgs {
		if again[i].ID != msgs[i].ID || again[i].Message != msgs[i].Message {
			t.Errorf("repeated read differs at %d", i)
		}
	}
}

func TestHistoryUnknownSessionIsEmpty(t *testing.T) {
	db := testDB(t)
	svc := NewService(db)

	msgs, err := svc.History("never-seen")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected empty history, got %d messages", len(msgs))
	}
}

func TestHistoryPreloadsAuthor(t *testing.T) {
	db := testDB(t)
	user := models.User{Email: "bo@example.com", Username: "bo"}
	if err := user.SetPassword("secret1"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	svc := NewService(db)
	if _, err := svc.Process(&user.ID, "s-id", "hello", nil); err != nil {
		t.Fatalf("Process: %v", err)
	}

	msgs, err := svc.History("s-id")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].User == nil || msgs[0].User.Username != "bo" {
		t.Errorf("author identity not attached to user message")
	}
	if msgs[1].User != nil {
		t.Errorf("bot message should have no author")
	}
}
