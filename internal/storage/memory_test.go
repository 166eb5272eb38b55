package storage

import (
	"context"
	"testing"
	"time"

	"github.com/xaenox/assist-bot/internal/models"
)

func TestMemoryStorageCreateUserIsUpsert(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	first := &models.User{ChatID: 1, FirstName: "Ada", Username: "ada"}
	if err := s.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := s.CreateUser(ctx, &models.User{ChatID: 1, FirstName: "Other"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if len(s.users) != 1 {
		t.Fatalf("users = %d, want 1", len(s.users))
	}
	user, err := s.GetUser(ctx, 1)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.FirstName != "Ada" {
		t.Errorf("first name = %q, want Ada (second insert must be a no-op)", user.FirstName)
	}
}

func TestMemoryStorageSetUserPhone(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	if err := s.CreateUser(ctx, &models.User{ChatID: 1, FirstName: "Ada"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := s.SetUserPhone(ctx, 1, "+1555"); err != nil {
		t.Fatalf("SetUserPhone: %v", err)
	}

	user, err := s.GetUser(ctx, 1)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.PhoneNumber != "+1555" {
		t.Errorf("phone = %q, want +1555", user.PhoneNumber)
	}
}

func TestMemoryStorageSetUserPhoneUnknownUser(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	if err := s.SetUserPhone(ctx, 404, "+1555"); err != nil {
		t.Fatalf("SetUserPhone on unknown user: %v", err)
	}
	if len(s.users) != 0 {
		t.Errorf("users = %d, want 0 (no insert on phone update)", len(s.users))
	}

	user, err := s.GetUser(ctx, 404)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user != nil {
		t.Errorf("user = %+v, want nil", user)
	}
}

func TestMemoryStorageAppendOnlyRecords(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	now := time.Now()

	if err := s.SaveChatHistory(ctx, &models.ChatHistory{ID: "h1", ChatID: 1, UserInput: "hello", Response: "hi", CreatedAt: now}); err != nil {
		t.Fatalf("SaveChatHistory: %v", err)
	}
	if err := s.SaveFile(ctx, &models.FileRecord{ID: "f1", ChatID: 1, FileName: "a.pdf", Description: "d", CreatedAt: now}); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if err := s.SaveSearch(ctx, &models.SearchRecord{ID: "s1", ChatID: 1, Query: "q", Results: "r", CreatedAt: now}); err != nil {
		t.Fatalf("SaveSearch: %v", err)
	}

	if len(s.history) != 1 || len(s.files) != 1 || len(s.searches) != 1 {
		t.Errorf("records = %d/%d/%d, want 1/1/1", len(s.history), len(s.files), len(s.searches))
	}
	if s.history["h1"].UserInput != "hello" {
		t.Errorf("history input = %q, want hello", s.history["h1"].UserInput)
	}
}
