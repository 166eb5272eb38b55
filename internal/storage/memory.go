package storage

import (
	"context"
	"sync"

	"github.com/xaenox/assist-bot/internal/models"
)

// MemoryStorage is an in-process Storage used for development and tests.
type MemoryStorage struct {
	mu       sync.RWMutex
	users    map[int64]*models.User
	history  map[string]*models.ChatHistory
	files    map[string]*models.FileRecord
	searches map[string]*models.SearchRecord
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:    make(map[int64]*models.User),
		history:  make(map[string]*models.ChatHistory),
		files:    make(map[string]*models.FileRecord),
		searches: make(map[string]*models.SearchRecord),
	}
}

func (s *MemoryStorage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ChatID]; exists {
		return nil
	}

	copied := *user
	s.users[user.ChatID] = &copied
	return nil
}

func (s *MemoryStorage) SetUserPhone(ctx context.Context, chatID int64, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, exists := s.users[chatID]; exists {
		user.PhoneNumber = phone
	}
	return nil
}

func (s *MemoryStorage) GetUser(ctx context.Context, chatID int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, exists := s.users[chatID]; exists {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (s *MemoryStorage) SaveChatHistory(ctx context.Context, record *models.ChatHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *record
	s.history[record.ID] = &copied
	return nil
}

func (s *MemoryStorage) SaveFile(ctx context.Context, record *models.FileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *record
	s.files[record.ID] = &copied
	return nil
}

func (s *MemoryStorage) SaveSearch(ctx context.Context, record *models.SearchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *record
	s.searches[record.ID] = &copied
	return nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
