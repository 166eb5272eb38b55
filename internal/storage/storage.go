package storage

import (
	"context"

	"github.com/xaenox/assist-bot/internal/models"
)

// Storage persists the four interaction collections: users, chat_history,
// files and web_search. Implementations must make CreateUser an upsert
// (insert-if-absent keyed by chat id) and SetUserPhone an update-if-exists
// that matches zero rows without error.
type Storage interface {
	CreateUser(ctx context.Context, user *models.User) error
	SetUserPhone(ctx context.Context, chatID int64, phone string) error
	GetUser(ctx context.Context, chatID int64) (*models.User, error)

	SaveChatHistory(ctx context.Context, record *models.ChatHistory) error
	SaveFile(ctx context.Context, record *models.FileRecord) error
	SaveSearch(ctx context.Context, record *models.SearchRecord) error

	Close() error
}
