package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/xaenox/assist-bot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config DatabaseConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db}

	// Initialize database schema
	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}

	return nil
}

// CreateUser inserts the user unless a row for the chat id already exists.
func (s *PostgresStorage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (chat_id, first_name, username)
		VALUES ($1, $2, $3)
		ON CONFLICT (chat_id) DO NOTHING`

	if _, err := s.db.ExecContext(ctx, query, user.ChatID, user.FirstName, user.Username); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// SetUserPhone updates the phone number of an existing user. A chat id with
// no matching row updates nothing and is not an error.
func (s *PostgresStorage) SetUserPhone(ctx context.Context, chatID int64, phone string) error {
	query := `
		UPDATE users
		SET phone_number = $1
		WHERE chat_id = $2`

	if _, err := s.db.ExecContext(ctx, query, phone, chatID); err != nil {
		return fmt.Errorf("error updating phone number: %w", err)
	}

	return nil
}

// GetUser returns the user for a chat id, or nil when none exists.
func (s *PostgresStorage) GetUser(ctx context.Context, chatID int64) (*models.User, error) {
	query := `
		SELECT chat_id, first_name, username, COALESCE(phone_number, '')
		FROM users
		WHERE chat_id = $1`

	user := &models.User{}
	err := s.db.QueryRowContext(ctx, query, chatID).Scan(
		&user.ChatID,
		&user.FirstName,
		&user.Username,
		&user.PhoneNumber,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return user, nil
}

func (s *PostgresStorage) SaveChatHistory(ctx context.Context, record *models.ChatHistory) error {
	query := `
		INSERT INTO chat_history (id, chat_id, user_input, bot_response, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.ChatID,
		record.UserInput,
		record.Response,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving chat history: %w", err)
	}

	return nil
}

func (s *PostgresStorage) SaveFile(ctx context.Context, record *models.FileRecord) error {
	query := `
		INSERT INTO files (id, chat_id, file_name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.ChatID,
		record.FileName,
		record.Description,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving file record: %w", err)
	}

	return nil
}

func (s *PostgresStorage) SaveSearch(ctx context.Context, record *models.SearchRecord) error {
	query := `
		INSERT INTO web_search (id, chat_id, query, results, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.ChatID,
		record.Query,
		record.Results,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving search record: %w", err)
	}

	return nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
