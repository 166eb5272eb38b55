package models

import "time"

// User represents a registered bot user. A user is created on the first
// /start from a chat and updated once when a phone number is shared.
type User struct {
	ChatID      int64  `json:"chat_id"`
	FirstName   string `json:"first_name"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// ChatHistory is one completed text exchange. Records are append-only and
// never written for failed generation attempts.
type ChatHistory struct {
	ID        string    `json:"id"`
	ChatID    int64     `json:"chat_id"`
	UserInput string    `json:"user_input"`
	Response  string    `json:"bot_response"`
	CreatedAt time.Time `json:"created_at"`
}

// FileRecord holds the metadata and description produced for one received
// document or photo.
type FileRecord struct {
	ID          string    `json:"id"`
	ChatID      int64     `json:"chat_id"`
	FileName    string    `json:"file_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// SearchRecord is one answered /websearch query.
type SearchRecord struct {
	ID        string    `json:"id"`
	ChatID    int64     `json:"chat_id"`
	Query     string    `json:"query"`
	Results   string    `json:"results"`
	CreatedAt time.Time `json:"created_at"`
}
