package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func commandMessage(text string, commandLen int) *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 42},
		From: &tgbotapi.User{ID: 7, FirstName: "Ada", UserName: "ada"},
		Text: text,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: commandLen},
		},
	}
}

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		name    string
		message *tgbotapi.Message
		want    eventKind
	}{
		{
			name:    "start command",
			message: commandMessage("/start", 6),
			want:    eventStart,
		},
		{
			name:    "websearch command",
			message: commandMessage("/websearch weather today", 10),
			want:    eventWebSearch,
		},
		{
			name:    "unknown command is dropped",
			message: commandMessage("/help", 5),
			want:    eventUnknown,
		},
		{
			name: "contact share",
			message: &tgbotapi.Message{
				Chat:    &tgbotapi.Chat{ID: 42},
				Contact: &tgbotapi.Contact{UserID: 7, PhoneNumber: "+1555"},
			},
			want: eventContact,
		},
		{
			name: "document",
			message: &tgbotapi.Message{
				Chat:     &tgbotapi.Chat{ID: 42},
				Document: &tgbotapi.Document{FileID: "doc-1", FileName: "report.pdf"},
			},
			want: eventFile,
		},
		{
			name: "photo",
			message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: 42},
				Photo: []tgbotapi.PhotoSize{
					{FileID: "small"},
					{FileID: "large"},
				},
			},
			want: eventFile,
		},
		{
			name: "plain text",
			message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: 42},
				Text: "hello",
			},
			want: eventText,
		},
		{
			name: "empty message",
			message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: 42},
			},
			want: eventUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyMessage(tt.message)
			if got.Kind != tt.want {
				t.Fatalf("classifyMessage() kind = %v, want %v", got.Kind, tt.want)
			}
			if got.ChatID != 42 {
				t.Errorf("classifyMessage() chat id = %d, want 42", got.ChatID)
			}
		})
	}
}

func TestClassifyMessageWebSearchArguments(t *testing.T) {
	e := classifyMessage(commandMessage("/websearch weather today", 10))
	if e.Text != "weather today" {
		t.Errorf("command arguments = %q, want %q", e.Text, "weather today")
	}

	empty := classifyMessage(commandMessage("/websearch", 10))
	if empty.Text != "" {
		t.Errorf("command arguments = %q, want empty", empty.Text)
	}
}

func TestClassifyMessagePicksHighestResolutionPhoto(t *testing.T) {
	e := classifyMessage(&tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 42},
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small", Width: 90},
			{FileID: "large", Width: 1280},
		},
	})

	if e.File == nil {
		t.Fatal("expected file attachment")
	}
	if e.File.FileID != "large" {
		t.Errorf("file id = %q, want %q", e.File.FileID, "large")
	}
	if e.File.FileName != defaultFileName {
		t.Errorf("file name = %q, want %q", e.File.FileName, defaultFileName)
	}
}

func TestClassifyMessageDocumentWithoutName(t *testing.T) {
	e := classifyMessage(&tgbotapi.Message{
		Chat:     &tgbotapi.Chat{ID: 42},
		Document: &tgbotapi.Document{FileID: "doc-1"},
	})

	if e.File == nil {
		t.Fatal("expected file attachment")
	}
	if e.File.FileName != defaultFileName {
		t.Errorf("file name = %q, want %q", e.File.FileName, defaultFileName)
	}
}
