package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/xaenox/assist-bot/internal/assistant"
	"github.com/xaenox/assist-bot/internal/models"
	"github.com/xaenox/assist-bot/internal/storage"
	"go.uber.org/zap"
)

const (
	welcomeText  = "Welcome! Please share your phone number to complete registration."
	thankYouText = "Thank you! Your phone number has been saved."
	usageText    = "Please provide a query after /websearch."

	chatApologyText   = "Sorry, I couldn't process that right now."
	fileApologyText   = "Sorry, I couldn't analyze the file."
	searchApologyText = "Sorry, I couldn't perform the web search."
)

// telegramClient is the slice of the Telegram API the bot uses. It is
// satisfied by *tgbotapi.BotAPI and replaced by a fake in tests.
type telegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFileDirectURL(fileID string) (string, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type Bot struct {
	api         telegramClient
	storage     storage.Storage
	responder   assistant.Responder
	analyzer    assistant.Analyzer
	searcher    assistant.Searcher
	downloadDir string
	httpClient  *http.Client
	logger      *zap.Logger
}

func New(token string, store storage.Storage, responder assistant.Responder, analyzer assistant.Analyzer, searcher assistant.Searcher, downloadDir string, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:         api,
		storage:     store,
		responder:   responder,
		analyzer:    analyzer,
		searcher:    searcher,
		downloadDir: downloadDir,
		httpClient:  http.DefaultClient,
		logger:      logger,
	}, nil
}

// Start long-polls for updates and dispatches them one at a time. Each
// handler runs to completion before the next event is taken.
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.dispatch(classifyMessage(update.Message))
	}

	return nil
}

// dispatch routes one resolved event to exactly one handler. Unknown kinds
// (including unrecognized commands) are dropped.
func (b *Bot) dispatch(e event) {
	ctx := context.Background()

	switch e.Kind {
	case eventStart:
		b.handleStart(ctx, e)
	case eventWebSearch:
		b.handleWebSearch(ctx, e)
	case eventContact:
		b.handleContact(ctx, e)
	case eventText:
		b.handleText(ctx, e)
	case eventFile:
		b.handleFile(ctx, e)
	}
}

func (b *Bot) handleStart(ctx context.Context, e event) {
	user := &models.User{
		ChatID:    e.ChatID,
		FirstName: e.From.FirstName,
		Username:  e.From.Username,
	}

	if err := b.storage.CreateUser(ctx, user); err != nil {
		b.logger.Error("Failed to register user",
			zap.Error(err),
			zap.Int64("chat_id", e.ChatID))
		b.sendMessage(e.ChatID, chatApologyText)
		return
	}

	msg := tgbotapi.NewMessage(e.ChatID, welcomeText)
	msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact("Share Phone Number"),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send welcome message",
			zap.Error(err),
			zap.Int64("chat_id", e.ChatID))
	}
}

func (b *Bot) handleContact(ctx context.Context, e event) {
	if err := b.storage.SetUserPhone(ctx, e.Contact.UserID, e.Contact.Phone); err != nil {
		b.logger.Error("Failed to save phone number",
			zap.Error(err),
			zap.Int64("user_id", e.Contact.UserID))
	}

	// The thank-you is sent regardless of whether the update matched a row.
	b.sendMessage(e.ChatID, thankYouText)
}

func (b *Bot) handleText(ctx context.Context, e event) {
	response, err := b.responder.Reply(ctx, e.Text)
	if err != nil {
		b.logger.Error("Failed to get generated reply",
			zap.Error(err),
			zap.Int64("chat_id", e.ChatID))
		b.sendMessage(e.ChatID, chatApologyText)
		return
	}

	record := &models.ChatHistory{
		ID:        uuid.New().String(),
		ChatID:    e.ChatID,
		UserInput: e.Text,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}
	if err := b.storage.SaveChatHistory(ctx, record); err != nil {
		b.logger.Error("Failed to save chat history",
			zap.Error(err),
			zap.Int64("chat_id", e.ChatID))
		b.sendMessage(e.ChatID, chatApologyText)
		return
	}

	b.sendMessage(e.ChatID, response)
}

func (b *Bot) handleFile(ctx context.Context, e event) {
	localPath, err := b.downloadFile(e.File.FileID, e.File.FileName)
	if err != nil {
		b.logger.Error("Failed to download file",
			zap.Error(err),
			zap.Int64("chat_id", e.ChatID),
			zap.String("file_name", e.File.FileName))
		b.sendMessage(e.ChatID, fileApologyText)
		return
	}

	description, err := b.analyzer.Analyze(ctx, e.File.FileName, localPath)
	if err != nil {
		b.logger.Error("Failed to analyze file",
			zap.Error(err),
			zap.Int64("chat_id", e.ChatID),
			zap.String("file_name", e.File.FileName))
		b.sendMessage(e.ChatID, fileApologyText)
		return
	}

	record := &models.FileRecord{
		ID:          uuid.New().String(),
		ChatID:      e.ChatID,
		FileName:    e.File.FileName,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := b.storage.SaveFile(ctx, record); err != nil {
		b.logger.Error("Failed to save file record",
			zap.Error(err),
			zap.Int64("chat_id", e.ChatID),
			zap.String("file_name", e.File.FileName))
		b.sendMessage(e.ChatID, fileApologyText)
		return
	}

	b.sendMessage(e.ChatID, "File analyzed: "+description)
}

func (b *Bot) handleWebSearch(ctx context.Context, e event) {
	if e.Text == "" {
		b.sendMessage(e.ChatID, usageText)
		return
	}

	results, err := b.searcher.Search(ctx, e.Text)
	if err != nil {
		b.logger.Error("Failed to perform web search",
			zap.Error(err),
			zap.Int64("chat_id", e.ChatID),
			zap.String("query", e.Text))
		b.sendMessage(e.ChatID, searchApologyText)
		return
	}

	record := &models.SearchRecord{
		ID:        uuid.New().String(),
		ChatID:    e.ChatID,
		Query:     e.Text,
		Results:   results,
		CreatedAt: time.Now().UTC(),
	}
	if err := b.storage.SaveSearch(ctx, record); err != nil {
		b.logger.Error("Failed to save search record",
			zap.Error(err),
			zap.Int64("chat_id", e.ChatID),
			zap.String("query", e.Text))
		b.sendMessage(e.ChatID, searchApologyText)
		return
	}

	b.sendMessage(e.ChatID, results)
}

// downloadFile fetches the file content into the download directory and
// returns the local path. The content is stored under a fresh name so
// repeated uploads of the same filename do not clobber each other.
func (b *Bot) downloadFile(fileID, fileName string) (string, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve file URL: %w", err)
	}

	resp, err := b.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch file: status %d", resp.StatusCode)
	}

	localPath := filepath.Join(b.downloadDir, uuid.New().String()+filepath.Ext(fileName))
	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to create local file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write local file: %w", err)
	}

	return localPath, nil
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
