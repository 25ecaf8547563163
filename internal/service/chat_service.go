package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Azartis/Konsultabot2-sub000/internal/convo"
	app_errors "github.com/Azartis/Konsultabot2-sub000/internal/errors"
	"github.com/Azartis/Konsultabot2-sub000/internal/metrics"
	"github.com/Azartis/Konsultabot2-sub000/internal/model"
	"github.com/Azartis/Konsultabot2-sub000/internal/repository"
	"github.com/Azartis/Konsultabot2-sub000/internal/resolver"
)

const (
	titleLength  = 50
	defaultTitle = "New chat"
	// persistTimeout bounds storing a resolved exchange once the request
	// context is gone.
	persistTimeout = 5 * time.Second
)

// MessageResolver answers a message and updates the conversation context.
type MessageResolver interface {
	Resolve(ctx context.Context, c *convo.Context, in resolver.Input) resolver.Response
}

// SettingsProvider returns the current runtime settings.
type SettingsProvider interface {
	Get(ctx context.Context) (*Settings, error)
}

// SendMessageRequest is a user message addressed to a chat. An empty ChatID
// starts a new chat.
type SendMessageRequest struct {
	ChatID   string `json:"chat_id"`
	Text     string `json:"text" validate:"required,max=4000"`
	Language string `json:"language,omitempty"`
	// CreateMissing creates the chat under ChatID when it does not exist.
	CreateMissing bool `json:"-"`
}

// SendMessageResult holds both stored messages and the resolver's answer.
type SendMessageResult struct {
	ChatID      string            `json:"chat_id"`
	UserMessage model.Message     `json:"user_message"`
	BotMessage  model.Message     `json:"bot_message"`
	Response    resolver.Response `json:"response"`
}

type ChatService struct {
	repo     repository.Repository
	contexts repository.ContextStore
	resolver MessageResolver
	settings SettingsProvider
	offline  bool

	// chat id -> *sync.Mutex. Entries outlive their chat so a caller
	// waiting on a deleted chat's lock never races a fresh one.
	locks sync.Map
}

// NewChatService wires the chat workflow. offline forces local answers
// regardless of the stored settings.
func NewChatService(repo repository.Repository, contexts repository.ContextStore, res MessageResolver, settings SettingsProvider, offline bool) *ChatService {
	return &ChatService{repo: repo, contexts: contexts, resolver: res, settings: settings, offline: offline}
}

// CreateChat starts an empty chat.
func (s *ChatService) CreateChat(ctx context.Context, title string) (*model.ChatSession, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultTitle
	}
	now := time.Now().UTC()
	chat := &model.ChatSession{ID: uuid.NewString(), Title: truncate(title, titleLength), CreatedAt: now, UpdatedAt: now}
	if err := s.repo.CreateChat(ctx, chat); err != nil {
		return nil, fmt.Errorf("could not create chat: %w", err)
	}
	slog.Info("Created chat", "chat_id", chat.ID)
	return chat, nil
}

// ListChats returns all chats, most recently updated first.
func (s *ChatService) ListChats(ctx context.Context) ([]*model.ChatSession, error) {
	return s.repo.GetChats(ctx)
}

// GetFullChat retrieves a chat's metadata and all its messages.
func (s *ChatService) GetFullChat(ctx context.Context, chatID string) (*model.FullChat, error) {
	chat, err := s.repo.GetChat(ctx, chatID)
	if err != nil {
		return nil, translate(err, "could not get chat")
	}
	messages, err := s.repo.GetMessages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("could not get messages: %w", err)
	}
	return &model.FullChat{ChatSession: *chat, Messages: messages}, nil
}

// UpdateChatTitle renames a chat.
func (s *ChatService) UpdateChatTitle(ctx context.Context, chatID, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return fmt.Errorf("%w: title cannot be empty", app_errors.ErrValidation)
	}
	slog.Info("Updating chat title", "chat_id", chatID)
	return translate(s.repo.UpdateChatTitle(ctx, chatID, newTitle), "could not update title")
}

// DeleteChat removes a chat, its messages and its tracked context.
func (s *ChatService) DeleteChat(ctx context.Context, chatID string) error {
	unlock := s.lock(chatID)
	defer unlock()

	slog.Info("Deleting chat", "chat_id", chatID)
	if err := s.repo.DeleteChat(ctx, chatID); err != nil {
		return translate(err, "could not delete chat")
	}
	if err := s.contexts.Delete(ctx, chatID); err != nil {
		slog.Warn("Failed to delete chat context", "chat_id", chatID, "error", err)
	}
	return nil
}

// ResetContext forgets everything learned in the chat while keeping its
// messages and language.
func (s *ChatService) ResetContext(ctx context.Context, chatID string) (*convo.Context, error) {
	unlock := s.lock(chatID)
	defer unlock()

	if _, err := s.repo.GetChat(ctx, chatID); err != nil {
		return nil, translate(err, "could not get chat")
	}
	c, err := s.loadContext(ctx, chatID, "")
	if err != nil {
		return nil, err
	}
	c.Reset()
	if err := s.contexts.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("could not save context: %w", err)
	}
	slog.Info("Reset chat context", "chat_id", chatID)
	return c, nil
}

// GetContext returns the tracked context of a chat. A chat that has not
// received any message yet gets a fresh context.
func (s *ChatService) GetContext(ctx context.Context, chatID string) (*convo.Context, error) {
	if _, err := s.repo.GetChat(ctx, chatID); err != nil {
		return nil, translate(err, "could not get chat")
	}
	return s.loadContext(ctx, chatID, "")
}

// SendMessage resolves a user message. Storing messages and context is
// best effort: failures are logged and the reply is still returned.
func (s *ChatService) SendMessage(ctx context.Context, req *SendMessageRequest) (*SendMessageResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: message text cannot be empty", app_errors.ErrValidation)
	}

	chatID := req.ChatID
	if chatID == "" {
		chatID = uuid.NewString()
	}
	unlock := s.lock(chatID)
	defer unlock()

	chat, err := s.ensureChat(ctx, req, chatID, text)
	if err != nil {
		return nil, err
	}

	settings := s.currentSettings(ctx)
	c, err := s.loadContext(ctx, chatID, settings.DefaultLanguage)
	if err != nil {
		slog.Warn("Failed to load chat context, starting fresh", "chat_id", chatID, "error", err)
		c = convo.New(chatID, settings.DefaultLanguage)
	}
	firstMessage := len(c.ConversationHistory) == 0

	userMessage := model.Message{ID: uuid.NewString(), ChatID: chatID, Text: text, Sender: model.SenderUser, Timestamp: time.Now().UTC()}

	resp := s.resolver.Resolve(ctx, c, resolver.Input{
		Message:  text,
		Language: req.Language,
		Offline:  s.offline || !settings.OnlineEnabled,
		Model:    settings.PreferredModel,
	})
	metrics.ObserveResolution(resp.Source, string(resp.Kind))
	slog.Info("Resolved message", "chat_id", chatID, "source", resp.Source, "kind", resp.Kind, "issue", resp.IssueKey)

	confidence, source := resp.Confidence, resp.Source
	botMessage := model.Message{
		ID:         uuid.NewString(),
		ChatID:     chatID,
		Text:       resp.Text,
		Sender:     model.SenderBot,
		Timestamp:  time.Now().UTC(),
		Confidence: &confidence,
		Source:     &source,
	}

	// The exchange is stored even when the client went away or the route
	// timed out during resolution.
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	for _, msg := range []*model.Message{&userMessage, &botMessage} {
		if err := s.repo.AddMessage(saveCtx, msg); err != nil {
			slog.Error("Failed to save message", "chat_id", chatID, "sender", msg.Sender, "error", err)
		}
	}
	if err := s.contexts.Save(saveCtx, c); err != nil {
		slog.Error("Failed to save chat context", "chat_id", chatID, "error", err)
	}
	if firstMessage && chat.Title == defaultTitle {
		if err := s.repo.UpdateChatTitle(saveCtx, chatID, truncate(text, titleLength)); err != nil {
			slog.Warn("Failed to set chat title", "chat_id", chatID, "error", err)
		}
	}

	return &SendMessageResult{ChatID: chatID, UserMessage: userMessage, BotMessage: botMessage, Response: resp}, nil
}

// ensureChat returns the chat the message belongs to, creating it under
// chatID when needed. A new chat is titled after its first message.
// Callers hold the chat lock, so a chat deleted while they waited is seen
// as gone.
func (s *ChatService) ensureChat(ctx context.Context, req *SendMessageRequest, chatID, text string) (*model.ChatSession, error) {
	if req.ChatID != "" {
		chat, err := s.repo.GetChat(ctx, req.ChatID)
		if err == nil {
			return chat, nil
		}
		if !errors.Is(err, repository.ErrNotFound) || !req.CreateMissing {
			return nil, translate(err, "could not get chat")
		}
	}

	now := time.Now().UTC()
	chat := &model.ChatSession{ID: chatID, Title: truncate(text, titleLength), CreatedAt: now, UpdatedAt: now}
	if err := s.repo.CreateChat(ctx, chat); err != nil {
		return nil, fmt.Errorf("could not create chat: %w", err)
	}
	slog.Info("Created chat", "chat_id", chatID)
	return chat, nil
}

func (s *ChatService) loadContext(ctx context.Context, chatID, language string) (*convo.Context, error) {
	c, err := s.contexts.Get(ctx, chatID)
	if errors.Is(err, repository.ErrNotFound) {
		return convo.New(chatID, language), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load context: %w", err)
	}
	return c, nil
}

func (s *ChatService) currentSettings(ctx context.Context) *Settings {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		slog.Warn("Failed to read settings, using defaults", "error", err)
		return &Settings{DefaultLanguage: "english", OnlineEnabled: true}
	}
	return settings
}

// lock serializes work on one chat's context.
func (s *ChatService) lock(chatID string) func() {
	v, _ := s.locks.LoadOrStore(chatID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// translate maps repository errors onto application errors.
func translate(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %w", msg, app_errors.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// truncate shortens a string to a specified number of runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
