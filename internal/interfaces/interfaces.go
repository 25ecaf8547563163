package interfaces

import (
	"context"

	"github.com/Azartis/Konsultabot2-sub000/internal/convo"
	"github.com/Azartis/Konsultabot2-sub000/internal/model"
	"github.com/Azartis/Konsultabot2-sub000/internal/remote"
	"github.com/Azartis/Konsultabot2-sub000/internal/service"
)

// Handlers depend on these interfaces rather than on the concrete services
// so they can be tested with mocks.

// ChatService defines the contract for chat-related business logic.
type ChatService interface {
	CreateChat(ctx context.Context, title string) (*model.ChatSession, error)
	ListChats(ctx context.Context) ([]*model.ChatSession, error)
	GetFullChat(ctx context.Context, chatID string) (*model.FullChat, error)
	UpdateChatTitle(ctx context.Context, chatID, newTitle string) error
	DeleteChat(ctx context.Context, chatID string) error
	ResetContext(ctx context.Context, chatID string) (*convo.Context, error)
	GetContext(ctx context.Context, chatID string) (*convo.Context, error)
	SendMessage(ctx context.Context, req *service.SendMessageRequest) (*service.SendMessageResult, error)
}

// SettingsService defines the contract for managing application settings.
type SettingsService interface {
	Get(ctx context.Context) (*service.Settings, error)
	Save(ctx context.Context, settings *service.Settings) error
}

// RemoteService defines the contract for inspecting the online answer path.
type RemoteService interface {
	Status(ctx context.Context) (*remote.Status, error)
	Discover(ctx context.Context) (*remote.Status, error)
}
