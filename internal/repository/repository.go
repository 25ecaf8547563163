package repository

import (
	"context"

	"github.com/Azartis/Konsultabot2-sub000/internal/convo"
	"github.com/Azartis/Konsultabot2-sub000/internal/model"
)

// Repository defines the interface for chat history storage.
type Repository interface {
	CreateChat(ctx context.Context, chat *model.ChatSession) error
	GetChat(ctx context.Context, chatID string) (*model.ChatSession, error)
	GetChats(ctx context.Context) ([]*model.ChatSession, error)
	UpdateChatTitle(ctx context.Context, chatID, newTitle string) error
	DeleteChat(ctx context.Context, chatID string) error

	AddMessage(ctx context.Context, message *model.Message) error
	GetMessages(ctx context.Context, chatID string) ([]model.Message, error)
}

// ContextStore keeps the tracked conversation context of each chat.
// Get returns ErrNotFound when no context is stored for chatID.
type ContextStore interface {
	Get(ctx context.Context, chatID string) (*convo.Context, error)
	Save(ctx context.Context, c *convo.Context) error
	Delete(ctx context.Context, chatID string) error
}
