package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Azartis/Konsultabot2-sub000/internal/convo"
	"github.com/Azartis/Konsultabot2-sub000/internal/model"
	"github.com/Azartis/Konsultabot2-sub000/internal/resolver"
	"github.com/Azartis/Konsultabot2-sub000/internal/service"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateChat(ctx context.Context, chat *model.ChatSession) error {
	return m.Called(ctx, chat).Error(0)
}

func (m *mockRepository) GetChat(ctx context.Context, chatID string) (*model.ChatSession, error) {
	args := m.Called(ctx, chatID)
	chat, _ := args.Get(0).(*model.ChatSession)
	return chat, args.Error(1)
}

func (m *mockRepository) GetChats(ctx context.Context) ([]*model.ChatSession, error) {
	args := m.Called(ctx)
	chats, _ := args.Get(0).([]*model.ChatSession)
	return chats, args.Error(1)
}

func (m *mockRepository) UpdateChatTitle(ctx context.Context, chatID, newTitle string) error {
	return m.Called(ctx, chatID, newTitle).Error(0)
}

func (m *mockRepository) DeleteChat(ctx context.Context, chatID string) error {
	return m.Called(ctx, chatID).Error(0)
}

func (m *mockRepository) AddMessage(ctx context.Context, message *model.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *mockRepository) GetMessages(ctx context.Context, chatID string) ([]model.Message, error) {
	args := m.Called(ctx, chatID)
	messages, _ := args.Get(0).([]model.Message)
	return messages, args.Error(1)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, c *convo.Context, in resolver.Input) resolver.Response {
	return m.Called(ctx, c, in).Get(0).(resolver.Response)
}

type mockSettings struct {
	mock.Mock
}

func (m *mockSettings) Get(ctx context.Context) (*service.Settings, error) {
	args := m.Called(ctx)
	settings, _ := args.Get(0).(*service.Settings)
	return settings, args.Error(1)
}
