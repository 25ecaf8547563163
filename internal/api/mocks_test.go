package api_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Azartis/Konsultabot2-sub000/internal/convo"
	"github.com/Azartis/Konsultabot2-sub000/internal/model"
	"github.com/Azartis/Konsultabot2-sub000/internal/remote"
	"github.com/Azartis/Konsultabot2-sub000/internal/service"
)

type mockChatService struct {
	mock.Mock
}

func (m *mockChatService) CreateChat(ctx context.Context, title string) (*model.ChatSession, error) {
	args := m.Called(ctx, title)
	chat, _ := args.Get(0).(*model.ChatSession)
	return chat, args.Error(1)
}

func (m *mockChatService) ListChats(ctx context.Context) ([]*model.ChatSession, error) {
	args := m.Called(ctx)
	chats, _ := args.Get(0).([]*model.ChatSession)
	return chats, args.Error(1)
}

func (m *mockChatService) GetFullChat(ctx context.Context, chatID string) (*model.FullChat, error) {
	args := m.Called(ctx, chatID)
	chat, _ := args.Get(0).(*model.FullChat)
	return chat, args.Error(1)
}

func (m *mockChatService) UpdateChatTitle(ctx context.Context, chatID, newTitle string) error {
	return m.Called(ctx, chatID, newTitle).Error(0)
}

func (m *mockChatService) DeleteChat(ctx context.Context, chatID string) error {
	return m.Called(ctx, chatID).Error(0)
}

func (m *mockChatService) ResetContext(ctx context.Context, chatID string) (*convo.Context, error) {
	args := m.Called(ctx, chatID)
	c, _ := args.Get(0).(*convo.Context)
	return c, args.Error(1)
}

func (m *mockChatService) GetContext(ctx context.Context, chatID string) (*convo.Context, error) {
	args := m.Called(ctx, chatID)
	c, _ := args.Get(0).(*convo.Context)
	return c, args.Error(1)
}

func (m *mockChatService) SendMessage(ctx context.Context, req *service.SendMessageRequest) (*service.SendMessageResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*service.SendMessageResult)
	return result, args.Error(1)
}

type mockSettingsService struct {
	mock.Mock
}

func (m *mockSettingsService) Get(ctx context.Context) (*service.Settings, error) {
	args := m.Called(ctx)
	settings, _ := args.Get(0).(*service.Settings)
	return settings, args.Error(1)
}

func (m *mockSettingsService) Save(ctx context.Context, settings *service.Settings) error {
	return m.Called(ctx, settings).Error(0)
}

type mockRemoteService struct {
	mock.Mock
}

func (m *mockRemoteService) Status(ctx context.Context) (*remote.Status, error) {
	args := m.Called(ctx)
	status, _ := args.Get(0).(*remote.Status)
	return status, args.Error(1)
}

func (m *mockRemoteService) Discover(ctx context.Context) (*remote.Status, error) {
	args := m.Called(ctx)
	status, _ := args.Get(0).(*remote.Status)
	return status, args.Error(1)
}
