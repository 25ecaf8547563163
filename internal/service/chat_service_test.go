package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Azartis/Konsultabot2-sub000/internal/convo"
	app_errors "github.com/Azartis/Konsultabot2-sub000/internal/errors"
	"github.com/Azartis/Konsultabot2-sub000/internal/knowledge"
	"github.com/Azartis/Konsultabot2-sub000/internal/model"
	"github.com/Azartis/Konsultabot2-sub000/internal/repository"
	"github.com/Azartis/Konsultabot2-sub000/internal/resolver"
	"github.com/Azartis/Konsultabot2-sub000/internal/service"
)

type Mocks struct {
	repo     *mockRepository
	contexts repository.ContextStore
	resolver *mockResolver
	settings *mockSettings
}

func setupChatService(t *testing.T) (*service.ChatService, Mocks) {
	mocks := Mocks{
		repo:     &mockRepository{},
		contexts: repository.NewMemoryContextStore(time.Hour),
		resolver: &mockResolver{},
		settings: &mockSettings{},
	}
	t.Cleanup(func() {
		mocks.repo.AssertExpectations(t)
		mocks.resolver.AssertExpectations(t)
	})
	return service.NewChatService(mocks.repo, mocks.contexts, mocks.resolver, mocks.settings, false), mocks
}

func existingChat(id, title string) *model.ChatSession {
	now := time.Now().UTC()
	return &model.ChatSession{ID: id, Title: title, CreatedAt: now, UpdatedAt: now}
}

func TestChatService_UpdateChatTitle(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("UpdateChatTitle", ctx, "chat123", "New Title").Return(nil).Once()

		assert.NoError(t, chatService.UpdateChatTitle(ctx, "chat123", "  New Title "))
	})

	t.Run("Failure - Empty title", func(t *testing.T) {
		chatService, _ := setupChatService(t)
		err := chatService.UpdateChatTitle(ctx, "chat123", "   ")
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Failure - Repository returns not found", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("UpdateChatTitle", ctx, "chat123", "New Title").Return(repository.ErrNotFound).Once()

		err := chatService.UpdateChatTitle(ctx, "chat123", "New Title")
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})
}

func TestChatService_ListChats(t *testing.T) {
	ctx := context.Background()
	chatService, mocks := setupChatService(t)
	expected := []*model.ChatSession{existingChat("c1", "Printer jam")}
	mocks.repo.On("GetChats", ctx).Return(expected, nil).Once()

	chats, err := chatService.ListChats(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, chats)
}

func TestChatService_CreateChat(t *testing.T) {
	ctx := context.Background()
	chatService, mocks := setupChatService(t)
	mocks.repo.On("CreateChat", ctx, mock.MatchedBy(func(c *model.ChatSession) bool {
		return c.ID != "" && c.Title == "New chat"
	})).Return(nil).Once()

	chat, err := chatService.CreateChat(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "New chat", chat.Title)
}

func TestChatService_GetFullChat(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		messages := []model.Message{{ID: "m1", ChatID: "c1", Text: "hi", Sender: model.SenderUser}}
		mocks.repo.On("GetChat", ctx, "c1").Return(existingChat("c1", "hi"), nil).Once()
		mocks.repo.On("GetMessages", ctx, "c1").Return(messages, nil).Once()

		full, err := chatService.GetFullChat(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "c1", full.ID)
		assert.Equal(t, messages, full.Messages)
	})

	t.Run("Not found", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("GetChat", ctx, "nope").Return(nil, repository.ErrNotFound).Once()

		_, err := chatService.GetFullChat(ctx, "nope")
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})
}

func TestChatService_DeleteChat(t *testing.T) {
	ctx := context.Background()
	chatService, mocks := setupChatService(t)
	require.NoError(t, mocks.contexts.Save(ctx, convo.New("c1", "english")))
	mocks.repo.On("DeleteChat", ctx, "c1").Return(nil).Once()

	require.NoError(t, chatService.DeleteChat(ctx, "c1"))

	_, err := mocks.contexts.Get(ctx, "c1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestChatService_SendMessageWaitingOnDeletedChat(t *testing.T) {
	ctx := context.Background()
	chatService, mocks := setupChatService(t)
	require.NoError(t, mocks.contexts.Save(ctx, convo.New("c1", "english")))

	deleting := make(chan struct{})
	release := make(chan struct{})
	mocks.repo.On("DeleteChat", ctx, "c1").
		Run(func(mock.Arguments) {
			close(deleting)
			<-release
		}).
		Return(nil).Once()
	mocks.repo.On("GetChat", ctx, "c1").Return(nil, repository.ErrNotFound).Once()

	deleted := make(chan error, 1)
	go func() { deleted <- chatService.DeleteChat(ctx, "c1") }()
	<-deleting

	sent := make(chan error, 1)
	go func() {
		_, err := chatService.SendMessage(ctx, &service.SendMessageRequest{ChatID: "c1", Text: "hello"})
		sent <- err
	}()
	close(release)

	require.NoError(t, <-deleted)
	assert.ErrorIs(t, <-sent, app_errors.ErrNotFound)

	_, err := mocks.contexts.Get(ctx, "c1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestChatService_ResetContext(t *testing.T) {
	ctx := context.Background()
	chatService, mocks := setupChatService(t)

	c := convo.New("c1", "tagalog")
	c.SetField(knowledge.FieldDeviceType, "laptop")
	c.SpecificIssue = "battery issue"
	require.NoError(t, mocks.contexts.Save(ctx, c))
	mocks.repo.On("GetChat", ctx, "c1").Return(existingChat("c1", "x"), nil).Once()

	reset, err := chatService.ResetContext(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, reset.DeviceType)
	assert.Empty(t, reset.SpecificIssue)
	assert.Equal(t, "tagalog", reset.Language)

	stored, err := mocks.contexts.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, stored.DeviceType)
}

func TestChatService_GetContext(t *testing.T) {
	ctx := context.Background()
	chatService, mocks := setupChatService(t)
	mocks.repo.On("GetChat", ctx, "c1").Return(existingChat("c1", "x"), nil).Once()

	c, err := chatService.GetContext(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", c.SessionID)
	assert.Empty(t, c.ConversationHistory)
}

func TestChatService_SendMessage(t *testing.T) {
	ctx := context.Background()
	reply := resolver.Response{Text: "What device are you having trouble with?", Source: resolver.SourceLocalAI, Confidence: 0.95, Kind: resolver.KindClarification}

	t.Run("New chat is created and titled after the message", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		longText := "my wifi keeps dropping every few minutes during online class and it is driving me crazy"

		mocks.settings.On("Get", ctx).Return(&service.Settings{DefaultLanguage: "bisaya", OnlineEnabled: true, PreferredModel: "gemini-2.0-flash"}, nil).Once()
		mocks.repo.On("CreateChat", ctx, mock.MatchedBy(func(c *model.ChatSession) bool {
			return len([]rune(c.Title)) == 50 && c.ID != ""
		})).Return(nil).Once()
		mocks.resolver.On("Resolve", ctx, mock.MatchedBy(func(c *convo.Context) bool {
			return c.Language == "bisaya"
		}), resolver.Input{Message: longText, Model: "gemini-2.0-flash"}).
			Run(func(args mock.Arguments) {
				c := args.Get(1).(*convo.Context)
				c.Append(convo.RoleUser, longText)
				c.SpecificIssue = "network issue"
			}).
			Return(reply).Once()
		mocks.repo.On("AddMessage", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil).Twice()

		result, err := chatService.SendMessage(ctx, &service.SendMessageRequest{Text: "  " + longText + "  "})
		require.NoError(t, err)

		assert.NotEmpty(t, result.ChatID)
		assert.Equal(t, longText, result.UserMessage.Text)
		assert.Equal(t, model.SenderUser, result.UserMessage.Sender)
		assert.Equal(t, reply.Text, result.BotMessage.Text)
		require.NotNil(t, result.BotMessage.Source)
		assert.Equal(t, resolver.SourceLocalAI, *result.BotMessage.Source)
		assert.Equal(t, reply, result.Response)

		stored, err := mocks.contexts.Get(ctx, result.ChatID)
		require.NoError(t, err)
		assert.Equal(t, "network issue", stored.SpecificIssue)
	})

	t.Run("Existing default-titled chat gets the first message as title", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.settings.On("Get", ctx).Return(&service.Settings{DefaultLanguage: "english", OnlineEnabled: true}, nil).Once()
		mocks.repo.On("GetChat", ctx, "c1").Return(existingChat("c1", "New chat"), nil).Once()
		mocks.resolver.On("Resolve", ctx, mock.Anything, mock.Anything).Return(reply).Once()
		mocks.repo.On("AddMessage", mock.Anything, mock.Anything).Return(nil).Twice()
		mocks.repo.On("UpdateChatTitle", mock.Anything, "c1", "printer jam").Return(nil).Once()

		_, err := chatService.SendMessage(ctx, &service.SendMessageRequest{ChatID: "c1", Text: "printer jam"})
		require.NoError(t, err)
	})

	t.Run("Offline setting forces local answers", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.settings.On("Get", ctx).Return(&service.Settings{DefaultLanguage: "english", OnlineEnabled: false}, nil).Once()
		mocks.repo.On("GetChat", ctx, "c1").Return(existingChat("c1", "x"), nil).Once()
		mocks.resolver.On("Resolve", ctx, mock.Anything, mock.MatchedBy(func(in resolver.Input) bool {
			return in.Offline && in.Language == "waray"
		})).Return(reply).Once()
		mocks.repo.On("AddMessage", mock.Anything, mock.Anything).Return(nil).Twice()

		_, err := chatService.SendMessage(ctx, &service.SendMessageRequest{ChatID: "c1", Text: "hello", Language: "waray"})
		require.NoError(t, err)
	})

	t.Run("Storage failures do not fail the reply", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.settings.On("Get", ctx).Return(nil, errors.New("db locked")).Once()
		mocks.repo.On("GetChat", ctx, "c1").Return(existingChat("c1", "x"), nil).Once()
		mocks.resolver.On("Resolve", ctx, mock.Anything, mock.MatchedBy(func(in resolver.Input) bool {
			return !in.Offline
		})).Return(reply).Once()
		mocks.repo.On("AddMessage", mock.Anything, mock.Anything).Return(errors.New("disk full")).Twice()

		result, err := chatService.SendMessage(ctx, &service.SendMessageRequest{ChatID: "c1", Text: "hello"})
		require.NoError(t, err)
		assert.Equal(t, reply.Text, result.BotMessage.Text)
	})

	t.Run("Unknown chat is rejected", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("GetChat", ctx, "nope").Return(nil, repository.ErrNotFound).Once()

		_, err := chatService.SendMessage(ctx, &service.SendMessageRequest{ChatID: "nope", Text: "hello"})
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})

	t.Run("Unknown chat is created on request", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.settings.On("Get", ctx).Return(&service.Settings{DefaultLanguage: "english", OnlineEnabled: true}, nil).Once()
		mocks.repo.On("GetChat", ctx, "session-9").Return(nil, repository.ErrNotFound).Once()
		mocks.repo.On("CreateChat", ctx, mock.MatchedBy(func(c *model.ChatSession) bool {
			return c.ID == "session-9" && c.Title == "hello"
		})).Return(nil).Once()
		mocks.resolver.On("Resolve", ctx, mock.Anything, mock.Anything).Return(reply).Once()
		mocks.repo.On("AddMessage", mock.Anything, mock.Anything).Return(nil).Twice()

		result, err := chatService.SendMessage(ctx, &service.SendMessageRequest{ChatID: "session-9", Text: "hello", CreateMissing: true})
		require.NoError(t, err)
		assert.Equal(t, "session-9", result.ChatID)
	})

	t.Run("Exchange is stored after the request context ends", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		reqCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		live := mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil })

		mocks.settings.On("Get", mock.Anything).Return(&service.Settings{DefaultLanguage: "english", OnlineEnabled: true}, nil).Once()
		mocks.repo.On("GetChat", mock.Anything, "c1").Return(existingChat("c1", "New chat"), nil).Once()
		mocks.resolver.On("Resolve", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(1).(*convo.Context).Ask(knowledge.FieldDeviceType, reply.Text)
				cancel()
			}).
			Return(reply).Once()
		mocks.repo.On("AddMessage", live, mock.Anything).Return(nil).Twice()
		mocks.repo.On("UpdateChatTitle", live, "c1", "my wifi is slow").Return(nil).Once()

		_, err := chatService.SendMessage(reqCtx, &service.SendMessageRequest{ChatID: "c1", Text: "my wifi is slow"})
		require.NoError(t, err)

		stored, err := mocks.contexts.Get(ctx, "c1")
		require.NoError(t, err)
		require.NotNil(t, stored.LastQuestion)
		assert.Equal(t, knowledge.FieldDeviceType, stored.LastQuestion.ContextKey)
	})

	t.Run("Empty text", func(t *testing.T) {
		chatService, _ := setupChatService(t)
		_, err := chatService.SendMessage(ctx, &service.SendMessageRequest{Text: "  "})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}

func TestChatService_SendMessageWithResolver(t *testing.T) {
	ctx := context.Background()
	mocks := Mocks{repo: &mockRepository{}, contexts: repository.NewMemoryContextStore(time.Hour), settings: &mockSettings{}}
	res := resolver.New(nil, nil, resolver.WithPicker(func(int) int { return 0 }))
	chatService := service.NewChatService(mocks.repo, mocks.contexts, res, mocks.settings, true)

	mocks.settings.On("Get", ctx).Return(&service.Settings{DefaultLanguage: "english", OnlineEnabled: true}, nil)
	mocks.repo.On("GetChat", ctx, "c1").Return(existingChat("c1", "x"), nil)
	mocks.repo.On("AddMessage", mock.Anything, mock.Anything).Return(nil)

	first, err := chatService.SendMessage(ctx, &service.SendMessageRequest{ChatID: "c1", Text: "my laptop won't turn on"})
	require.NoError(t, err)
	assert.Equal(t, resolver.KindClarification, first.Response.Kind)
	assert.Equal(t, knowledge.FieldBrand, first.Response.ContextKey)

	second, err := chatService.SendMessage(ctx, &service.SendMessageRequest{ChatID: "c1", Text: "it's a Dell"})
	require.NoError(t, err)
	assert.Equal(t, resolver.SourceLocalKB, second.Response.Source)
	assert.Equal(t, resolver.KindSolution, second.Response.Kind)

	stored, err := mocks.contexts.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "dell", stored.DeviceBrand)
	assert.Len(t, stored.ConversationHistory, 4)
}
