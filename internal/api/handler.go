package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	app_errors "github.com/Azartis/Konsultabot2-sub000/internal/errors"
	"github.com/Azartis/Konsultabot2-sub000/internal/interfaces"
	"github.com/Azartis/Konsultabot2-sub000/internal/service"
)

// ChatHandler serves chats, messages and settings.
type ChatHandler struct {
	chatService     interfaces.ChatService
	settingsService interfaces.SettingsService
}

func NewChatHandler(chatSvc interfaces.ChatService, settingsSvc interfaces.SettingsService) *ChatHandler {
	return &ChatHandler{chatService: chatSvc, settingsService: settingsSvc}
}

// GetSettings godoc
// @Summary      Get settings
// @Description  Returns the runtime settings: default reply language, whether online answers are enabled and the preferred Gemini model.
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.Settings
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/settings [get]
func (h *ChatHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Update settings
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        settings  body      service.Settings  true  "New settings"
// @Success      200       {object}  service.Settings
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /v1/settings [post]
func (h *ChatHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings service.Settings
	if err := decodeAndValidate(r, &settings); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.settingsService.Save(r.Context(), &settings); err != nil {
		respondWithError(w, err)
		return
	}
	slog.Info("Settings updated", "default_language", settings.DefaultLanguage, "online_enabled", settings.OnlineEnabled)
	respondWithJSON(w, http.StatusOK, settings)
}

// GetChats godoc
// @Summary      List chats
// @Description  Returns every chat, most recently updated first.
// @Tags         Chats
// @Produce      json
// @Success      200  {array}   model.ChatSession
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/chats [get]
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.chatService.ListChats(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chats)
}

// CreateChat godoc
// @Summary      Start a chat
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chat  body      CreateChatRequest  false  "Optional title"
// @Success      201   {object}  model.ChatSession
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /v1/chats [post]
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req CreateChatRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	chat, err := h.chatService.CreateChat(r.Context(), req.Title)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, chat)
}

// GetChat godoc
// @Summary      Get a chat
// @Description  Returns the chat metadata and all of its messages.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  model.FullChat
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID} [get]
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	fullChat, err := h.chatService.GetFullChat(r.Context(), chi.URLParam(r, "chatID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, fullChat)
}

// UpdateChatTitle godoc
// @Summary      Rename a chat
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chatID  path      string              true  "Chat ID"
// @Param        title   body      UpdateTitleRequest  true  "New title"
// @Success      200     {object}  StatusResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID}/title [put]
func (h *ChatHandler) UpdateChatTitle(w http.ResponseWriter, r *http.Request) {
	var req UpdateTitleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.chatService.UpdateChatTitle(r.Context(), chi.URLParam(r, "chatID"), req.Title); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleDeleteChat godoc
// @Summary      Delete a chat
// @Description  Deletes the chat, its messages and its tracked context.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  StatusResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID} [delete]
func (h *ChatHandler) HandleDeleteChat(w http.ResponseWriter, r *http.Request) {
	if err := h.chatService.DeleteChat(r.Context(), chi.URLParam(r, "chatID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleSendMessage godoc
// @Summary      Send a message
// @Description  Resolves a user message and returns both stored messages together with how the answer was produced.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        chatID   path      string              true  "Chat ID"
// @Param        message  body      SendMessageRequest  true  "User message"
// @Success      200      {object}  service.SendMessageResult
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /v1/chats/{chatID}/messages [post]
func (h *ChatHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	result, err := h.chatService.SendMessage(r.Context(), &service.SendMessageRequest{
		ChatID:   chi.URLParam(r, "chatID"),
		Text:     req.Text,
		Language: req.Language,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// HandleLegacyChat godoc
// @Summary      Chat (backend-compatible)
// @Description  Accepts {query|message, language, session_id} and answers {response, confidence, source, session_id}. An unknown session_id starts a chat under that id.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        message  body      LegacyChatRequest  true  "User message"
// @Success      200      {object}  LegacyChatResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/chat/ [post]
func (h *ChatHandler) HandleLegacyChat(w http.ResponseWriter, r *http.Request) {
	var req LegacyChatRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	text := strings.TrimSpace(req.Query)
	if text == "" {
		text = strings.TrimSpace(req.Message)
	}
	if text == "" {
		respondWithError(w, fmt.Errorf("%w: either 'query' or 'message' is required", app_errors.ErrValidation))
		return
	}

	result, err := h.chatService.SendMessage(r.Context(), &service.SendMessageRequest{
		ChatID:        req.SessionID,
		Text:          text,
		Language:      req.Language,
		CreateMissing: true,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, LegacyChatResponse{
		Response:   result.Response.Text,
		Confidence: result.Response.Confidence,
		Source:     result.Response.Source,
		SessionID:  result.ChatID,
	})
}

// HandleResetContext godoc
// @Summary      Reset conversation context
// @Description  Forgets the device, problem and pending question of a chat. Messages are kept.
// @Tags         Context
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  convo.Context
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID}/reset [post]
func (h *ChatHandler) HandleResetContext(w http.ResponseWriter, r *http.Request) {
	c, err := h.chatService.ResetContext(r.Context(), chi.URLParam(r, "chatID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, c)
}

// HandleGetContext godoc
// @Summary      Get conversation context
// @Tags         Context
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  convo.Context
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID}/context [get]
func (h *ChatHandler) HandleGetContext(w http.ResponseWriter, r *http.Request) {
	c, err := h.chatService.GetContext(r.Context(), chi.URLParam(r, "chatID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, c)
}
