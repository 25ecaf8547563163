package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "github.com/Azartis/Konsultabot2-sub000/internal/errors"
)

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by operations that have no resource to return.
type StatusResponse struct {
	Status string `json:"status"`
}

// UpdateTitleRequest is the DTO for the manual chat title update endpoint.
type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100" example:"Printer keeps jamming"`
}

// CreateChatRequest is the DTO for starting an empty chat.
type CreateChatRequest struct {
	Title string `json:"title" validate:"max=100" example:"Laptop problem"`
}

// SendMessageRequest is the DTO for posting a message to a chat.
type SendMessageRequest struct {
	Text     string `json:"text" validate:"required,max=4000" example:"My HP laptop won't turn on"`
	Language string `json:"language,omitempty" validate:"omitempty,max=20" example:"english"`
}

// LegacyChatRequest is the body accepted by POST /api/v1/chat/. Older
// clients send the text as "message", newer ones as "query".
type LegacyChatRequest struct {
	Query     string `json:"query,omitempty" example:"my wifi is slow"`
	Message   string `json:"message,omitempty"`
	Language  string `json:"language,omitempty" validate:"omitempty,max=20" example:"english"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,max=64"`
}

// LegacyChatResponse is the reply of POST /api/v1/chat/.
type LegacyChatResponse struct {
	Response   string  `json:"response"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	SessionID  string  `json:"session_id"`
}

// respondWithError maps business-layer errors to HTTP status codes and
// writes a standard JSON error response.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		message = err.Error()
	case errors.Is(err, app_errors.ErrPermission):
		statusCode = http.StatusForbidden
		message = "You do not have permission to perform this action."
	default:
		// Never leak internal details to the client.
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)
	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
