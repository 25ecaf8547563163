package api

import (
	"net/http"
	"time"

	// Registers the swagger spec.
	_ "github.com/Azartis/Konsultabot2-sub000/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Azartis/Konsultabot2-sub000/internal/metrics"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(chatHandler *ChatHandler, remoteHandler *RemoteHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", metrics.Handler())

	health := func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	}
	r.Get("/healthz", health)
	// Same path the remote client probes, so one instance can discover another.
	r.Get("/api/health/", health)

	r.Route("/api/v1", func(r chi.Router) {
		// Remote calls are bounded per attempt; this caps the whole chain.
		r.Use(middleware.Timeout(90 * time.Second))

		r.Get("/settings", chatHandler.GetSettings)
		r.Post("/settings", chatHandler.UpdateSettings)

		r.Post("/chat/", chatHandler.HandleLegacyChat)

		r.Get("/chats", chatHandler.GetChats)
		r.Post("/chats", chatHandler.CreateChat)
		r.Get("/chats/{chatID}", chatHandler.GetChat)
		r.Put("/chats/{chatID}/title", chatHandler.UpdateChatTitle)
		r.Delete("/chats/{chatID}", chatHandler.HandleDeleteChat)
		r.Post("/chats/{chatID}/messages", chatHandler.HandleSendMessage)
		r.Post("/chats/{chatID}/reset", chatHandler.HandleResetContext)
		r.Get("/chats/{chatID}/context", chatHandler.HandleGetContext)

		r.Get("/remote", remoteHandler.HandleStatus)
		r.Post("/remote/discover", remoteHandler.HandleDiscover)
	})

	return r
}
