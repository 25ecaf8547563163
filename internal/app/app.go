package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"github.com/Azartis/Konsultabot2-sub000/internal/api"
	"github.com/Azartis/Konsultabot2-sub000/internal/config"
	"github.com/Azartis/Konsultabot2-sub000/internal/database"
	"github.com/Azartis/Konsultabot2-sub000/internal/metrics"
	"github.com/Azartis/Konsultabot2-sub000/internal/remote"
	"github.com/Azartis/Konsultabot2-sub000/internal/repository"
	"github.com/Azartis/Konsultabot2-sub000/internal/resolver"
	"github.com/Azartis/Konsultabot2-sub000/internal/service"
)

// App holds the long-lived resources of a running server.
type App struct {
	DB     *sql.DB
	Redis  *redis.Client
	Server *http.Server
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort)
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}
	return 0
}

// NewApp wires storage, the resolver pipeline and the HTTP server.
func NewApp(cfg *config.Config) (*App, error) {
	metrics.Init()

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)
	app := &App{DB: db}

	contexts, err := app.contextStore(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	settingsService := service.NewSettingsService(db)
	appSettings, err := settingsService.InitAndGet(context.Background(), service.Settings{
		DefaultLanguage: cfg.DefaultLanguage,
		OnlineEnabled:   !cfg.OfflineMode,
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize application settings: %w", err)
	}
	slog.Info("Loaded application settings", "default_language", appSettings.DefaultLanguage, "online_enabled", appSettings.OnlineEnabled)

	client := remote.NewClient(remote.Options{
		BackendURL:     cfg.BackendURL,
		BackendTimeout: cfg.BackendTimeout,
		GeminiAPIKey:   cfg.GeminiAPIKey,
		GeminiModels:   cfg.Models(),
		GeminiTimeout:  cfg.GeminiTimeout,
		Tokens:         remote.NewMemoryTokenStore(cfg.BackendToken),
	})
	candidates := cfg.Candidates()
	if !cfg.OfflineMode && len(candidates) > 0 {
		if _, err := client.Discover(context.Background(), candidates); err != nil {
			slog.Warn("No backend candidate reachable, continuing with Gemini or local answers", "candidates", candidates)
		}
	}

	res := resolver.New(nil, nil, resolver.WithRemote(client))
	repo := repository.NewSQLiteRepository(db)
	chatService := service.NewChatService(repo, contexts, res, settingsService, cfg.OfflineMode)
	remoteService := service.NewRemoteService(client, candidates)

	router := api.NewRouter(
		api.NewChatHandler(chatService, settingsService),
		api.NewRemoteHandler(remoteService),
	)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return app, nil
}

// contextStore connects to Redis when an address is configured and falls
// back to process memory otherwise.
func (a *App) contextStore(cfg *config.Config) (repository.ContextStore, error) {
	if cfg.RedisAddr == "" {
		slog.Info("REDIS_ADDR not set, keeping conversation contexts in memory.")
		return repository.NewMemoryContextStore(cfg.ContextTTL), nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr)
	a.Redis = rdb
	return repository.NewRedisContextStore(rdb, cfg.ContextTTL), nil
}

// Close releases the database and Redis connections.
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
}

func logConfigSource() {
	if configFileUsed := viper.ConfigFileUsed(); configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
