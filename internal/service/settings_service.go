package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	app_errors "github.com/Azartis/Konsultabot2-sub000/internal/errors"
)

const (
	keyDefaultLanguage = "default_language"
	keyOnlineEnabled   = "online_enabled"
	keyPreferredModel  = "preferred_model"
)

// SupportedLanguages lists the reply languages a user may choose.
var SupportedLanguages = []string{"english", "tagalog", "bisaya", "waray", "spanish"}

// Settings holds the runtime-tunable application settings.
type Settings struct {
	DefaultLanguage string `json:"default_language" validate:"required"`
	OnlineEnabled   bool   `json:"online_enabled"`
	PreferredModel  string `json:"preferred_model" validate:"max=100"`
}

type SettingsService struct {
	db *sql.DB
}

func NewSettingsService(db *sql.DB) *SettingsService {
	return &SettingsService{db: db}
}

// InitAndGet loads the stored settings. Keys that were never stored take
// their value from defaults and are written back.
func (s *SettingsService) InitAndGet(ctx context.Context, defaults Settings) (*Settings, error) {
	stored, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(stored) == 3 {
		return s.Get(ctx)
	}

	slog.Info("Initializing missing settings", "stored_keys", len(stored))
	settings := defaults
	applyStored(&settings, stored)
	if err := s.saveToDB(ctx, &settings); err != nil {
		return nil, fmt.Errorf("failed to save initial settings: %w", err)
	}
	return &settings, nil
}

// Get returns the stored settings. Missing keys fall back to english with
// online answers enabled.
func (s *SettingsService) Get(ctx context.Context) (*Settings, error) {
	stored, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	settings := Settings{DefaultLanguage: "english", OnlineEnabled: true}
	applyStored(&settings, stored)
	return &settings, nil
}

// Save validates and stores settings.
func (s *SettingsService) Save(ctx context.Context, settings *Settings) error {
	settings.DefaultLanguage = strings.ToLower(strings.TrimSpace(settings.DefaultLanguage))
	if !slices.Contains(SupportedLanguages, settings.DefaultLanguage) {
		return fmt.Errorf("%w: unsupported language '%s'", app_errors.ErrValidation, settings.DefaultLanguage)
	}
	settings.PreferredModel = strings.TrimSpace(settings.PreferredModel)
	return s.saveToDB(ctx, settings)
}

func (s *SettingsService) load(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	stored := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		stored[key] = value
	}
	return stored, rows.Err()
}

func applyStored(settings *Settings, stored map[string]string) {
	if v, ok := stored[keyDefaultLanguage]; ok && v != "" {
		settings.DefaultLanguage = v
	}
	if v, ok := stored[keyOnlineEnabled]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.OnlineEnabled = b
		} else {
			slog.Warn("Ignoring malformed setting", "key", keyOnlineEnabled, "value", v)
		}
	}
	if v, ok := stored[keyPreferredModel]; ok {
		settings.PreferredModel = v
	}
}

func (s *SettingsService) saveToDB(ctx context.Context, settings *Settings) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("could not prepare statement: %w", err)
	}
	defer stmt.Close()

	values := [][2]string{
		{keyDefaultLanguage, settings.DefaultLanguage},
		{keyOnlineEnabled, strconv.FormatBool(settings.OnlineEnabled)},
		{keyPreferredModel, settings.PreferredModel},
	}
	for _, kv := range values {
		if _, err := stmt.ExecContext(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("could not save setting %s: %w", kv[0], err)
		}
	}
	return tx.Commit()
}
