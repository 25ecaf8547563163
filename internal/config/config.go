package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort      int    `mapstructure:"APP_PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`

	// An empty RedisAddr keeps conversation contexts in process memory.
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	ContextTTL    time.Duration `mapstructure:"CONTEXT_TTL"`

	BackendURL        string        `mapstructure:"BACKEND_URL"`
	BackendCandidates string        `mapstructure:"BACKEND_CANDIDATES"`
	BackendToken      string        `mapstructure:"BACKEND_TOKEN"`
	BackendTimeout    time.Duration `mapstructure:"BACKEND_TIMEOUT"`

	GeminiAPIKey  string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModels  string        `mapstructure:"GEMINI_MODELS"`
	GeminiTimeout time.Duration `mapstructure:"GEMINI_TIMEOUT"`

	DefaultLanguage string `mapstructure:"DEFAULT_LANGUAGE"`
	OfflineMode     bool   `mapstructure:"OFFLINE_MODE"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/konsultabot.db")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("CONTEXT_TTL", "24h")
	viper.SetDefault("BACKEND_URL", "")
	viper.SetDefault("BACKEND_CANDIDATES", "")
	viper.SetDefault("BACKEND_TOKEN", "")
	viper.SetDefault("BACKEND_TIMEOUT", "15s")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODELS", "")
	viper.SetDefault("GEMINI_TIMEOUT", "30s")
	viper.SetDefault("DEFAULT_LANGUAGE", "english")
	viper.SetDefault("OFFLINE_MODE", false)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the application cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.AppPort <= 0 || c.AppPort > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be between 1 and 65535, got %d", c.AppPort))
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		errs = append(errs, errors.New("DATABASE_PATH must not be empty"))
	}
	if c.ContextTTL < 0 {
		errs = append(errs, errors.New("CONTEXT_TTL must not be negative"))
	}
	if c.BackendTimeout < 0 || c.GeminiTimeout < 0 {
		errs = append(errs, errors.New("remote timeouts must not be negative"))
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR", "":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be DEBUG, INFO, WARN or ERROR, got %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// Candidates returns the backend URLs to probe at startup. The configured
// BACKEND_URL comes first.
func (c *Config) Candidates() []string {
	var out []string
	seen := map[string]bool{}
	for _, raw := range append([]string{c.BackendURL}, splitList(c.BackendCandidates)...) {
		url := strings.TrimRight(strings.TrimSpace(raw), "/")
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true
		out = append(out, url)
	}
	return out
}

// Models returns the configured Gemini models, or nil for the built-in list.
func (c *Config) Models() []string {
	return splitList(c.GeminiModels)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
