package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATABASE_PATH", t.TempDir()+"/k.db")
	t.Setenv("GEMINI_MODELS", "gemini-2.0-flash, gemini-1.5-flash")
	t.Setenv("CONTEXT_TTL", "2h")
	t.Setenv("OFFLINE_MODE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.AppPort)
	assert.Equal(t, 2*time.Hour, cfg.ContextTTL)
	assert.Equal(t, 15*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "english", cfg.DefaultLanguage)
	assert.True(t, cfg.OfflineMode)
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-1.5-flash"}, cfg.Models())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{AppPort: 8000, DatabasePath: "/tmp/k.db", LogLevel: "info"}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.AppPort = 0
	bad.LogLevel = "verbose"
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_PORT")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestConfig_Candidates(t *testing.T) {
	cfg := Config{BackendURL: "http://a/", BackendCandidates: "http://b, http://a ,,http://c/"}
	assert.Equal(t, []string{"http://a", "http://b", "http://c"}, cfg.Candidates())
	assert.Empty(t, (&Config{}).Candidates())
	assert.Nil(t, (&Config{}).Models())
}
