package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "konsultabot.db")

	db, err := InitDB(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	for _, table := range []string{"chats", "messages", "settings"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	// A second run finds nothing to migrate.
	assert.NoError(t, Migrate(db))
}
