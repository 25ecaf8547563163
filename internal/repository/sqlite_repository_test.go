package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azartis/Konsultabot2-sub000/internal/model"
	"github.com/Azartis/Konsultabot2-sub000/internal/repository"
)

func setupRepo(t *testing.T) (repository.Repository, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSQLiteRepository(db), mockDB
}

func TestSQLiteRepository_CreateAndGetChat(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Create", func(t *testing.T) {
		repo, mockDB := setupRepo(t)
		chat := &model.ChatSession{ID: "c1", Title: "Printer", CreatedAt: now, UpdatedAt: now}

		mockDB.ExpectExec(regexp.QuoteMeta("INSERT INTO chats (id, title, created_at, updated_at)")).
			WithArgs("c1", "Printer", now, now).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.CreateChat(ctx, chat))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Get existing", func(t *testing.T) {
		repo, mockDB := setupRepo(t)
		rows := sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at"}).AddRow("c1", "Printer", now, now)
		mockDB.ExpectQuery("SELECT id, title, created_at, updated_at FROM chats WHERE id = ?").
			WithArgs("c1").
			WillReturnRows(rows)

		chat, err := repo.GetChat(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "Printer", chat.Title)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Get missing", func(t *testing.T) {
		repo, mockDB := setupRepo(t)
		mockDB.ExpectQuery("SELECT id, title, created_at, updated_at FROM chats").
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		chat, err := repo.GetChat(ctx, "nope")
		assert.Nil(t, chat)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestSQLiteRepository_GetChats(t *testing.T) {
	repo, mockDB := setupRepo(t)
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at"}).
		AddRow("c2", "Newer", now, now).
		AddRow("c1", "Older", now.Add(-time.Hour), now.Add(-time.Hour))
	mockDB.ExpectQuery("SELECT id, title, created_at, updated_at FROM chats ORDER BY updated_at DESC").WillReturnRows(rows)

	chats, err := repo.GetChats(context.Background())
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "c2", chats[0].ID)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteRepository_UpdateChatTitle(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mockDB := setupRepo(t)
		mockDB.ExpectExec("UPDATE chats SET title").
			WithArgs("New", sqlmock.AnyArg(), "c1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateChatTitle(ctx, "c1", "New"))
	})

	t.Run("Missing chat", func(t *testing.T) {
		repo, mockDB := setupRepo(t)
		mockDB.ExpectExec("UPDATE chats SET title").
			WithArgs("New", sqlmock.AnyArg(), "nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateChatTitle(ctx, "nope", "New"), repository.ErrNotFound)
	})
}

func TestSQLiteRepository_DeleteChat(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes messages then chat", func(t *testing.T) {
		repo, mockDB := setupRepo(t)
		mockDB.ExpectBegin()
		mockDB.ExpectExec("DELETE FROM messages WHERE chat_id = ?").WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 4))
		mockDB.ExpectExec("DELETE FROM chats WHERE id = ?").WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 1))
		mockDB.ExpectCommit()

		require.NoError(t, repo.DeleteChat(ctx, "c1"))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Missing chat rolls back", func(t *testing.T) {
		repo, mockDB := setupRepo(t)
		mockDB.ExpectBegin()
		mockDB.ExpectExec("DELETE FROM messages").WithArgs("nope").WillReturnResult(sqlmock.NewResult(0, 0))
		mockDB.ExpectExec("DELETE FROM chats").WithArgs("nope").WillReturnResult(sqlmock.NewResult(0, 0))
		mockDB.ExpectRollback()

		assert.ErrorIs(t, repo.DeleteChat(ctx, "nope"), repository.ErrNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestSQLiteRepository_AddMessage(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	confidence := 0.9
	source := "local_kb"
	msg := &model.Message{ID: "m1", ChatID: "c1", Text: "Try this", Sender: model.SenderBot, Timestamp: now, Confidence: &confidence, Source: &source}

	t.Run("Success", func(t *testing.T) {
		repo, mockDB := setupRepo(t)
		mockDB.ExpectBegin()
		mockDB.ExpectExec("INSERT INTO messages").
			WithArgs("m1", "c1", model.SenderBot, "Try this", &confidence, &source, now).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mockDB.ExpectExec("UPDATE chats SET updated_at").
			WithArgs(sqlmock.AnyArg(), "c1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mockDB.ExpectCommit()

		require.NoError(t, repo.AddMessage(ctx, msg))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Insert failure rolls back", func(t *testing.T) {
		repo, mockDB := setupRepo(t)
		mockDB.ExpectBegin()
		mockDB.ExpectExec("INSERT INTO messages").WillReturnError(errors.New("disk full"))
		mockDB.ExpectRollback()

		err := repo.AddMessage(ctx, msg)
		assert.ErrorContains(t, err, "disk full")
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestSQLiteRepository_GetMessages(t *testing.T) {
	repo, mockDB := setupRepo(t)
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "chat_id", "sender", "text", "confidence", "source", "timestamp"}).
		AddRow("m1", "c1", "user", "my wifi is slow", nil, nil, now).
		AddRow("m2", "c1", "bot", "What device?", 0.95, "local_ai", now.Add(time.Second))
	mockDB.ExpectQuery("SELECT id, chat_id, sender, text, confidence, source, timestamp").
		WithArgs("c1").
		WillReturnRows(rows)

	messages, err := repo.GetMessages(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Nil(t, messages[0].Confidence)
	assert.Nil(t, messages[0].Source)
	require.NotNil(t, messages[1].Confidence)
	assert.InDelta(t, 0.95, *messages[1].Confidence, 0.0001)
	assert.Equal(t, "local_ai", *messages[1].Source)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
