package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azartis/Konsultabot2-sub000/internal/convo"
	"github.com/Azartis/Konsultabot2-sub000/internal/knowledge"
	"github.com/Azartis/Konsultabot2-sub000/internal/repository"
)

func exerciseContextStore(t *testing.T, store repository.ContextStore, chatID string) {
	ctx := context.Background()

	_, err := store.Get(ctx, chatID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	c := convo.New(chatID, "english")
	c.SetField(knowledge.FieldDeviceType, "laptop")
	c.Ask(knowledge.FieldBrand, "What brand is your laptop?")
	c.Append(convo.RoleUser, "my laptop won't turn on")
	require.NoError(t, store.Save(ctx, c))

	got, err := store.Get(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, "laptop", got.DeviceType)
	require.NotNil(t, got.LastQuestion)
	assert.Equal(t, knowledge.FieldBrand, got.LastQuestion.ContextKey)
	assert.Len(t, got.ConversationHistory, 1)

	got.DeviceBrand = "hp"
	again, err := store.Get(ctx, chatID)
	require.NoError(t, err)
	assert.Empty(t, again.DeviceBrand, "stored context must not alias the returned copy")

	require.NoError(t, store.Delete(ctx, chatID))
	_, err = store.Get(ctx, chatID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryContextStore(t *testing.T) {
	exerciseContextStore(t, repository.NewMemoryContextStore(time.Minute), "chat-1")
}

func TestMemoryContextStore_Expiry(t *testing.T) {
	ctx := context.Background()

	t.Run("Entries expire after the TTL", func(t *testing.T) {
		store := repository.NewMemoryContextStore(20 * time.Millisecond)
		require.NoError(t, store.Save(ctx, convo.New("chat-1", "english")))

		_, err := store.Get(ctx, "chat-1")
		require.NoError(t, err)

		time.Sleep(40 * time.Millisecond)
		_, err = store.Get(ctx, "chat-1")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Saving refreshes the TTL", func(t *testing.T) {
		store := repository.NewMemoryContextStore(200 * time.Millisecond)
		c := convo.New("chat-1", "english")
		require.NoError(t, store.Save(ctx, c))

		time.Sleep(120 * time.Millisecond)
		require.NoError(t, store.Save(ctx, c))
		time.Sleep(120 * time.Millisecond)

		_, err := store.Get(ctx, "chat-1")
		assert.NoError(t, err)
	})

	t.Run("Zero TTL never expires", func(t *testing.T) {
		store := repository.NewMemoryContextStore(0)
		require.NoError(t, store.Save(ctx, convo.New("chat-1", "english")))

		time.Sleep(10 * time.Millisecond)
		_, err := store.Get(ctx, "chat-1")
		assert.NoError(t, err)
	})
}

func TestRedisContextStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer func() { _ = rdb.Close() }()
	require.NoError(t, rdb.Ping(context.Background()).Err())

	store := repository.NewRedisContextStore(rdb, time.Minute)
	exerciseContextStore(t, store, "test-"+time.Now().Format("150405.000000000"))
}
