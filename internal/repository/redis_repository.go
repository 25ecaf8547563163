package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Azartis/Konsultabot2-sub000/internal/convo"
)

type redisContextStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisContextStore stores contexts as JSON strings. A ttl of zero keeps
// them until the chat is deleted.
func NewRedisContextStore(rdb *redis.Client, ttl time.Duration) ContextStore {
	return &redisContextStore{rdb: rdb, ttl: ttl}
}

func contextKey(chatID string) string { return fmt.Sprintf("konsulta:context:%s", chatID) }

func (s *redisContextStore) Get(ctx context.Context, chatID string) (*convo.Context, error) {
	val, err := s.rdb.Get(ctx, contextKey(chatID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var c convo.Context
	if err := json.Unmarshal(val, &c); err != nil {
		return nil, fmt.Errorf("could not decode context: %w", err)
	}
	return &c, nil
}

func (s *redisContextStore) Save(ctx context.Context, c *convo.Context) error {
	val, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("could not encode context: %w", err)
	}
	return s.rdb.Set(ctx, contextKey(c.SessionID), val, s.ttl).Err()
}

func (s *redisContextStore) Delete(ctx context.Context, chatID string) error {
	return s.rdb.Del(ctx, contextKey(chatID)).Err()
}
