package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"notary/internal/notary/models"
)

const stateKey = "notary:state"

// RedisStore persists the aggregate as a single JSON value. Recommended when
// several replicas must share ledger state.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context) (*models.State, error) {
	raw, err := s.client.Get(ctx, stateKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return decodeState(raw)
}

func (s *RedisStore) Save(ctx context.Context, state *models.State) error {
	raw, err := encodeState(state)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, stateKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (s *RedisStore) Initialized(ctx context.Context) (bool, error) {
	n, err := s.client.Exists(ctx, stateKey).Result()
	if err != nil {
		return false, fmt.Errorf("check state: %w", err)
	}
	return n > 0, nil
}
