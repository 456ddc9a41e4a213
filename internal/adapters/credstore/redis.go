package credstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Fixed key names for the two slots
const (
	accessTokenKey  = "disasterwatch:access_token"
	refreshTokenKey = "disasterwatch:refresh_token"
)

// RedisStore keeps the credential pair in Redis, for deployments where
// several dashboard hosts share one identity.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get reads both slots; absent keys mean no credentials
func (s *RedisStore) Get(ctx context.Context) (Credentials, error) {
	values, err := s.client.MGet(ctx, accessTokenKey, refreshTokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Credentials{}, nil
		}
		return Credentials{}, fmt.Errorf("credstore: redis mget: %w", err)
	}

	var creds Credentials
	if v, ok := values[0].(string); ok {
		creds.AccessToken = v
	}
	if v, ok := values[1].(string); ok {
		creds.RefreshToken = v
	}
	return creds, nil
}

// Set writes both slots in a single MSET
func (s *RedisStore) Set(ctx context.Context, creds Credentials) error {
	err := s.client.MSet(ctx,
		accessTokenKey, creds.AccessToken,
		refreshTokenKey, creds.RefreshToken,
	).Err()
	if err != nil {
		return fmt.Errorf("credstore: redis mset: %w", err)
	}
	return nil
}

// Clear removes both slots in a single DEL
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, accessTokenKey, refreshTokenKey).Err(); err != nil {
		return fmt.Errorf("credstore: redis del: %w", err)
	}
	return nil
}
