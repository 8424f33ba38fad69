package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
)

const revokedPrefix = "revoked:"

// TokenStore tracks revoked token ids so logout takes effect before the
// token expires.
type TokenStore interface {
	// Revoke marks a token id as revoked until its natural expiry.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	// IsRevoked reports whether a token id has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// Close releases the underlying connection.
	Close() error
}

type redisTokenStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisTokenStore connects to redis and verifies the connection.
func NewRedisTokenStore(ctx context.Context, settings *config.RedisSettings, logger logger.Logger) (TokenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr(),
		Password: settings.Password,
		DB:       settings.DB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Connected to redis at ", settings.Addr())
	return &redisTokenStore{client: client, logger: logger}, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to track.
		return nil
	}
	if err := s.client.Set(ctx, revokedPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *redisTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := s.client.Get(ctx, revokedPrefix+jti).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check token: %w", err)
	}
	return true, nil
}

func (s *redisTokenStore) Close() error {
	return s.client.Close()
}

type noopTokenStore struct{}

// NewNoopTokenStore returns a store that never revokes anything, used when
// redis is disabled and logout is a client-side concern.
func NewNoopTokenStore() TokenStore {
	return &noopTokenStore{}
}

func (s *noopTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return nil
}

func (s *noopTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return false, nil
}

func (s *noopTokenStore) Close() error {
	return nil
}
