package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStorage 已注销的 token，按 jti 记录直到 token 自然过期
type TokenStorage struct {
	redis *redis.Client
}

func NewTokenStorage(rds *redis.Client) *TokenStorage {
	return &TokenStorage{rds}
}

// Revoke marks jti as unusable until expiresAt. Already expired tokens are skipped.
func (t *TokenStorage) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := t.redis.Set(ctx, t.name(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("cache.Token.Revoke: %w", err)
	}
	return nil
}

// PipeRevoke queues a revoke on pipe.
func (t *TokenStorage) PipeRevoke(ctx context.Context, pipe redis.Pipeliner, jti string, expiresAt time.Time) {
	if ttl := time.Until(expiresAt); ttl > 0 {
		pipe.Set(ctx, t.name(jti), 1, ttl)
	}
}

// RevokeAll revokes several tokens in one round trip. The map goes from jti to expiry.
func (t *TokenStorage) RevokeAll(ctx context.Context, tokens map[string]time.Time) error {
	pipe := t.redis.Pipeline()
	for jti, exp := range tokens {
		t.PipeRevoke(ctx, pipe, jti, exp)
	}
	if pipe.Len() == 0 {
		return nil
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache.Token.RevokeAll: %w", err)
	}
	return nil
}

// IsRevoked fails closed: a redis error counts as revoked.
func (t *TokenStorage) IsRevoked(ctx context.Context, jti string) bool {
	n, err := t.redis.Exists(ctx, t.name(jti)).Result()
	if err != nil {
		return true
	}
	return n > 0
}

func (t *TokenStorage) name(jti string) string {
	return fmt.Sprintf("notes:token:revoked:%s", jti)
}
