package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/batchtrack/backend/internal/infrastructure/config"
)

// RevocationList records tokens invalidated before their natural expiry,
// which is how logout works with stateless JWTs.
type RevocationList interface {
	// Revoke marks a token's JTI as revoked. ttl should be the token's
	// remaining lifetime so the entry expires when the token would anyway.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked reports whether a JTI has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RedisRevocationList stores revoked JTIs in Redis with per-entry TTLs.
type RedisRevocationList struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisRevocationList connects to Redis and verifies the connection
// before handing back the list.
func NewRedisRevocationList(cfg config.RedisConfig) (*RedisRevocationList, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis for token revocation: %w", err)
	}

	return &RedisRevocationList{client: client, keyPrefix: "token:revoked:"}, nil
}

func (r *RedisRevocationList) key(jti string) string {
	return r.keyPrefix + jti
}

func (r *RedisRevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *RedisRevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

// Close closes the underlying Redis client.
func (r *RedisRevocationList) Close() error {
	return r.client.Close()
}

var _ RevocationList = (*RedisRevocationList)(nil)

// MemoryRevocationList is a process-local implementation for tests and
// single-instance development. Not safe across multiple replicas.
type MemoryRevocationList struct {
	mu      sync.Mutex
	revoked map[string]time.Time // jti -> entry expiry
}

func NewMemoryRevocationList() *MemoryRevocationList {
	return &MemoryRevocationList{revoked: make(map[string]time.Time)}
}

func (m *MemoryRevocationList) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[jti] = time.Now().Add(ttl)
	return nil
}

func (m *MemoryRevocationList) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, ok := m.revoked[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(m.revoked, jti)
		return false, nil
	}
	return true, nil
}

var _ RevocationList = (*MemoryRevocationList)(nil)
