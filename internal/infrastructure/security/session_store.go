package security

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/niyatanya/habit-tracker/internal/domain/auth"
	"github.com/niyatanya/habit-tracker/internal/pkg/config"
	"github.com/niyatanya/habit-tracker/internal/pkg/logger"
)

const revokedKeyPrefix = "habit-tracker:revoked:"

// NewSessionStore creates the SessionStore selected by settings
func NewSessionStore(ctx context.Context, settings *config.SessionStoreSettings, logger logger.Logger) (auth.SessionStore, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Type {
	case config.SessionStoreMemory:
		return NewMemorySessionStore(), nil
	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:         settings.RedisAddr,
			Password:     settings.RedisPassword,
			DB:           settings.RedisDB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}

		logger.Info("Connected to redis session store at ", settings.RedisAddr)
		return NewRedisSessionStore(client), nil
	default:
		return nil, fmt.Errorf("unsupported session store type: %s", settings.Type)
	}
}

// MemorySessionStore keeps revoked token ids in process memory. Entries
// are dropped by Purge once their tokens would have expired anyway.
type MemorySessionStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemorySessionStore creates an empty MemorySessionStore
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke marks tokenID as signed out for ttl
func (s *MemorySessionStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.revoked[tokenID] = s.now().Add(ttl)
	return nil
}

// IsRevoked reports whether tokenID is signed out and not yet expired
func (s *MemorySessionStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[tokenID]
	return ok && s.now().Before(until), nil
}

// Purge removes expired entries and returns how many were removed
func (s *MemorySessionStore) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, until := range s.revoked {
		if !now.Before(until) {
			delete(s.revoked, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked entries
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.revoked)
}

// RedisSessionStore keeps revoked token ids as expiring redis keys
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a RedisSessionStore on top of client
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// Revoke marks tokenID as signed out for ttl
func (s *RedisSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID is signed out
func (s *RedisSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return n > 0, nil
}

// Close releases the redis connection pool
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
