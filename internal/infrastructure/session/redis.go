// Package session provides the SessionStore implementations: Redis-backed
// for deployments, in-memory for development and tests. Both keep the user
// payload and the admin flag under separate keys so that neither write ever
// touches the other.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fruito/storefront/internal/api/metrics"
)

const (
	defaultTTL = 30 * 24 * time.Hour

	// adminMarker is the literal stored under the admin key. Anything else
	// reads as unset.
	adminMarker = "true"
)

// RedisStore persists sessions in Redis.
// Key format: session:<sid>:user (JSON blob), session:<sid>:admin (marker).
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps the given client. A non-positive ttl falls back to the
// default of thirty days.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// GetUser returns the persisted payload, or nil when absent. A payload that
// is no longer valid JSON also reads as nil: corrupt sessions degrade to
// guest, they never surface.
func (s *RedisStore) GetUser(ctx context.Context, sid string) (json.RawMessage, error) {
	val, err := s.client.Get(ctx, userKey(sid)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session read: %w", err)
	}
	if !json.Valid(val) {
		metrics.SessionDecodeFailuresTotal.Inc()
		return nil, nil
	}
	return val, nil
}

// SetUser stores the backend payload verbatim and refreshes the TTL.
func (s *RedisStore) SetUser(ctx context.Context, sid string, payload json.RawMessage) error {
	if err := s.client.Set(ctx, userKey(sid), []byte(payload), s.ttl).Err(); err != nil {
		return fmt.Errorf("session write: %w", err)
	}
	return nil
}

func (s *RedisStore) ClearUser(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, userKey(sid)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *RedisStore) GetAdminFlag(ctx context.Context, sid string) (bool, error) {
	val, err := s.client.Get(ctx, adminKey(sid)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("admin flag read: %w", err)
	}
	return val == adminMarker, nil
}

func (s *RedisStore) SetAdminFlag(ctx context.Context, sid string) error {
	if err := s.client.Set(ctx, adminKey(sid), adminMarker, s.ttl).Err(); err != nil {
		return fmt.Errorf("admin flag write: %w", err)
	}
	return nil
}

func (s *RedisStore) ClearAdminFlag(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, adminKey(sid)).Err(); err != nil {
		return fmt.Errorf("admin flag delete: %w", err)
	}
	return nil
}

// Ping reports store connectivity for the readiness probe.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func userKey(sid string) string {
	return "session:" + sid + ":user"
}

func adminKey(sid string) string {
	return "session:" + sid + ":admin"
}
