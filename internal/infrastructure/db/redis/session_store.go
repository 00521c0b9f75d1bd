package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// SessionStore keeps each session's fields in a Redis hash.
// Key format: session:<sid>. Every write refreshes the TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore wraps client. A non-positive ttl keeps keys forever.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Read(ctx context.Context, sid string) (map[string]string, error) {
	fields, err := s.client.HGetAll(ctx, s.key(sid)).Result()
	if err != nil {
		return nil, fmt.Errorf("session read: %w", err)
	}
	return fields, nil
}

// Write replaces the hash atomically.
func (s *SessionStore) Write(ctx context.Context, sid string, fields map[string]string) error {
	key := s.key(sid)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(fields) == 0 {
			return nil
		}
		pipe.HSet(ctx, key, fields)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("session write: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sid string) string {
	return keyPrefix + sid
}
