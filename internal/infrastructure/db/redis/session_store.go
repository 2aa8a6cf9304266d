package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
	"github.com/abkhaztransfer/transfer-client/internal/infrastructure/session"
	"github.com/abkhaztransfer/transfer-client/internal/metrics"
)

// SessionStore keeps the session pair in Redis.
// Key format: session:<profile>:auth_token and session:<profile>:user
type SessionStore struct {
	client  *redis.Client
	profile string
	ttl     time.Duration
}

// NewSessionStore creates a SessionStore for the given profile. A zero ttl
// keeps the keys until Clear, so only Logout ends the session. A positive ttl
// is an opt-in for shared hosts: the session then lapses to anonymous on its
// own, without Logout.
func NewSessionStore(client *redis.Client, profile string, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, profile: profile, ttl: ttl}
}

func (s *SessionStore) Get(ctx context.Context) (*domain.Session, error) {
	vals, err := s.client.MGet(ctx, s.key(session.TokenKey), s.key(session.UserKey)).Result()
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	token, _ := vals[0].(string)
	user, _ := vals[1].(string)
	return session.Decode(token, user)
}

// Set writes both keys in a single MULTI/EXEC.
func (s *SessionStore) Set(ctx context.Context, sess domain.Session) error {
	token, user, err := session.Encode(sess)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.key(session.TokenKey), token, s.ttl)
		pipe.Set(ctx, s.key(session.UserKey), user, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	metrics.SessionWritesTotal.WithLabelValues("redis", "set").Inc()
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key(session.TokenKey), s.key(session.UserKey)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	metrics.SessionWritesTotal.WithLabelValues("redis", "clear").Inc()
	return nil
}

func (s *SessionStore) key(entry string) string {
	return fmt.Sprintf("session:%s:%s", s.profile, entry)
}

var _ ports.SessionStore = (*SessionStore)(nil)
