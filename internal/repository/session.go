package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pageza/pantrychef/backend/internal/types"
)

const sessionKeyPrefix = "session:"

// SessionStore records live sessions in Redis. A session disappears when its
// key expires or is deleted on logout.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(tokenID string) string {
	return sessionKeyPrefix + tokenID
}

func (s *SessionStore) Put(ctx context.Context, session types.Session, ttl time.Duration) error {
	if session.TokenID == "" {
		return fmt.Errorf("session has no token id")
	}
	if ttl <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", ttl)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(session.TokenID), data, ttl).Err()
}

func (s *SessionStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SessionStore) Delete(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, sessionKey(tokenID)).Err()
}
