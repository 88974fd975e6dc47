package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoState is returned when a chat has no stored conversation state.
var ErrNoState = errors.New("no conversation state")

// ConversationState is the bot driver's per-chat state: the current waypoint
// plus whatever the flow has collected so far. Keeping it in Redis (instead
// of a process-local map) lets bot instances restart or scale without users
// losing their place mid-checkout.
type ConversationState struct {
	Waypoint  string            `json:"waypoint"`
	SessionID int64             `json:"session_id,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
}

type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func (s *SessionStore) key(telegramID int64) string {
	return fmt.Sprintf("bot:session:%d", telegramID)
}

func (s *SessionStore) Get(ctx context.Context, telegramID int64) (*ConversationState, error) {
	raw, err := s.rdb.Get(ctx, s.key(telegramID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoState
	}
	if err != nil {
		return nil, err
	}

	var state ConversationState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *SessionStore) Set(ctx context.Context, telegramID int64, state *ConversationState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(telegramID), raw, s.ttl).Err()
}

func (s *SessionStore) Clear(ctx context.Context, telegramID int64) error {
	return s.rdb.Del(ctx, s.key(telegramID)).Err()
}
