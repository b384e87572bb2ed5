// File: services/dialogue/contextStore.go
package dialogue

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"wayfare/models"

	"github.com/go-redis/redis/v8"
)

const sessionContextPrefix = "dialogue:ctx:"

// ContextStore holds per-conversation session contexts. Contexts are
// ephemeral; implementations may expire them after a period of inactivity.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (*models.SessionContext, error)
	Set(ctx context.Context, sessionID string, sctx *models.SessionContext) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisContextStore keeps session contexts in Redis with a sliding TTL.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*models.SessionContext, error) {
	data, err := s.client.Get(ctx, sessionContextPrefix+sessionID).Result()
	if err == redis.Nil {
		return &models.SessionContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var sctx models.SessionContext
	if err := json.Unmarshal([]byte(data), &sctx); err != nil {
		return nil, err
	}
	return &sctx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, sctx *models.SessionContext) error {
	b, err := json.Marshal(sctx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionContextPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionContextPrefix+sessionID).Err()
}

// MemoryContextStore is an in-process ContextStore for tests and single-node
// development runs.
type MemoryContextStore struct {
	mu       sync.Mutex
	sessions map[string]models.SessionContext
}

func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{sessions: make(map[string]models.SessionContext)}
}

func (s *MemoryContextStore) Get(ctx context.Context, sessionID string) (*models.SessionContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sctx, ok := s.sessions[sessionID]
	if !ok {
		return &models.SessionContext{}, nil
	}
	copied := sctx
	return &copied, nil
}

func (s *MemoryContextStore) Set(ctx context.Context, sessionID string, sctx *models.SessionContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = *sctx
	return nil
}

func (s *MemoryContextStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
