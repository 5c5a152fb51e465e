package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/placement-service/internal/domain"
)

const redisSessionPrefix = "session:"

// RedisSessionStore shares sessions between service instances. Expiry is delegated to Redis.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore wraps an existing client; the caller owns the client.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Create(ctx context.Context, userID string) (*domain.Session, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, redisSessionKey(session.ID), payload, s.ttl).Err(); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, redisSessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisSessionKey(id)).Err()
}

// Close is a no-op: sessions outlive a single instance and the client is closed by its owner.
func (s *RedisSessionStore) Close() error {
	return nil
}

func redisSessionKey(id string) string {
	return redisSessionPrefix + id
}
