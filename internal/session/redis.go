package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

// RedisStore backs sessions with a Redis key per token; expiry is delegated
// to key TTL. State is marshalled as bson so the quiz answers survive the
// round trip (the JSON view of a question strips them).
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(token string) string {
	return "vocab:session:" + token
}

func (s *RedisStore) Get(ctx context.Context, token string) (*State, error) {
	val, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading session from cache: %w", err)
	}
	var state State
	if err := bson.Unmarshal(val, &state); err != nil {
		return nil, fmt.Errorf("error decoding cached session: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Put(ctx context.Context, token string, state *State) error {
	val, err := bson.Marshal(state)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(token), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("error saving session to cache: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}
