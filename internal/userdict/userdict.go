// Package userdict persists user-added vocabulary in a Redis set so
// additions survive restarts and are shared between instances.
package userdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis set the store uses unless overridden.
const DefaultKey = "speller:user_words"

// Store wraps a Redis client holding the user dictionary.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store over client writing to DefaultKey.
func New(client *redis.Client) *Store {
	return NewWithKey(client, DefaultKey)
}

// NewWithKey creates a Store writing to a specific Redis key. An empty
// key falls back to DefaultKey.
func NewWithKey(client *redis.Client, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{client: client, key: key}
}

// Add inserts a word into the user dictionary.
func (s *Store) Add(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.key, word).Err()
}

// Remove deletes a word from the user dictionary.
func (s *Store) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, word).Err()
}

// Words returns every word in the user dictionary.
func (s *Store) Words(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}

// Len returns the number of stored words.
func (s *Store) Len(ctx context.Context) (int64, error) {
	return s.client.SCard(ctx, s.key).Result()
}

// Ping verifies the Redis connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
