package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisSlot stores the serialized data graph under one Redis key. Writes are
// plain SETs with no expiry; concurrent writers race and the last full-state
// write wins, which matches the single-owner contract of the store.
type RedisSlot struct {
	Client *redis.Client
	Ctx    context.Context // Base context
	Key    string
}

// NewRedisSlot creates a RedisSlot persisting under the given key.
func NewRedisSlot(client *redis.Client, key string) *RedisSlot {
	return &RedisSlot{
		Client: client,
		Ctx:    context.Background(), // Use a background context as base
		Key:    key,
	}
}

// Load reads the slot. A missing key is reported as not found, not an error.
func (s *RedisSlot) Load() ([]byte, bool, error) {
	data, err := s.Client.Get(s.Ctx, s.Key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read slot %s from Redis: %w", s.Key, err)
	}
	return data, true, nil
}

// Save overwrites the slot with the full serialized graph.
func (s *RedisSlot) Save(data []byte) error {
	if err := s.Client.Set(s.Ctx, s.Key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write slot %s to Redis: %w", s.Key, err)
	}
	return nil
}

// InitializeRedisClient creates and tests a Redis client connection.
func InitializeRedisClient(addr, password string, database int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       database,
	})

	// Ping Redis to check connection
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", addr, err)
	}
	return rdb, nil
}
