// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis adapts a go-redis client to the [Store] contract.
//
// Keys are stored without TTL: the catalog is the source of truth, not a cache.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an already-connected client. All keys are namespaced under
// prefix so one Redis instance can host several deployments.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// Get implements [Store].
func (store *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := store.client.Get(ctx, store.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: redis get %q: %w", key, err)
	}
	return value, nil
}

// Set implements [Store].
func (store *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := store.client.Set(ctx, store.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("kvstore: redis set %q: %w", key, err)
	}
	return nil
}

// Remove implements [Store].
func (store *Redis) Remove(ctx context.Context, key string) error {
	if err := store.client.Del(ctx, store.prefix+key).Err(); err != nil {
		return fmt.Errorf("kvstore: redis remove %q: %w", key, err)
	}
	return nil
}
