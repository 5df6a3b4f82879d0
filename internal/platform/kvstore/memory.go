// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kvstore

import (
	"context"
	"sync"
)

// Memory is a map-backed [Store].
//
// It backs STORAGE_DRIVER=memory (nothing survives a restart, matching the
// "store absent entirely" degradation the catalog tolerates) and doubles as
// the test stand-in for the durable backends.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get implements [Store].
func (store *Memory) Get(_ context.Context, key string) ([]byte, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	value, ok := store.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	// Copy so callers can't mutate the stored slice.
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set implements [Store].
func (store *Memory) Set(_ context.Context, key string, value []byte) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	store.data[key] = stored
	return nil
}

// Remove implements [Store].
func (store *Memory) Remove(_ context.Context, key string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.data, key)
	return nil
}
