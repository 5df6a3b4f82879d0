// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package kvstore defines the synchronous key-value contract every persisted
aggregate writes through, plus the interchangeable backends implementing it.

The catalog, trending set and bookmark set each own exactly one key and
rewrite the whole serialized aggregate on every mutation, so the contract is
deliberately tiny: no transactions, no iteration, no TTLs.

Backends:

  - Memory: map-backed, for tests and ephemeral demo runs.
  - Badger: embedded on-disk store, the default for self-hosted deployments.
  - Redis: shared volatile store for multi-process setups.
  - Postgres: a single kv_entries table for installations that already run one.

All backends translate their native "missing key" signal into [ErrKeyNotFound]
so callers never import backend packages.
*/
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by [Store.Get] when the key has never been written.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store is the synchronous byte store the persisted aggregates depend on.
//
// Implementations must be safe for concurrent use; callers serialize writes
// per key themselves (each aggregate owns a disjoint key).
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
